package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"focuspad/internal/domain"
	"io"
)

var ErrMalformedBody = errors.New("malformed request body")

// Decode reads exactly one JSON value from r into v. A missing body is a
// validation failure; trailing data after the value is malformed. Type
// mismatches come back as *domain.ValidationError naming the field.
func Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)

	err := dec.Decode(v)
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return &domain.ValidationError{Errors: []domain.FieldError{{
			Loc:  []string{"body"},
			Msg:  "Field required",
			Type: "missing",
		}}}
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}
		return &domain.ValidationError{Errors: []domain.FieldError{{
			Loc:  loc,
			Msg:  fmt.Sprintf("Input should be a valid %s", typeErr.Type),
			Type: typeErr.Type.Kind().String() + "_type",
		}}}
	case err != nil:
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedBody)
	}

	return nil
}
