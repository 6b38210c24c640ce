package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError describes one failed constraint. Loc is the path to the
// offending value, e.g. ["body", "title"].
type FieldError struct {
	Loc  []string
	Msg  string
	Type string
}

type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a failure on a body field.
func (e *ValidationError) Add(field, typ, msg string) {
	e.Errors = append(e.Errors, FieldError{Loc: []string{"body", field}, Msg: msg, Type: typ})
}

// Err returns nil when nothing was recorded, so callers can return it directly.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

func (n NewTask) Validate() error {
	var verr ValidationError
	checkTitle(&verr, n.Title)
	if n.Description != nil {
		checkMaxLength(&verr, "description", *n.Description, MaxDescriptionLength)
	}
	checkPriority(&verr, n.Priority)
	if n.EstimatedMinutes != nil {
		checkRange(&verr, "estimated_minutes", *n.EstimatedMinutes, MinEstimatedMinutes, MaxEstimatedMinutes)
	}
	return verr.Err()
}

func (p TaskPatch) Validate() error {
	var verr ValidationError

	if p.Title.IsNull() {
		verr.Add("title", "string_type", "Input should be a valid string")
	} else if v, ok := p.Title.Get(); ok {
		checkTitle(&verr, v)
	}
	if v, ok := p.Description.Get(); ok {
		checkMaxLength(&verr, "description", v, MaxDescriptionLength)
	}
	if p.Priority.IsNull() {
		verr.Add("priority", "literal_error", "Input should be 'low', 'medium' or 'high'")
	} else if v, ok := p.Priority.Get(); ok {
		checkPriority(&verr, v)
	}
	if v, ok := p.EstimatedMinutes.Get(); ok {
		checkRange(&verr, "estimated_minutes", v, MinEstimatedMinutes, MaxEstimatedMinutes)
	}
	if p.Completed.IsNull() {
		verr.Add("completed", "bool_type", "Input should be a valid boolean")
	}

	return verr.Err()
}

func (n NewSession) Validate() error {
	var verr ValidationError
	checkRange(&verr, "seconds", n.Seconds, MinSessionSeconds, MaxSessionSeconds)
	if n.Note != nil {
		checkMaxLength(&verr, "note", *n.Note, MaxNoteLength)
	}
	return verr.Err()
}

func checkTitle(verr *ValidationError, title string) {
	if utf8.RuneCountInString(title) < 1 {
		verr.Add("title", "string_too_short", "String should have at least 1 character")
		return
	}
	checkMaxLength(verr, "title", title, MaxTitleLength)
}

func checkMaxLength(verr *ValidationError, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		verr.Add(field, "string_too_long", fmt.Sprintf("String should have at most %d characters", max))
	}
}

func checkRange(verr *ValidationError, field string, value, min, max int) {
	switch {
	case value < min:
		verr.Add(field, "greater_than_equal", fmt.Sprintf("Input should be greater than or equal to %d", min))
	case value > max:
		verr.Add(field, "less_than_equal", fmt.Sprintf("Input should be less than or equal to %d", max))
	}
}

func checkPriority(verr *ValidationError, p Priority) {
	if !p.Valid() {
		verr.Add("priority", "literal_error", "Input should be 'low', 'medium' or 'high'")
	}
}
