// Package optional holds a JSON value that remembers whether it was present.
package optional

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state value: absent, explicitly null, or set to a value.
// The zero Field is absent.
type Field[T any] struct {
	set   bool
	null  bool
	value T
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{set: true, value: v}
}

// Null returns a Field that is present but explicitly null.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the key appeared in the decoded payload.
func (f Field[T]) IsSet() bool { return f.set }

// IsNull reports whether the key appeared with a null value.
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Get returns the value and true when the field is present and non-null.
func (f Field[T]) Get() (T, bool) {
	if !f.set || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Ptr returns a pointer to a copy of the value, or nil when absent or null.
func (f Field[T]) Ptr() *T {
	v, ok := f.Get()
	if !ok {
		return nil
	}
	return &v
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// which is what lets Field tell omission apart from null.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}

	f.null = false
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
