// Package optional provides a tagged optional for partial updates.
// A Field distinguishes three states a JSON key can be in: absent,
// explicitly null, or carrying a value. Pointer fields cannot make the
// first two distinct, which is exactly the distinction PATCH-style
// updates need.
package optional

import "encoding/json"

type Field[T any] struct {
	value   T
	set     bool
	present bool
}

// Of returns a Field carrying v.
func Of[T any](v T) Field[T] {
	return Field[T]{value: v, set: true, present: true}
}

// Null returns a Field that was explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// IsSet reports whether the key appeared in the request at all.
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the key was present with an explicit null.
func (f Field[T]) IsNull() bool {
	return f.set && !f.present
}

// Get returns the value and whether one is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.present
}

// MustGet is for tests and call sites that already checked presence.
func (f Field[T]) MustGet() T {
	if !f.present {
		panic("optional: MustGet on empty field")
	}
	return f.value
}

// IsZero makes `json:",omitzero"` skip unset fields when marshaling.
func (f Field[T]) IsZero() bool {
	return !f.set
}

// UnmarshalJSON is only invoked by encoding/json when the key is
// present, so reaching here already means set.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if string(data) == "null" {
		f.present = false
		var zero T
		f.value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.present = true
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
