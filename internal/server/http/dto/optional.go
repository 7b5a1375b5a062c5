package dto

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes an absent request field from a present one. JSON
// null decodes as absent.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Value returns the held value and whether it is present.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the field was supplied.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Ptr returns a pointer to the value, or nil when absent.
func (o Optional[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
