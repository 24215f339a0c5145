package common

import (
	jsoniter "github.com/json-iterator/go"
)

// Optional distinguishes a JSON field that was absent from one explicitly
// set to null. The zero value means the field was not present in the payload.
// Set && !Valid means present-and-null, Set && Valid means present-and-value.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

func NullOptional[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := jsoniter.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return jsoniter.Marshal(o.Value)
}

// Ptr returns the value as a nullable pointer, nil when null or absent.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
