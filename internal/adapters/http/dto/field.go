package dto

import (
	"encoding/json"
	"reflect"

	"github.com/jsamuelsen11/process-service/internal/domain"
)

// Field is a PATCH body member that tells an absent key apart from an
// explicit null. Set is true whenever the key was present; Value is nil for
// null.
type Field[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON records presence. encoding/json calls it for null too.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// MarshalJSON writes the value or null. Tag the member omitzero so an
// unset Field is left out.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// Nullable converts the field to an update of a clearable attribute.
func (f Field[T]) Nullable() domain.Optional[*T] {
	if !f.Set {
		return domain.None[*T]()
	}
	return domain.Some(f.Value)
}

// Required converts the field to an update of a non-clearable attribute.
// A null is reported as absent; request validation rejects it first.
func (f Field[T]) Required() domain.Optional[T] {
	return domain.FromPtr(f.Value)
}

// Null reports whether the key was present with a null value.
func (f Field[T]) Null() bool {
	return f.Set && f.Value == nil
}

// Present builds a Field carrying v.
func Present[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Cleared builds a Field carrying an explicit null.
func Cleared[T any]() Field[T] {
	return Field[T]{Set: true}
}

// fieldValue unwraps Field values for the validator so tags apply to the
// inner pointer, which keeps an explicit zero subject to the rules. Unset
// and null fields validate as absent.
func fieldValue(v reflect.Value) any {
	value := v.FieldByName("Value")
	if !value.IsValid() || value.IsNil() {
		return nil
	}
	return value.Interface()
}
