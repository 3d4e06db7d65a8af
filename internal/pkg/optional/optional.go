// Package optional различает три состояния поля в JSON-запросе частичного обновления:
// поле отсутствует, поле явно null, поле со значением.
package optional

import (
	"bytes"

	json "github.com/goccy/go-json"
)

type Value[T any] struct {
	value T
	set   bool
	null  bool
}

// Of - значение, заданное явно
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// Null - поле присутствует со значением null
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet - поле присутствовало в запросе (в том числе как null)
func (v Value[T]) IsSet() bool { return v.set }

// IsNull - поле присутствовало и было null
func (v Value[T]) IsNull() bool { return v.set && v.null }

// HasValue - поле присутствовало с непустым значением
func (v Value[T]) HasValue() bool { return v.set && !v.null }

// Get возвращает значение и признак его наличия
func (v Value[T]) Get() (T, bool) {
	return v.value, v.HasValue()
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		v.value = zero
		v.null = true
		return nil
	}
	v.null = false
	return json.Unmarshal(data, &v.value)
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
