package service

import (
	"bytes"
	"encoding/json"
)

// Optional хранит поле частичного обновления: Set — поле присутствовало в запросе,
// Null — было передано явное null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some возвращает заданное значение.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON вызывается только для присутствующих полей.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) apply(updates map[string]any, column string) {
	if !o.Set {
		return
	}
	if o.Null {
		updates[column] = nil
		return
	}
	updates[column] = o.Value
}
