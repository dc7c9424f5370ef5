// Package apperr описывает закрытый набор видов ошибок, общий для сервера и клиента.
package apperr

import (
	"errors"
	"fmt"
)

// Kind — вид ошибки, на который клиентский код может надёжно ветвиться.
type Kind string

const (
	NotFound         Kind = "NotFound"
	InvalidInput     Kind = "InvalidInput"
	StoreUnavailable Kind = "StoreUnavailable"
	Unknown          Kind = "Unknown"
)

// ParseKind приводит строку к Kind; незнакомые значения дают Unknown.
func ParseKind(s string) Kind {
	switch k := Kind(s); k {
	case NotFound, InvalidInput, StoreUnavailable:
		return k
	default:
		return Unknown
	}
}

// Error — ошибка с видом, сообщением для пользователя и деталями от хранилища.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is позволяет сравнивать ошибки по виду: errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Сентинелы для errors.Is.
var (
	ErrNotFound         = &Error{Kind: NotFound}
	ErrInvalidInput     = &Error{Kind: InvalidInput}
	ErrStoreUnavailable = &Error{Kind: StoreUnavailable}
	ErrUnknown          = &Error{Kind: Unknown}
)

// New создаёт ошибку заданного вида.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap создаёт ошибку заданного вида поверх err; Detail заполняется текстом err.
func Wrap(kind Kind, message string, err error) *Error {
	e := &Error{Kind: kind, Message: message, Err: err}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

// KindOf возвращает вид ошибки; для ошибок вне пакета — Unknown.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
