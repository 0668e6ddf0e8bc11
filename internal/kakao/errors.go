package kakao

import (
	"errors"
	"fmt"
)

// ErrorType categorizes builder errors. Both kinds are programming errors on the
// caller side and are never retried.
type ErrorType string

const (
	ErrTypeInvalidValue ErrorType = "invalid_value" // value outside a closed set (currency, action)
	ErrTypeUnknownType  ErrorType = "unknown_type"  // wrong or unrecognized component variant
)

var (
	ErrInvalidValue = errors.New("invalid value")
	ErrUnknownType  = errors.New("unknown type")
)

// Error is returned by setters and containers that reject their input.
type Error struct {
	Type  ErrorType
	Field string
	Value string
}

func (e *Error) Error() string {
	switch e.Type {
	case ErrTypeUnknownType:
		return fmt.Sprintf("kakao: unknown type %q for %s", e.Value, e.Field)
	default:
		return fmt.Sprintf("kakao: invalid %s %q", e.Field, e.Value)
	}
}

// Is lets callers match with errors.Is(err, ErrInvalidValue) or ErrUnknownType.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidValue:
		return e.Type == ErrTypeInvalidValue
	case ErrUnknownType:
		return e.Type == ErrTypeUnknownType
	}
	return false
}

func invalidValue(field, value string) *Error {
	return &Error{Type: ErrTypeInvalidValue, Field: field, Value: value}
}

func unknownType(field, value string) *Error {
	return &Error{Type: ErrTypeUnknownType, Field: field, Value: value}
}
