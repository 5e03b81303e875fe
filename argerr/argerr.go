// Package argerr holds the rejected-input error returned by strict enum lookups.
package argerr

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Kind tells whether a lookup was by name or by value.
type Kind uint8

const (
	Name Kind = iota + 1
	Value
)

type Error struct {
	Kind  Kind
	Enum  string
	Input any
}

func NewName(enum, name string) *Error {
	return &Error{Kind: Name, Enum: enum, Input: name}
}

func NewValue(enum string, value int) *Error {
	return &Error{Kind: Value, Enum: enum, Input: value}
}

func (e *Error) Is(err error) bool {
	return err == ErrInvalidArgument
}

func (e *Error) Error() string {
	switch e.Kind {
	case Name:
		return fmt.Sprintf("%q is not a valid name for enum %q", e.Input, e.Enum)
	default:
		return fmt.Sprintf("%v is not a valid value for enum %q", e.Input, e.Enum)
	}
}
