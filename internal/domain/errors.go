package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of reasons a locator can be rejected.
type ErrorKind int

const (
	KindInvalidLocator ErrorKind = iota + 1
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidLocator:
		return "invalid_locator"
	default:
		return fmt.Sprintf("error_kind(%d)", int(k))
	}
}

// ErrInvalidLocator is the sentinel every KindInvalidLocator error unwraps to.
var ErrInvalidLocator = errors.New("input is not a valid Maidenhead locator")

// LocatorError reports why an input was rejected. It carries no coordinates.
type LocatorError struct {
	Kind  ErrorKind
	Input string
}

func (e *LocatorError) Error() string {
	return fmt.Sprintf("locator %q: %v", e.Input, e.Unwrap())
}

func (e *LocatorError) Unwrap() error {
	switch e.Kind {
	case KindInvalidLocator:
		return ErrInvalidLocator
	default:
		return fmt.Errorf("unknown locator error kind %s", e.Kind)
	}
}

func invalidLocator(input string) error {
	return &LocatorError{Kind: KindInvalidLocator, Input: input}
}
