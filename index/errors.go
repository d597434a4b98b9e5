package index

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a required argument is absent.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError reports a required field that was missing at build time.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("overnight index: %s must be set", e.Field)
}

// LookupError reports a name that is not present in a registry.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown index %q", e.Name)
}

var errNotBuilt = fmt.Errorf("%w: overnight index was not created by Build", ErrInvalidArgument)

func missingArgument(name string) error {
	return fmt.Errorf("%w: %s must not be zero", ErrInvalidArgument, name)
}
