package injection

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMalformed is matched by every error reporting a representation
	// that could not have been produced by the corresponding Encode.
	ErrMalformed = errors.New("malformed representation")

	// ErrMissingOrdering is returned when decoding a value that can only
	// exist for an ordered type and no ordering was configured. It signals
	// a caller misconfiguration, not bad data.
	ErrMissingOrdering = errors.New("no ordering available for ordered predicate")
)

/*
InversionFailure is the error returned when a primitive conversion
receives a representation it does not recognise.
*/
type InversionFailure struct {
	// The offending representation
	Input string
	// A description of the type that was expected
	Target string
}

func (e *InversionFailure) Error() string {
	return fmt.Sprintf("cannot invert %q into %s", e.Input, e.Target)
}

// Is makes InversionFailure match ErrMalformed.
func (e *InversionFailure) Is(target error) bool {
	return target == ErrMalformed
}

type malformedError string

func (e malformedError) Error() string {
	return string(e)
}

func (e malformedError) Is(target error) bool {
	return target == ErrMalformed
}

/*
Malformed takes a format and arguments and returns an error describing
a malformed representation that matches ErrMalformed.
*/
func Malformed(format string, args ...interface{}) error {
	return errors.WithStack(malformedError(fmt.Sprintf(format, args...)))
}
