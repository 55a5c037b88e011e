package quakeml

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotQuakeML is returned when no catalog element can be found at the
	// document root, whatever the namespace.
	ErrNotQuakeML = errors.New("not a QuakeML compatible file or string")

	// ErrSeisHubEncodeUnsupported is returned by EncodeSeisHub: the legacy
	// single-event variant is read-only.
	ErrSeisHubEncodeUnsupported = errors.New("writing SeisHub event XML is not supported")
)

// CoercionError reports element text that could not be converted to the type
// the schema assigns to it. Decoding stops at the first coercion failure.
type CoercionError struct {
	// Element is the path of the offending element below its entity,
	// for example "quality/standardError".
	Element string
	// Type names the expected Go type.
	Type string
	// Text is the raw element text.
	Text string

	err error
}

func newCoercionError(element, typ, text string, err error) *CoercionError {
	return &CoercionError{Element: element, Type: typ, Text: text, err: errors.WithStack(err)}
}

// Error returns the string representation of the error.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot decode %s %q as %s: %v", e.Element, e.Text, e.Type, e.err)
}

// Unwrap returns the underlying parse error.
func (e *CoercionError) Unwrap() error {
	return e.err
}
