package usage

import "fmt"

// UnrecognizedCommand is returned when a top-level token matched nothing in
// either the custom or the builtin command set.
func UnrecognizedCommand(got string) *Error {
	return &Error{
		Kind:    ErrUnrecognizedCommand,
		Message: fmt.Sprintf("unrecognized command: '%s'", got),
		Got:     got,
	}
}
