package usage

import "fmt"

// InvalidSubCommand is returned when a token does not name a valid child of a
// parent command. expected must already be sorted.
func InvalidSubCommand(got string, expected []string) *Error {
	return &Error{
		Kind:     ErrInvalidSubCommand,
		Message:  fmt.Sprintf("invalid sub command, got '%s' but expected one of %q", got, expected),
		Got:      got,
		Expected: expected,
	}
}
