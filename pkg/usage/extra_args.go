package usage

import "fmt"

// ExtraArgs is returned when a command got arguments where none were expected.
func ExtraArgs(got []string) *Error {
	return &Error{
		Kind:    ErrExtraArgs,
		Message: fmt.Sprintf("expected no args, but got %q", got),
		Got:     firstOrEmpty(got),
	}
}

func firstOrEmpty(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}
