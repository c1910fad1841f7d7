package usage

import "fmt"

// ParseError carries a rendered diagnostic alongside the structured
// resolution state, so callers can present the message or inspect the
// path/remaining split programmatically.
func ParseError(msg string, cmdPath, remaining, possibilities []string) *Error {
	return &Error{
		Kind:          ErrParse,
		Message:       fmt.Sprintf("command failed to parse: %s", msg),
		CmdPath:       cmdPath,
		Remaining:     remaining,
		Possibilities: possibilities,
	}
}
