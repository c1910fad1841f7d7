// Package usage defines the typed errors surfaced by the command tree,
// the parser, and the shell driver. Every failure path in the toolkit
// returns one of these kinds; nothing is swallowed internally.
package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrNoArgs
	ErrExtraArgs
	ErrInvalidSubCommand
	ErrUnrecognizedCommand
	ErrAlreadyRegistered
	ErrParse
)

// Error is a user-facing error with semantic kind information. The
// structured fields are populated per kind so callers can react
// programmatically instead of string-matching the message.
type Error struct {
	Kind    ErrorKind
	Message string

	// Got is the offending token, when there is one.
	Got string

	// Expected holds the sorted valid names at the failure point.
	Expected []string

	// CmdPath, Remaining and Possibilities carry the structured parse
	// outcome for ErrParse.
	CmdPath       []string
	Remaining     []string
	Possibilities []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
