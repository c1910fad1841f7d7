package usage

// NoArgs is returned when a command requiring arguments got none.
func NoArgs() *Error {
	return &Error{
		Kind:    ErrNoArgs,
		Message: "expected a non-zero number of args, got none",
	}
}
