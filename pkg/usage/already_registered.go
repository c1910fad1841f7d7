package usage

import "fmt"

// AlreadyRegistered is returned when a command name is registered twice in
// the same set.
func AlreadyRegistered(name string) *Error {
	return &Error{
		Kind:    ErrAlreadyRegistered,
		Message: fmt.Sprintf("command already registered: %s", name),
		Got:     name,
	}
}
