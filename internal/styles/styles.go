package styles

import (
	"os"

	"github.com/muesli/termenv"
)

var (
	stdout = termenv.NewOutput(os.Stdout)

	ERROR = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("9")).
			String()
	}
	// HEADER styles section headers in help and tree listings.
	HEADER = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("12")).
			Bold().
			String()
	}
	// COMMAND_NAME styles a command name wherever one is listed.
	COMMAND_NAME = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("11")).
			String()
	}
	// HINT styles secondary guidance text (e.g., "run 'helptree' for ...").
	HINT = func(s string) string {
		return stdout.String(s).
			Foreground(stdout.Color("244")).
			String()
	}
)
