package parser

import (
	"fmt"
	"strings"

	"github.com/shelf-sh/shelf/pkg/command"
	"github.com/shelf-sh/shelf/pkg/usage"
)

// CommandType names which command set resolution matched in.
type CommandType int

const (
	// Unknown means resolution failed before either set could claim the
	// input: the line was empty, or its very first token matched nothing.
	Unknown CommandType = iota

	// Custom means the user-registered command set matched.
	Custom

	// Builtin means the shell's builtin command set matched.
	Builtin
)

func (t CommandType) String() string {
	switch t {
	case Custom:
		return "custom"
	case Builtin:
		return "builtin"
	default:
		return "unknown"
	}
}

// Outcome describes one resolution attempt: how far descent got, what is
// valid next, and, for a fully resolved leaf, its argument-level completion.
// Outcomes are built fresh per parse and consumed immediately.
type Outcome struct {
	// CmdPath holds the tokens matched against nested command names, in
	// descent order.
	CmdPath []string

	// Remaining holds the unmatched token suffix: the leaf's arguments on
	// a complete match, or the point of failure on an incomplete one.
	Remaining []string

	// CmdType says which set produced the match.
	CmdType CommandType

	// Possibilities lists the valid next-token names at the point where
	// resolution stopped, alphabetically sorted. Empty on a complete
	// match.
	Possibilities []string

	// LeafCompletion is the resolved leaf's own completion result. Only
	// meaningful when Complete is true.
	LeafCompletion command.Completion

	// Complete reports whether resolution reached a leaf command.
	Complete bool
}

// ErrorMsg renders a human-readable diagnostic for an incomplete outcome.
// It is pure formatting over the outcome's fields. Returns "" when the
// outcome is complete.
func (o Outcome) ErrorMsg() string {
	if o.Complete {
		return ""
	}

	var b strings.Builder
	switch {
	case len(o.CmdPath) == 0 && len(o.Remaining) == 0:
		b.WriteString("empty input")
	case len(o.CmdPath) == 0:
		fmt.Fprintf(&b, "'%s' is not a recognized command", o.Remaining[0])
	default:
		matched := strings.Join(o.CmdPath, " ")
		line := matched
		if len(o.Remaining) > 0 {
			line += " " + strings.Join(o.Remaining, " ")
		}
		b.WriteString(line)
		b.WriteByte('\n')
		// The caret sits one column past the matched prefix, on the
		// first unmatched token (or the missing one).
		b.WriteString(strings.Repeat(" ", len(matched)+1))
		b.WriteString("^\n")
		found := "nothing"
		if len(o.Remaining) > 0 {
			found = fmt.Sprintf("'%s'", o.Remaining[0])
		}
		fmt.Fprintf(&b, "expected a valid subcommand, found %s", found)
	}

	if len(o.Possibilities) > 0 {
		fmt.Fprintf(&b, "\nexpected one of %s", orJoin(o.Possibilities))
	}

	b.WriteString("\nrun 'helptree' for the full command tree")

	return b.String()
}

// Err wraps an incomplete outcome as a structured parse error. Returns nil
// when the outcome is complete.
func (o Outcome) Err() error {
	if o.Complete {
		return nil
	}
	return usage.ParseError(o.ErrorMsg(), o.CmdPath, o.Remaining, o.Possibilities)
}

// orJoin renders names as a quoted, or-joined list: 'a', 'b' or 'c'.
func orJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
