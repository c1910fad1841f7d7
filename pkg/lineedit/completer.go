// Package lineedit adapts parse outcomes for a line-editing front end: it
// turns them into tab-completion candidates and decides whether a pending
// line is finished or should continue onto the next one.
package lineedit

import (
	"strings"

	"github.com/shelf-sh/shelf/pkg/command"
	"github.com/shelf-sh/shelf/pkg/parser"
)

// Complete produces completion candidates for the cursor position pos on
// line. Candidates are insertion texts: they are meant to be spliced in at
// pos as-is, so for a partially typed word only the missing suffix is
// returned. Text after the cursor is ignored, the way bash treats it.
func Complete[S, B any](line string, pos int, quoteChars []rune, custom *command.Set[S], builtins *command.Set[B]) []string {
	if pos > len(line) {
		pos = len(line)
	}
	partial := line[:pos]

	outcome := parser.Parse(partial, quoteChars, custom, builtins)

	// A fully resolved leaf speaks for its own arguments.
	if outcome.Complete {
		return leafCandidates(partial, outcome.LeafCompletion)
	}

	prefix := ""
	if len(outcome.Remaining) > 0 {
		prefix = outcome.Remaining[0]
	} else if needsSeparator(partial) {
		// Everything typed so far is a valid prefix of the tree, but the
		// next subcommand needs a delimiter first. Offer the space itself
		// so the next tab shows the children.
		return []string{" "}
	}

	return suffixesPast(outcome.Possibilities, prefix)
}

// leafCandidates renders a leaf's own completion result into insertion
// texts.
func leafCandidates(partial string, completion command.Completion) []string {
	switch completion.Kind {
	case command.CompleteSuffixes:
		return completion.Candidates
	case command.CompleteValues:
		if needsSeparator(partial) {
			return []string{" "}
		}
		return completion.Candidates
	default:
		return nil
	}
}

// needsSeparator reports whether a space must be inserted before a whole
// next word can be offered. An empty line is its own delimiter.
func needsSeparator(partial string) bool {
	return partial != "" && !strings.HasSuffix(partial, " ")
}

// suffixesPast filters candidates to those starting with prefix and returns
// what remains of each past it.
func suffixesPast(possibilities []string, prefix string) []string {
	var out []string
	for _, poss := range possibilities {
		if strings.HasPrefix(poss, prefix) {
			out = append(out, poss[len(prefix):])
		}
	}
	return out
}
