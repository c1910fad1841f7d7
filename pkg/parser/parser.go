// Package parser resolves tokenized input lines against command trees.
//
// A line is resolved against two sets, the user's custom commands and the
// shell's builtins. Custom commands win unconditionally: a complete custom
// match is returned without consulting builtins, and when both sets fail the
// custom outcome carries the diagnostics.
package parser

import (
	"github.com/shelf-sh/shelf/pkg/command"
	"github.com/shelf-sh/shelf/pkg/tokenizer"
)

// Parse tokenizes line and resolves it, custom set first, then builtins.
// The two sets may be generic over different state types; the caller uses
// the outcome's CmdType to know which state to execute against.
func Parse[S, B any](line string, quoteChars []rune, custom *command.Set[S], builtins *command.Set[B]) Outcome {
	tok := tokenizer.Tokenize(line, quoteChars)

	customOutcome := resolveInSet(tok, custom, Custom)
	if customOutcome.Complete {
		return customOutcome
	}

	builtinOutcome := resolveInSet(tok, builtins, Builtin)
	if builtinOutcome.Complete {
		return builtinOutcome
	}

	return customOutcome
}

// resolveInSet descends token by token from the given top-level set, moving
// into a parent's child set on each match, until it reaches a leaf, runs out
// of tokens, or hits a token the current set does not know.
func resolveInSet[S any](tok tokenizer.Tokenization, set *command.Set[S], tag CommandType) Outcome {
	cur := set
	var cmdPath []string

	for i, token := range tok.Tokens {
		cmd, ok := cur.Get(token)
		if !ok {
			return Outcome{
				CmdPath:        cmdPath,
				Remaining:      tok.Tokens[i:],
				CmdType:        typeTag(tag, cmdPath),
				Possibilities:  cur.Names(),
				LeafCompletion: command.NoCompletion(),
			}
		}

		cmdPath = append(cmdPath, token)

		if !cmd.IsParent() {
			remaining := tok.Tokens[i+1:]
			return Outcome{
				CmdPath:        cmdPath,
				Remaining:      remaining,
				CmdType:        tag,
				LeafCompletion: cmd.Autocomplete(remaining, tok.TrailingSpace),
				Complete:       true,
			}
		}

		cur = cmd.Children()
	}

	// Tokens ran out while still inside a parent (or the line was empty).
	return Outcome{
		CmdPath:        cmdPath,
		CmdType:        typeTag(tag, cmdPath),
		Possibilities:  cur.Names(),
		LeafCompletion: command.NoCompletion(),
	}
}

// typeTag downgrades the set's tag to Unknown when no token matched at all,
// since nothing ties the failure to one set yet.
func typeTag(tag CommandType, cmdPath []string) CommandType {
	if len(cmdPath) == 0 {
		return Unknown
	}
	return tag
}
