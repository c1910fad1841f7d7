// Package shell is the interactive driver: it owns the two command sets and
// the user's state, reads lines, resolves them through the parser, and
// executes the matched leaf.
package shell

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterh/liner"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/shelf-sh/shelf/internal/history"
	"github.com/shelf-sh/shelf/internal/styles"
	"github.com/shelf-sh/shelf/pkg/command"
	"github.com/shelf-sh/shelf/pkg/lineedit"
	"github.com/shelf-sh/shelf/pkg/parser"
	"github.com/shelf-sh/shelf/pkg/tokenizer"
	"github.com/shelf-sh/shelf/pkg/usage"
)

// Shell drives the read-eval loop over a tree of user commands and the
// built-in ones. S is the user state type, passed mutably into each custom
// command execution; builtins execute against the shell itself.
type Shell[S any] struct {
	prompt     string
	contPrompt string
	quotes     []rune
	state      S

	cmds     *command.Set[S]
	builtins *command.Set[*Shell[S]]

	logger    *zap.Logger
	hist      *history.Manager
	histSize  int
	sessionID string

	// memHistory holds this session's lines, newest last. It backs the
	// history builtin when no persistent manager is attached.
	memHistory []string

	terminate bool
	out       io.Writer
}

// New constructs a stateless shell with the given prompt.
func New(prompt string, opts ...Option[struct{}]) *Shell[struct{}] {
	return NewWithState(prompt, struct{}{}, opts...)
}

// NewWithState constructs a shell whose commands execute against state.
func NewWithState[S any](prompt string, state S, opts ...Option[S]) *Shell[S] {
	s := &Shell[S]{
		prompt:     prompt,
		contPrompt: "> ",
		quotes:     tokenizer.DefaultQuotes,
		state:      state,
		cmds:       command.NewSet[S](),
		logger:     zap.NewNop(),
		histSize:   500,
		sessionID:  uuid.New().String(),
		out:        os.Stdout,
	}
	s.builtins = buildBuiltins[S]()

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register adds a command to the shell's custom set. Registration happens
// before Run; a duplicate name fails with an already-registered error.
func (s *Shell[S]) Register(cmd *command.Command[S]) error {
	return s.cmds.Add(cmd)
}

// State returns the shell's user state.
func (s *Shell[S]) State() S {
	return s.state
}

// SessionID identifies this shell session in persisted history.
func (s *Shell[S]) SessionID() string {
	return s.sessionID
}

// Terminated reports whether an executed command asked the shell to stop.
func (s *Shell[S]) Terminated() bool {
	return s.terminate
}

// Eval resolves and executes a single input line, returning the command's
// output. Resolution failures, validation failures and execution errors all
// come back as errors for the caller to render; none of them are fatal.
func (s *Shell[S]) Eval(line string) (string, error) {
	if strings.TrimSpace(line) != "" {
		s.recordHistory(line)
	}

	outcome := parser.Parse(line, s.quotes, s.cmds, s.builtins)
	s.logger.Debug("parsed line",
		zap.String("line", line),
		zap.Bool("complete", outcome.Complete),
		zap.Strings("cmd_path", outcome.CmdPath),
		zap.String("cmd_type", outcome.CmdType.String()))

	if !outcome.Complete {
		if len(outcome.CmdPath) == 0 {
			if len(outcome.Remaining) == 0 {
				// Nothing typed; nothing to do.
				return "", nil
			}
			return "", s.unrecognized(outcome.Remaining[0])
		}
		return "", outcome.Err()
	}

	switch outcome.CmdType {
	case parser.Builtin:
		return evalLeaf(s.builtins, outcome, s)
	default:
		return evalLeaf(s.cmds, outcome, s.state)
	}
}

// evalLeaf looks the resolved leaf up by its path in the winning set,
// validates the leftover tokens as its arguments, and executes it.
func evalLeaf[T any](set *command.Set[T], outcome parser.Outcome, state T) (string, error) {
	cmd, ok := leafByPath(set, outcome.CmdPath)
	if !ok {
		// The parser only reports paths it resolved, so this means the
		// set changed mid-eval; treat it as unrecognized.
		return "", usage.UnrecognizedCommand(strings.Join(outcome.CmdPath, " "))
	}
	if err := cmd.ValidateArgs(outcome.Remaining); err != nil {
		return "", err
	}
	return cmd.Execute(state, outcome.Remaining)
}

// leafByPath descends the set along path and returns the leaf at its end.
func leafByPath[S any](set *command.Set[S], path []string) (*command.Command[S], bool) {
	cur := set
	for i, name := range path {
		cmd, ok := cur.Get(name)
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			if cmd.IsParent() {
				return nil, false
			}
			return cmd, true
		}
		if !cmd.IsParent() {
			return nil, false
		}
		cur = cmd.Children()
	}
	return nil, false
}

// unrecognized builds the error for a top-level token that matched neither
// set, with close-name suggestions when any exist.
func (s *Shell[S]) unrecognized(token string) error {
	err := usage.UnrecognizedCommand(token)

	suggestions := s.suggest(token)
	if len(suggestions) > 0 {
		err.Expected = suggestions
		err.Message += fmt.Sprintf(" (did you mean %s?)", quotedOrJoin(suggestions))
	}

	return err
}

// suggest fuzzy-matches token against every known command name and returns
// up to three of the closest.
func (s *Shell[S]) suggest(token string) []string {
	names := append(s.cmds.Names(), s.builtins.Names()...)
	sort.Strings(names)

	matches := fuzzy.Find(token, names)
	limit := 3
	if len(matches) < limit {
		limit = len(matches)
	}

	suggestions := make([]string, 0, limit)
	for _, m := range matches[:limit] {
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

func quotedOrJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

// recordHistory stores a submitted line in the session history, and in the
// persistent manager when one is attached.
func (s *Shell[S]) recordHistory(line string) {
	s.memHistory = append(s.memHistory, line)

	if s.hist == nil {
		return
	}
	if _, err := s.hist.Record(line, s.sessionID); err != nil {
		s.logger.Warn("recording history entry", zap.Error(err))
	}
}

// Run executes the read-eval loop until the user exits. Interrupt and
// end-of-input both end the loop cleanly; only reader I/O failures surface
// as errors.
func (s *Shell[S]) Run() error {
	rl := liner.NewLiner()
	defer func() {
		_ = rl.Close()
	}()

	rl.SetCtrlCAborts(true)
	rl.SetWordCompleter(s.wordCompleter)
	s.seedHistory(rl)

	s.logger.Info("shell session started", zap.String("session_id", s.sessionID))

	for !s.terminate {
		input, err := s.readLine(rl)
		switch err {
		case nil:
		case liner.ErrPromptAborted, io.EOF:
			fmt.Fprintln(s.out, "bye")
			return nil
		default:
			s.logger.Error("reading input", zap.Error(err))
			return err
		}

		if strings.TrimSpace(input) != "" {
			rl.AppendHistory(input)
		}

		output, err := s.Eval(input)
		if err != nil {
			fmt.Fprintln(s.out, styles.ERROR(err.Error()))
			continue
		}
		if output != "" {
			fmt.Fprintln(s.out, output)
		}
	}

	return nil
}

// readLine reads one logical input, prompting for continuation lines while
// the input has an unclosed quote or bracket or ends in a bare backslash.
func (s *Shell[S]) readLine(rl *liner.State) (string, error) {
	input, err := rl.Prompt(s.prompt)
	if err != nil {
		return "", err
	}

	for lineedit.Validate(input, s.quotes) == lineedit.Incomplete {
		more, err := rl.Prompt(s.contPrompt)
		if err != nil {
			return "", err
		}
		input += "\n" + more
	}

	return input, nil
}

// wordCompleter adapts the completion engine to liner: candidates are
// insertion texts spliced in at the cursor.
func (s *Shell[S]) wordCompleter(line string, pos int) (string, []string, string) {
	candidates := lineedit.Complete(line, pos, s.quotes, s.cmds, s.builtins)
	s.logger.Debug("completion request",
		zap.String("line", line),
		zap.Int("pos", pos),
		zap.Strings("candidates", candidates))
	return line[:pos], candidates, line[pos:]
}

// seedHistory preloads liner's up-arrow history from the persistent store.
func (s *Shell[S]) seedHistory(rl *liner.State) {
	if s.hist == nil {
		return
	}

	entries, err := s.hist.Recent(s.histSize)
	if err != nil {
		s.logger.Warn("loading history", zap.Error(err))
		return
	}
	for _, entry := range entries {
		rl.AppendHistory(entry.Line)
	}
}
