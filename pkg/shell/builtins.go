package shell

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/shelf-sh/shelf/internal/styles"
	"github.com/shelf-sh/shelf/pkg/command"
	"github.com/shelf-sh/shelf/pkg/usage"
)

// buildBuiltins assembles the commands every shell carries: help, helptree,
// history and exit. They execute against the shell itself rather than the
// user's state.
func buildBuiltins[S any]() *command.Set[*Shell[S]] {
	builtins := command.NewSet[*Shell[S]]()

	for _, cmd := range []*command.Command[*Shell[S]]{
		command.NewLeaf("help", "lists all commands with their help text",
			helpExec[S], command.WithValidator[*Shell[S]](noArgsValidator)),
		command.NewLeaf("helptree", "prints the full command tree",
			helpTreeExec[S], command.WithValidator[*Shell[S]](noArgsValidator)),
		command.NewLeaf("history", "lists previously entered lines",
			historyExec[S], command.WithValidator[*Shell[S]](noArgsValidator)),
		command.NewLeaf("exit", "exits the shell",
			exitExec[S], command.WithValidator[*Shell[S]](noArgsValidator)),
	} {
		// These names cannot collide with each other, so Add cannot fail.
		if err := builtins.Add(cmd); err != nil {
			panic(err)
		}
	}

	return builtins
}

func noArgsValidator(args []string) error {
	if len(args) != 0 {
		return usage.ExtraArgs(args)
	}
	return nil
}

// helpExec renders the two-section command listing, one line per command,
// help text aligned into a column.
func helpExec[S any](sh *Shell[S], _ []string) (string, error) {
	lines := make([]string, 0, sh.cmds.Len()+sh.builtins.Len()+2)

	lines = append(lines, styles.HEADER("Normal commands:"))
	lines = append(lines, helpSection(sh.cmds.Commands())...)

	lines = append(lines, styles.HEADER("Built-in commands:"))
	lines = append(lines, helpSection(sh.builtins.Commands())...)

	return strings.Join(lines, "\n"), nil
}

func helpSection[T any](cmds []*command.Command[T]) []string {
	width := 0
	for _, cmd := range cmds {
		if w := runewidth.StringWidth(cmd.Name()); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		padding := strings.Repeat(" ", width-runewidth.StringWidth(cmd.Name()))
		name := styles.COMMAND_NAME(fmt.Sprintf("'%s'", cmd.Name()))
		lines = append(lines, fmt.Sprintf("\t%s%s - %s", name, padding, cmd.Help()))
	}
	return lines
}

// historyExec lists previously entered lines, oldest first. With a
// persistent manager attached the listing spans sessions and carries entry
// ages; otherwise it covers this session only.
func historyExec[S any](sh *Shell[S], _ []string) (string, error) {
	if sh.hist == nil {
		if len(sh.memHistory) == 0 {
			return "no history yet", nil
		}
		return "\t" + strings.Join(sh.memHistory, "\n\t"), nil
	}

	entries, err := sh.hist.Recent(sh.histSize)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "no history yet", nil
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("\t%s %s", entry.Line, styles.HINT(humanize.Time(entry.CreatedAt))))
	}
	return strings.Join(lines, "\n"), nil
}

func exitExec[S any](sh *Shell[S], _ []string) (string, error) {
	sh.terminate = true
	return "bye", nil
}
