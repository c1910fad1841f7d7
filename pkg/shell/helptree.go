package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shelf-sh/shelf/pkg/command"
)

var treeHeaderStyle = lipgloss.NewStyle().Bold(true)

// helpTreeExec renders the full command hierarchy as a box-drawing tree,
// custom commands first, builtins after.
func helpTreeExec[S any](sh *Shell[S], _ []string) (string, error) {
	var lines []string

	lines = append(lines, treeHeaderStyle.Render("Normal commands"))
	appendTreeLines(&lines, indentCtx{}, sh.cmds.Commands())

	lines = append(lines, "")

	lines = append(lines, treeHeaderStyle.Render("Builtins"))
	appendTreeLines(&lines, indentCtx{}, sh.builtins.Commands())

	return strings.Join(lines, "\n"), nil
}

// indentCtx tracks, per ancestor level, whether that ancestor was the last
// of its siblings. A level whose ancestor was last gets blank indentation
// instead of a continuation pipe, since the ancestor's elbow already closed
// its branch.
type indentCtx struct {
	last    bool
	parents []bool
}

func (c indentCtx) indent(last bool) indentCtx {
	parents := make([]bool, len(c.parents), len(c.parents)+1)
	copy(parents, c.parents)
	return indentCtx{last: last, parents: append(parents, last)}
}

func (c indentCtx) withLast(last bool) indentCtx {
	return indentCtx{last: last, parents: c.parents}
}

func appendTreeLines[T any](lines *[]string, ctx indentCtx, cmds []*command.Command[T]) {
	for i, cmd := range cmds {
		last := i == len(cmds)-1
		*lines = append(*lines, treeLine(ctx.withLast(last), cmd.Name()))
		if cmd.IsParent() && cmd.Children().Len() != 0 {
			appendTreeLines(lines, ctx.indent(last), cmd.Children().Commands())
		}
	}
}

func treeLine(ctx indentCtx, name string) string {
	var b strings.Builder
	for _, parentWasLast := range ctx.parents {
		if parentWasLast {
			b.WriteString("    ")
		} else {
			b.WriteString("│   ")
		}
	}
	if ctx.last {
		b.WriteString("└")
	} else {
		b.WriteString("├")
	}
	b.WriteString("── ")
	b.WriteString(name)
	return b.String()
}
