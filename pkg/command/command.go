// Package command holds the command tree data model: leaf commands that
// execute against a piece of shell state, parent commands that route to
// nested children, and name-keyed sets of either.
package command

import (
	"fmt"

	"github.com/shelf-sh/shelf/pkg/usage"
)

// ExecFunc runs a leaf command. It receives the shell's state and the
// argument tokens that followed the command's name on the line, and returns
// the command's output.
type ExecFunc[S any] func(state S, args []string) (string, error)

// ValidateFunc checks a leaf command's arguments before execution.
type ValidateFunc func(args []string) error

// AutocompleteFunc produces argument-level completion for a leaf command.
// remaining holds the tokens after the command's own name; trailingSpace
// reports whether the line ended in a literal space.
type AutocompleteFunc func(remaining []string, trailingSpace bool) Completion

// Command is one node of a command tree. It is either a leaf, which carries
// an executor, or a parent, which carries a set of children and only routes.
// Commands are built once at setup time and never mutated afterwards.
type Command[S any] struct {
	name         string
	help         string
	exec         ExecFunc[S]
	validate     ValidateFunc
	autocomplete AutocompleteFunc

	// children is non-nil exactly when the command is a parent.
	children *Set[S]
}

// LeafOption configures optional behavior on a leaf command.
type LeafOption[S any] func(*Command[S])

// WithValidator attaches an argument validator, run before the executor.
func WithValidator[S any](validate ValidateFunc) LeafOption[S] {
	return func(c *Command[S]) {
		c.validate = validate
	}
}

// WithAutocomplete attaches an argument-level completion function.
func WithAutocomplete[S any](fn AutocompleteFunc) LeafOption[S] {
	return func(c *Command[S]) {
		c.autocomplete = fn
	}
}

// NewLeaf builds an executable command with no children.
func NewLeaf[S any](name string, help string, exec ExecFunc[S], opts ...LeafOption[S]) *Command[S] {
	cmd := &Command[S]{
		name: name,
		help: help,
		exec: exec,
	}
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// NewParent builds a routing command over the given children. Duplicate
// child names are a programming error at setup time, so NewParent panics on
// them rather than returning an error nobody checks.
func NewParent[S any](name string, help string, children ...*Command[S]) *Command[S] {
	set := NewSet[S]()
	for _, child := range children {
		if err := set.Add(child); err != nil {
			panic(fmt.Sprintf("building parent command %q: %v", name, err))
		}
	}
	return &Command[S]{
		name:     name,
		help:     help,
		children: set,
	}
}

// Name returns the token under which the command is invoked.
func (c *Command[S]) Name() string {
	return c.name
}

// Help returns the command's help text, or a minimal fallback built from its
// name when none was supplied.
func (c *Command[S]) Help() string {
	if c.help == "" {
		return fmt.Sprintf("'%s'", c.name)
	}
	return c.help
}

// IsParent reports whether the command routes to children instead of
// executing.
func (c *Command[S]) IsParent() bool {
	return c.children != nil
}

// Children returns the command's child set. It is nil for leaf commands.
func (c *Command[S]) Children() *Set[S] {
	return c.children
}

// ValidateArgs checks the argument tokens without executing anything.
//
// A leaf delegates to its own validator, accepting anything when it has
// none. A parent requires its first argument to name one of its children and
// recurses into that child with the rest; a childless parent accepts only an
// empty argument list.
func (c *Command[S]) ValidateArgs(args []string) error {
	if !c.IsParent() {
		if c.validate == nil {
			return nil
		}
		return c.validate(args)
	}

	if c.children.Len() == 0 {
		if len(args) != 0 {
			return usage.ExtraArgs(args)
		}
		return nil
	}

	child, err := c.childForArgs(args)
	if err != nil {
		return err
	}
	return child.ValidateArgs(args[1:])
}

// Execute runs the command. A leaf invokes its executor; a parent consumes
// one token to pick a child and delegates the rest to it. Execution errors
// from leaves propagate unchanged through any enclosing parents.
func (c *Command[S]) Execute(state S, args []string) (string, error) {
	if !c.IsParent() {
		return c.exec(state, args)
	}

	child, err := c.childForArgs(args)
	if err != nil {
		return "", err
	}
	return child.Execute(state, args[1:])
}

// Autocomplete asks a leaf for argument-level completion. Parents and leaves
// without a completion function offer nothing.
func (c *Command[S]) Autocomplete(remaining []string, trailingSpace bool) Completion {
	if c.IsParent() || c.autocomplete == nil {
		return NoCompletion()
	}
	return c.autocomplete(remaining, trailingSpace)
}

func (c *Command[S]) childForArgs(args []string) (*Command[S], error) {
	if len(args) == 0 {
		return nil, usage.NoArgs()
	}
	child, ok := c.children.Get(args[0])
	if !ok {
		return nil, usage.InvalidSubCommand(args[0], c.children.Names())
	}
	return child, nil
}
