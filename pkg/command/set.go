package command

import (
	"sort"

	"github.com/samber/lo"

	"github.com/shelf-sh/shelf/pkg/usage"
)

// Set is a name-keyed collection of commands. A shell carries two of them,
// one for user-registered commands and one for builtins, and every parent
// command carries one for its children.
type Set[S any] struct {
	cmds map[string]*Command[S]
}

// NewSet returns an empty Set.
func NewSet[S any]() *Set[S] {
	return &Set[S]{cmds: make(map[string]*Command[S])}
}

// Add inserts a command keyed by its name. Inserting a name that is already
// present fails rather than silently overwriting.
func (s *Set[S]) Add(cmd *Command[S]) error {
	if _, ok := s.cmds[cmd.Name()]; ok {
		return usage.AlreadyRegistered(cmd.Name())
	}
	s.cmds[cmd.Name()] = cmd
	return nil
}

// Get looks up a command by name.
func (s *Set[S]) Get(name string) (*Command[S], bool) {
	cmd, ok := s.cmds[name]
	return cmd, ok
}

// Contains reports whether a command by that name is present.
func (s *Set[S]) Contains(name string) bool {
	_, ok := s.cmds[name]
	return ok
}

// Len returns the number of commands in the set.
func (s *Set[S]) Len() int {
	return len(s.cmds)
}

// Names returns the command names in alphabetical order. Diagnostics and
// completion listings rely on this ordering being deterministic.
func (s *Set[S]) Names() []string {
	names := lo.Keys(s.cmds)
	sort.Strings(names)
	return names
}

// Commands returns the commands ordered by name.
func (s *Set[S]) Commands() []*Command[S] {
	cmds := make([]*Command[S], 0, len(s.cmds))
	for _, name := range s.Names() {
		cmds = append(cmds, s.cmds[name])
	}
	return cmds
}
