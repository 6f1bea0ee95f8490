package command

import (
	"fmt"
	"sort"
)

// Registry maps names and aliases to commands. Lookup is exact and
// case-sensitive. Registration happens once at startup; a name or alias
// collision is a configuration error and must abort initialization.
type Registry struct {
	commands map[string]Command
	aliases  map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		aliases:  make(map[string]Command),
	}
}

// Register adds commands, failing on the first duplicate name or alias.
func (r *Registry) Register(cmds ...Command) error {
	for _, c := range cmds {
		if err := r.add(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) add(c Command) error {
	if _, ok := r.resolve(c.Name()); ok {
		return fmt.Errorf("command %q already registered", c.Name())
	}
	for _, a := range c.Aliases() {
		if taken, ok := r.resolve(a); ok {
			return fmt.Errorf("alias %q of command %q already registered under %q", a, c.Name(), taken.Name())
		}
	}
	r.commands[c.Name()] = c
	for _, a := range c.Aliases() {
		r.aliases[a] = c
	}
	return nil
}

// Resolve returns the command matching the token by exact name or alias.
func (r *Registry) Resolve(token string) (Command, bool) {
	return r.resolve(token)
}

func (r *Registry) resolve(token string) (Command, bool) {
	if c, ok := r.commands[token]; ok {
		return c, true
	}
	c, ok := r.aliases[token]
	return c, ok
}

// Remove deletes a command and all its aliases. The token may be a name or
// any alias.
func (r *Registry) Remove(token string) {
	c, ok := r.resolve(token)
	if !ok {
		return
	}
	delete(r.commands, c.Name())
	for _, a := range c.Aliases() {
		delete(r.aliases, a)
	}
}

// All returns the registered commands sorted by name.
func (r *Registry) All() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
