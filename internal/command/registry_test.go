package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hbot/internal/permission"
)

type stubCommand struct {
	name    string
	aliases []string
}

func (c *stubCommand) Name() string { return c.name }
func (c *stubCommand) Aliases() []string { return c.aliases }
func (c *stubCommand) Description() string { return "stub" }
func (c *stubCommand) Permission() permission.Level { return permission.Everyone }
func (c *stubCommand) BotPermissions() []int64 { return nil }
func (c *stubCommand) Run(context.Context, *MessageContext) error { return nil }

func TestRegisterAndResolve(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubCommand{name: "balance", aliases: []string{"bal"}}))

	byName, ok := r.Resolve("balance")
	assert.True(t, ok)
	assert.Equal(t, "balance", byName.Name())

	byAlias, ok := r.Resolve("bal")
	assert.True(t, ok)
	assert.Equal(t, "balance", byAlias.Name())
}

func TestResolveIsExactMatchOnly(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubCommand{name: "balance", aliases: []string{"bal"}}))

	for _, token := range []string{"Balance", "BAL", "balanc", "balances", "ba"} {
		_, ok := r.Resolve(token)
		assert.False(t, ok, "token %q must not resolve", token)
	}
}

func TestRegisterDuplicateNameFails(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubCommand{name: "ping"}))

	err := r.Register(&stubCommand{name: "ping"})
	assert.Error(t, err)
}

func TestRegisterDuplicateAliasFails(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubCommand{name: "pay", aliases: []string{"give"}}))

	// Alias colliding with an existing alias.
	assert.Error(t, r.Register(&stubCommand{name: "donate", aliases: []string{"give"}}))
	// Name colliding with an existing alias.
	assert.Error(t, r.Register(&stubCommand{name: "give"}))
	// Alias colliding with an existing name.
	assert.Error(t, r.Register(&stubCommand{name: "send", aliases: []string{"pay"}}))
}

func TestRemoveDropsNameAndAliases(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubCommand{name: "pay", aliases: []string{"give", "transfer"}}))

	r.Remove("give")

	for _, token := range []string{"pay", "give", "transfer"} {
		_, ok := r.Resolve(token)
		assert.False(t, ok)
	}

	// Freed namespace can be reused.
	assert.NoError(t, r.Register(&stubCommand{name: "transfer"}))
}

func TestAllSortedByName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(
		&stubCommand{name: "pay"},
		&stubCommand{name: "balance"},
		&stubCommand{name: "help"},
	))

	var names []string
	for _, c := range r.All() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"balance", "help", "pay"}, names)
}
