package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hbot/internal/command"
	"hbot/internal/config"
	"hbot/internal/permission"
)

// newTestBot builds a bot with a session that has no transport. Any attempt
// to send a message would panic, so "no panic" doubles as "no outbound
// traffic" in these tests.
func newTestBot(t *testing.T) (*Bot, *discordgo.Session, *stubCommand) {
	t.Helper()

	state := discordgo.NewState()
	state.User = &discordgo.User{ID: "bot-user"}
	session := &discordgo.Session{State: state}

	stub := &stubCommand{name: "known"}
	registry := command.NewRegistry()
	require.NoError(t, registry.Register(stub))

	b := NewBot(
		&config.Config{Prefix: "$"},
		&command.Deps{Registry: registry, Prefix: "$"},
	)
	b.ctx = context.Background()
	return b, session, stub
}

type stubCommand struct {
	name string
	ran  bool
}

func (c *stubCommand) Name() string { return c.name }
func (c *stubCommand) Aliases() []string { return nil }
func (c *stubCommand) Description() string { return "stub" }
func (c *stubCommand) Permission() permission.Level { return permission.Everyone }
func (c *stubCommand) BotPermissions() []int64 { return nil }
func (c *stubCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	c.ran = true
	return nil
}

func message(author, guild, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		Author:  &discordgo.User{ID: author},
		GuildID: guild,
		Content: content,
	}}
}

func TestDispatchIgnoresUnknownCommand(t *testing.T) {
	b, s, stub := newTestBot(t)

	assert.NotPanics(t, func() {
		b.onMessageCreate(s, message("u1", "g1", "$doesnotexist"))
	})
	assert.False(t, stub.ran)
}

func TestDispatchIgnoresNonCommandText(t *testing.T) {
	b, s, stub := newTestBot(t)

	assert.NotPanics(t, func() {
		b.onMessageCreate(s, message("u1", "g1", "just chatting"))
	})
	assert.False(t, stub.ran)
}

func TestDispatchIgnoresDirectMessages(t *testing.T) {
	b, s, stub := newTestBot(t)

	assert.NotPanics(t, func() {
		b.onMessageCreate(s, message("u1", "", "$known"))
	})
	assert.False(t, stub.ran)
}

func TestDispatchIgnoresOwnMessages(t *testing.T) {
	b, s, stub := newTestBot(t)

	assert.NotPanics(t, func() {
		b.onMessageCreate(s, message("bot-user", "g1", "$known"))
	})
	assert.False(t, stub.ran)
}

func TestDispatchIgnoresBotAuthors(t *testing.T) {
	b, s, stub := newTestBot(t)

	m := message("other-bot", "g1", "$known")
	m.Author.Bot = true
	assert.NotPanics(t, func() {
		b.onMessageCreate(s, m)
	})
	assert.False(t, stub.ran)
}
