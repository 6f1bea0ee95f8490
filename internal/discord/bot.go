package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"hbot/internal/command"
	"hbot/internal/config"
	"hbot/internal/permission"
	"hbot/internal/reply"
)

const genericFailure = ":x: Something went wrong while running that command."

// Bot is the Discord gateway adapter: it owns the session and runs the
// per-message dispatch pipeline over the command registry.
type Bot struct {
	dg   *discordgo.Session
	cfg  *config.Config
	deps *command.Deps
	ctx  context.Context
}

// NewBot wires the bot. The permission evaluator inside deps is filled in
// during Run, once the application owner has been fetched.
func NewBot(cfg *config.Config, deps *command.Deps) *Bot {
	return &Bot{cfg: cfg, deps: deps}
}

// Run connects to the gateway and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg
	b.ctx = ctx

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	// The application owner is fetched once; BOT_OWNER checks resolve
	// against this snapshot for the life of the process.
	app, err := dg.Application("@me")
	if err != nil {
		return fmt.Errorf("failed to fetch application: %w", err)
	}
	b.deps.Perms = permission.NewEvaluator(app)

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Closing gateway session...")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ Bot %v is running on %d guild(s), prefix %q", r.User.Username, len(r.Guilds), b.cfg.Prefix)
}

// onMessageCreate is the dispatch pipeline. Gates run in a fixed order and
// the first failing gate ends the dispatch: guild context, prefix parse,
// registry lookup, bot capabilities (the only loud denial), invoker
// permission (silent), then the handler inside the containment boundary.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		return
	}

	parsed, ok := command.Parse(b.cfg.Prefix, m.Content)
	if !ok {
		return
	}

	cmd, ok := b.deps.Registry.Resolve(parsed.Command)
	if !ok {
		log.Printf("[DEBUG] Unknown command %q from user %s", parsed.Command, m.Author.ID)
		return
	}

	missing, err := b.missingBotPermissions(s, m.ChannelID, cmd.BotPermissions())
	if err != nil {
		log.Printf("[ERR] Capability check for %s failed: %v", cmd.Name(), err)
		return
	}
	if len(missing) > 0 {
		log.Printf("[WARN] Missing bot permissions for %s in channel %s: %v", cmd.Name(), m.ChannelID, missing)
		_, _ = reply.Message(s, m.ChannelID, fmt.Sprintf(
			"I need the following permissions in this channel to run this command:\n`%s`",
			strings.Join(missing, "`, `"),
		))
		return
	}

	inv, err := b.resolveInvoker(s, m)
	if err != nil {
		log.Printf("[ERR] Failed to resolve invoker for %s: %v", cmd.Name(), err)
		return
	}
	if !b.deps.Perms.Check(inv, cmd.Permission()) {
		// Denials are silent on purpose; no hint that the command exists.
		log.Printf("[DEBUG] Permission denied: %s requires %s, user %s", cmd.Name(), cmd.Permission(), m.Author.ID)
		return
	}

	b.runCommand(cmd, &command.MessageContext{
		Session: s,
		Message: m,
		Parsed:  parsed,
		Invoker: inv,
		Deps:    b.deps,
	})
}

// runCommand is the single containment boundary: a handler error or panic is
// logged and answered with a generic failure, never crashes the dispatcher.
func (b *Bot) runCommand(cmd command.Command, mc *command.MessageContext) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERR] Command %s panicked: %v", cmd.Name(), r)
			_, _ = reply.Message(mc.Session, mc.Message.ChannelID, genericFailure)
		}
	}()

	if err := cmd.Run(b.ctx, mc); err != nil {
		log.Printf("[ERR] Command %s failed: %v", cmd.Name(), err)
		_, _ = reply.Message(mc.Session, mc.Message.ChannelID, genericFailure)
	}
}

// resolveInvoker gathers what the permission evaluator needs about the author.
func (b *Bot) resolveInvoker(s *discordgo.Session, m *discordgo.MessageCreate) (permission.Invoker, error) {
	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		return permission.Invoker{}, fmt.Errorf("failed to get user permissions: %w", err)
	}

	guild, err := s.State.Guild(m.GuildID)
	if err != nil {
		guild, err = s.Guild(m.GuildID)
		if err != nil {
			return permission.Invoker{}, fmt.Errorf("failed to resolve guild %s: %w", m.GuildID, err)
		}
	}

	return permission.Invoker{
		UserID:       m.Author.ID,
		Permissions:  perms,
		GuildOwnerID: guild.OwnerID,
		InGuild:      m.GuildID != "" && m.Member != nil,
	}, nil
}
