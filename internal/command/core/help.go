package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"hbot/internal/command"
	"hbot/internal/permission"
	"hbot/internal/reply"
)

const helpColor = 0x87ceeb

// HelpCommand lists commands, or shows detail for one. Only commands the
// invoker could actually run are listed.
type HelpCommand struct{}

func (c *HelpCommand) Name() string { return "help" }
func (c *HelpCommand) Aliases() []string { return nil }
func (c *HelpCommand) Description() string { return "Shows information and usage for commands." }
func (c *HelpCommand) Permission() permission.Level { return permission.Everyone }
func (c *HelpCommand) BotPermissions() []int64 { return nil }

func (c *HelpCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	var sb strings.Builder

	if topic, ok := mc.Parsed.Reader().String(); ok {
		if cmd, found := mc.Deps.Registry.Resolve(topic); found {
			aliases := strings.Join(cmd.Aliases(), ", ")
			if aliases == "" {
				aliases = "<None>"
			}
			fmt.Fprintf(&sb, "`%s`\n%s\n\nAliases: %s", cmd.Name(), cmd.Description(), aliases)
		} else {
			sb.WriteString(":x: Could not find command.")
		}
	} else {
		for _, cmd := range mc.Deps.Registry.All() {
			if !mc.Deps.Perms.Check(mc.Invoker, cmd.Permission()) {
				continue
			}
			fmt.Fprintf(&sb, "`%s` - %s\n", cmd.Name(), cmd.Description())
		}
	}

	botName := ""
	if mc.Session.State.User != nil {
		botName = mc.Session.State.User.Username
	}
	_, err := reply.Embed(mc.Session, mc.Message.ChannelID, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s - Help", botName),
		Description: sb.String(),
		Color:       helpColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Prefix: %s", mc.Deps.Prefix),
		},
	})
	return err
}
