package eco

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"hbot/internal/command"
	"hbot/internal/permission"
	"hbot/internal/reply"
)

// BalanceCommand shows a user's wallet and bank.
type BalanceCommand struct{}

func (c *BalanceCommand) Name() string { return "balance" }
func (c *BalanceCommand) Aliases() []string { return []string{"bal"} }
func (c *BalanceCommand) Description() string { return "Get your balance!" }
func (c *BalanceCommand) Permission() permission.Level { return permission.Everyone }
func (c *BalanceCommand) BotPermissions() []int64 { return nil }

func (c *BalanceCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	targetID, _ := mc.Parsed.Reader().UserID()
	target := fetchUser(mc.Session, targetID, mc.Message.Author)

	bal, err := mc.Deps.Eco.GetBalance(ctx, target.ID)
	if err != nil {
		return err
	}

	_, err = reply.Embed(mc.Session, mc.Message.ChannelID, &discordgo.MessageEmbed{
		Title: "Balance for " + target.String(),
		Color: balanceColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: target.AvatarURL(""),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wallet", Value: formatInt(bal.Wallet)},
			{Name: "Bank", Value: formatInt(bal.Bank)},
		},
	})
	return err
}
