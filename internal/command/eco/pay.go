package eco

import (
	"context"
	"fmt"
	"time"

	"hbot/internal/command"
	"hbot/internal/permission"
	"hbot/internal/reply"
)

const payCooldown = 5 * time.Second

// PayCommand transfers wallet money to another user.
type PayCommand struct{}

func (c *PayCommand) Name() string { return "pay" }
func (c *PayCommand) Aliases() []string { return []string{"give", "transfer"} }
func (c *PayCommand) Description() string { return "Pay a user" }
func (c *PayCommand) Permission() permission.Level { return permission.Everyone }
func (c *PayCommand) BotPermissions() []int64 { return nil }

func (c *PayCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	reader := mc.Parsed.Reader()
	targetID, hasTarget := reader.UserID()
	amount, hasAmount := reader.Int()

	if !hasTarget || targetID == mc.Message.Author.ID || !hasAmount || amount <= 0 {
		_, err := reply.Message(mc.Session, mc.Message.ChannelID,
			"Please specify a valid user to pay and a valid amount.")
		return err
	}

	free, err := mc.Deps.Cooldown.Acquire(ctx, "pay", mc.Message.Author.ID, payCooldown)
	if err != nil {
		return err
	}
	if !free {
		_, err := reply.Message(mc.Session, mc.Message.ChannelID,
			":x: You're doing that too fast. Try again in a few seconds.")
		return err
	}

	target := fetchUser(mc.Session, targetID, nil)
	if target == nil {
		_, err := reply.Message(mc.Session, mc.Message.ChannelID,
			"Please specify a valid user to pay and a valid amount.")
		return err
	}

	ok, err := mc.Deps.Eco.Transfer(ctx, mc.Message.Author.ID, target.ID, amount)
	if err != nil {
		return err
	}
	if ok {
		_, err = reply.Message(mc.Session, mc.Message.ChannelID,
			fmt.Sprintf(":white_check_mark: Transferred %sh to %s!", formatInt(amount), target.String()))
		return err
	}

	bal, err := mc.Deps.Eco.GetBalance(ctx, mc.Message.Author.ID)
	if err != nil {
		return err
	}
	_, err = reply.Message(mc.Session, mc.Message.ChannelID,
		fmt.Sprintf(":x: Could not transfer %sh. You have %dh in your wallet.", formatInt(amount), bal.Wallet))
	return err
}
