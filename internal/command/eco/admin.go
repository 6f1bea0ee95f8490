package eco

import (
	"context"
	"fmt"

	"hbot/internal/command"
	"hbot/internal/permission"
	"hbot/internal/reply"
)

// EcoSetCommand overwrites one side of a user's balance. Bot owner only.
type EcoSetCommand struct{}

func (c *EcoSetCommand) Name() string { return "ecoset" }
func (c *EcoSetCommand) Aliases() []string { return []string{"eset"} }
func (c *EcoSetCommand) Description() string {
	return "Set wallet and bank balance for users in the economy system."
}
func (c *EcoSetCommand) Permission() permission.Level { return permission.BotOwner }
func (c *EcoSetCommand) BotPermissions() []int64 { return nil }

func (c *EcoSetCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	reader := mc.Parsed.Reader()
	targetID, _ := reader.UserID()
	loc, _ := reader.String()
	amount, hasAmount := reader.Int()

	target := fetchUser(mc.Session, targetID, nil)
	if target == nil {
		_, err := reply.Message(mc.Session, mc.Message.ChannelID, ":x: Please specify a valid user.")
		return err
	}
	if !hasAmount || amount < 0 {
		_, err := reply.Message(mc.Session, mc.Message.ChannelID, ":x: Please specify a valid integer amount >= 0.")
		return err
	}

	bal, err := mc.Deps.Eco.GetBalance(ctx, target.ID)
	if err != nil {
		return err
	}
	switch loc {
	case "bank":
		bal.Bank = amount
	case "wallet":
		bal.Wallet = amount
	default:
		_, err := reply.Message(mc.Session, mc.Message.ChannelID,
			":x: Please specify a valid location (`bank` or `wallet`).")
		return err
	}

	if err := mc.Deps.Eco.SetBalance(ctx, target.ID, bal); err != nil {
		return err
	}
	_, err = reply.Message(mc.Session, mc.Message.ChannelID, fmt.Sprintf(
		":white_check_mark: Updated balance of **%s** -- bank = %s, wallet = %s",
		target.String(), formatInt(bal.Bank), formatInt(bal.Wallet)))
	return err
}

// EcoAddCommand applies signed wallet/bank deltas to a user. Bot owner only.
type EcoAddCommand struct{}

func (c *EcoAddCommand) Name() string { return "ecoadd" }
func (c *EcoAddCommand) Aliases() []string { return []string{"eadd"} }
func (c *EcoAddCommand) Description() string {
	return "Add (or subtract) wallet and bank balance for users in the economy system."
}
func (c *EcoAddCommand) Permission() permission.Level { return permission.BotOwner }
func (c *EcoAddCommand) BotPermissions() []int64 { return nil }

func (c *EcoAddCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	reader := mc.Parsed.Reader()
	targetID, _ := reader.UserID()
	deltaWallet, hasWallet := reader.Int()
	deltaBank, hasBank := reader.Int()

	target := fetchUser(mc.Session, targetID, nil)
	if target == nil {
		_, err := reply.Message(mc.Session, mc.Message.ChannelID, ":x: Please specify a valid user.")
		return err
	}
	if !hasWallet || !hasBank {
		_, err := reply.Message(mc.Session, mc.Message.ChannelID,
			":x: Please specify wallet and bank deltas, e.g. `ecoadd @user 100 0`.")
		return err
	}

	if err := mc.Deps.Eco.AddBalance(ctx, target.ID, deltaWallet, deltaBank); err != nil {
		return err
	}

	bal, err := mc.Deps.Eco.GetBalance(ctx, target.ID)
	if err != nil {
		return err
	}
	_, err = reply.Message(mc.Session, mc.Message.ChannelID, fmt.Sprintf(
		":white_check_mark: Updated balance of **%s** -- bank = %s, wallet = %s",
		target.String(), formatInt(bal.Bank), formatInt(bal.Wallet)))
	return err
}
