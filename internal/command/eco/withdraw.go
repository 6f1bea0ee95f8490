package eco

import (
	"context"

	"hbot/internal/command"
	"hbot/internal/permission"
	"hbot/internal/reply"
)

// WithdrawCommand moves bank money back into the wallet.
type WithdrawCommand struct{}

func (c *WithdrawCommand) Name() string { return "withdraw" }
func (c *WithdrawCommand) Aliases() []string { return []string{"with"} }
func (c *WithdrawCommand) Description() string {
	return "Withdraw money from your bank into your wallet"
}
func (c *WithdrawCommand) Permission() permission.Level { return permission.Everyone }
func (c *WithdrawCommand) BotPermissions() []int64 { return nil }

func (c *WithdrawCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	move, ok := readBankAmount(mc, true)
	if !ok {
		_, err := reply.Message(mc.Session, mc.Message.ChannelID,
			":x: Please specify a valid amount to withdraw (use `all` to withdraw all your money).")
		return err
	}
	return runBankMove(ctx, mc, move)
}
