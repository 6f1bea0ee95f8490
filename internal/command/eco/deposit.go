package eco

import (
	"context"
	"strings"

	"hbot/internal/command"
	"hbot/internal/economy"
	"hbot/internal/permission"
	"hbot/internal/reply"
)

// DepositCommand moves wallet money into the bank.
type DepositCommand struct{}

func (c *DepositCommand) Name() string { return "deposit" }
func (c *DepositCommand) Aliases() []string { return []string{"dep"} }
func (c *DepositCommand) Description() string {
	return "Deposit money from your wallet into your bank"
}
func (c *DepositCommand) Permission() permission.Level { return permission.Everyone }
func (c *DepositCommand) BotPermissions() []int64 { return nil }

func (c *DepositCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	move, ok := readBankAmount(mc, false)
	if !ok {
		_, err := reply.Message(mc.Session, mc.Message.ChannelID,
			":x: Please specify a valid amount to deposit (use `all` to deposit all your money).")
		return err
	}
	return runBankMove(ctx, mc, move)
}

// readBankAmount reads a positive integer or the `all` sentinel and turns it
// into the signed move: deposits are positive, withdrawals negative.
func readBankAmount(mc *command.MessageContext, withdraw bool) (economy.BankMove, bool) {
	reader := mc.Parsed.Reader()
	if n, ok := reader.Int(); ok && n > 0 {
		if withdraw {
			n = -n
		}
		return economy.Exact(n), true
	}
	if s, ok := reader.String(); ok && strings.EqualFold(s, "all") {
		if withdraw {
			return economy.WithdrawAll, true
		}
		return economy.DepositAll, true
	}
	return economy.BankMove{}, false
}

func runBankMove(ctx context.Context, mc *command.MessageContext, move economy.BankMove) error {
	ok, err := mc.Deps.Eco.MoveBankBalance(ctx, mc.Message.Author.ID, move)
	if err != nil {
		return err
	}
	if ok {
		_, err = reply.Message(mc.Session, mc.Message.ChannelID, ":white_check_mark: Transaction succeeded.")
	} else {
		_, err = reply.Message(mc.Session, mc.Message.ChannelID, ":x: Transaction failed.")
	}
	return err
}
