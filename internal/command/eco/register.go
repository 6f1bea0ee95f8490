package eco

import (
	"context"

	"hbot/internal/command"
	"hbot/internal/permission"
	"hbot/internal/reply"
)

// RegisterCommand creates the invoker's economy row explicitly.
type RegisterCommand struct{}

func (c *RegisterCommand) Name() string { return "register" }
func (c *RegisterCommand) Aliases() []string { return []string{"reg"} }
func (c *RegisterCommand) Description() string { return "Register yourself in the economy system." }
func (c *RegisterCommand) Permission() permission.Level { return permission.Everyone }
func (c *RegisterCommand) BotPermissions() []int64 { return nil }

func (c *RegisterCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	ok, err := mc.Deps.Eco.Register(ctx, mc.Message.Author.ID)
	if err != nil {
		return err
	}
	if ok {
		_, err = reply.Message(mc.Session, mc.Message.ChannelID,
			":white_check_mark: You have been registered with the economy system, you may now use economy commands.")
	} else {
		_, err = reply.Message(mc.Session, mc.Message.ChannelID,
			":x: You have already registered, and therefore cannot register again. Idiot.")
	}
	return err
}
