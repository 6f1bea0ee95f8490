// Package command defines the command contract, the name/alias registry, and
// the prefix parser. How commands are dispatched (which gates run, in which
// order) lives in the discord adapter.
package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/go-redis/redis/v8"

	"hbot/internal/cooldown"
	"hbot/internal/db"
	"hbot/internal/economy"
	"hbot/internal/permission"
)

// Command is the contract every text command implements. Name and aliases
// share one namespace in the registry. Permission is the minimum level the
// invoker must satisfy; BotPermissions are channel permissions the bot itself
// needs on top of the global baseline.
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Permission() permission.Level
	BotPermissions() []int64
	Run(ctx context.Context, mc *MessageContext) error
}

// Deps bundles the collaborators handlers reach for. Built once in main and
// shared by every invocation.
type Deps struct {
	Registry *Registry
	Eco      *economy.Service
	DB       *db.Connector
	Redis    *redis.Client
	Cooldown *cooldown.Cooldown
	Perms    *permission.Evaluator
	Prefix   string
}

// MessageContext is what the runtime hands a command when executing it.
type MessageContext struct {
	Session *discordgo.Session
	Message *discordgo.MessageCreate
	Parsed  *Parsed
	Invoker permission.Invoker
	Deps    *Deps
}
