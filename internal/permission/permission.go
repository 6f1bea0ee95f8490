// Package permission implements the bot's permission ladder. A command declares
// the minimum level it requires; an invoker satisfying a senior level passes
// every junior check automatically.
package permission

import (
	"github.com/bwmarrin/discordgo"
)

// Level is an ordered permission threshold.
type Level int

const (
	Everyone Level = iota
	ServerMod
	ServerAdmin
	ServerOwner
	BotOwner
	Nobody
)

func (l Level) String() string {
	switch l {
	case Everyone:
		return "EVERYONE"
	case ServerMod:
		return "SERVER_MOD"
	case ServerAdmin:
		return "SERVER_ADMIN"
	case ServerOwner:
		return "SERVER_OWNER"
	case BotOwner:
		return "BOT_OWNER"
	case Nobody:
		return "NOBODY"
	}
	return "UNKNOWN"
}

// Invoker is the resolved context of the user a check runs against. InGuild
// must be true for any level to pass; commands are guild-only.
type Invoker struct {
	UserID       string
	Permissions  int64
	GuildOwnerID string
	InGuild      bool
}

// Evaluator checks invokers against required levels. The application owner
// identity is fetched once at startup and held here; a team-owned application
// counts every team member as a bot owner.
type Evaluator struct {
	owners map[string]bool
}

// NewEvaluator builds an evaluator from the application record.
func NewEvaluator(app *discordgo.Application) *Evaluator {
	owners := make(map[string]bool)
	if app != nil {
		if app.Team != nil {
			for _, m := range app.Team.Members {
				if m.User != nil {
					owners[m.User.ID] = true
				}
			}
		} else if app.Owner != nil {
			owners[app.Owner.ID] = true
		}
	}
	return &Evaluator{owners: owners}
}

// Check reports whether the invoker satisfies the required level. Evaluation
// walks upward from the required level: failing the concrete test for a level
// falls through to the next more senior one, so seniors always pass junior
// checks. Nobody never passes, and a missing guild context denies everything.
func (e *Evaluator) Check(inv Invoker, required Level) bool {
	if !inv.InGuild {
		return false
	}
	if required == Everyone {
		return true
	}
	for l := required; l <= BotOwner; l++ {
		if e.satisfies(inv, l) {
			return true
		}
	}
	return false
}

func (e *Evaluator) satisfies(inv Invoker, l Level) bool {
	switch l {
	case ServerMod:
		return inv.Permissions&discordgo.PermissionKickMembers != 0
	case ServerAdmin:
		return inv.Permissions&discordgo.PermissionAdministrator != 0
	case ServerOwner:
		return inv.UserID == inv.GuildOwnerID
	case BotOwner:
		return e.owners[inv.UserID]
	}
	return false
}
