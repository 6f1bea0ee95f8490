// Package dev holds owner-only maintenance commands.
package dev

import (
	"context"
	"fmt"
	"strings"

	"hbot/internal/command"
	"hbot/internal/db"
	"hbot/internal/permission"
	"hbot/internal/reply"
)

// Discord caps messages at 2000 chars; leave room for the code fence.
const maxDumpLen = 1900

// DBCommand runs the raw message body against the store and dumps the rows
// back. Restricted to the bot owner; this is a live console, not a feature.
type DBCommand struct{}

func (c *DBCommand) Name() string { return "db" }
func (c *DBCommand) Aliases() []string { return []string{"sql"} }
func (c *DBCommand) Description() string { return "Interface with the database" }
func (c *DBCommand) Permission() permission.Level { return permission.BotOwner }
func (c *DBCommand) BotPermissions() []int64 { return nil }

func (c *DBCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	query := strings.TrimSpace(mc.Parsed.Body)
	if query == "" {
		_, err := reply.Message(mc.Session, mc.Message.ChannelID, ":x: Give me a query to run.")
		return err
	}

	var dump string
	err := mc.Deps.DB.Serialize(ctx, func(q db.Querier) error {
		rows, err := q.QueryxContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		var sb strings.Builder
		for rows.Next() {
			row, err := rows.SliceScan()
			if err != nil {
				return err
			}
			fmt.Fprintf(&sb, "%v\n", row)
			if sb.Len() > maxDumpLen {
				sb.WriteString("…\n")
				break
			}
		}
		if err := rows.Err(); err != nil {
			return err
		}
		dump = sb.String()
		return nil
	})
	if err != nil {
		_, sendErr := reply.Message(mc.Session, mc.Message.ChannelID,
			fmt.Sprintf(":x: Query failed: `%v`", err))
		return sendErr
	}

	if dump == "" {
		dump = "<no rows>"
	}
	if len(dump) > maxDumpLen {
		dump = dump[:maxDumpLen] + "…"
	}
	_, err = reply.Message(mc.Session, mc.Message.ChannelID, "```\n"+dump+"\n```")
	return err
}
