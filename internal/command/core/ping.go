package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"hbot/internal/command"
	"hbot/internal/db"
	"hbot/internal/permission"
	"hbot/internal/reply"
)

// PingCommand reports round-trip latencies: gateway, message send, store
// read, Redis.
type PingCommand struct{}

func (c *PingCommand) Name() string { return "ping" }
func (c *PingCommand) Aliases() []string { return nil }
func (c *PingCommand) Description() string { return "Pong!" }
func (c *PingCommand) Permission() permission.Level { return permission.Everyone }
func (c *PingCommand) BotPermissions() []int64 { return nil }

func (c *PingCommand) Run(ctx context.Context, mc *command.MessageContext) error {
	sendStart := time.Now()
	msg, err := reply.Message(mc.Session, mc.Message.ChannelID, "h!")
	if err != nil {
		return fmt.Errorf("failed to send ping message: %w", err)
	}
	sendLatency := time.Since(sendStart)

	dbStart := time.Now()
	err = mc.Deps.DB.Serialize(ctx, func(q db.Querier) error {
		var now time.Time
		return q.GetContext(ctx, &now, `SELECT NOW()`)
	})
	if err != nil {
		return fmt.Errorf("failed to probe database: %w", err)
	}
	dbLatency := time.Since(dbStart)

	redisStart := time.Now()
	if err := mc.Deps.Redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to probe redis: %w", err)
	}
	redisLatency := time.Since(redisStart)

	wsLatency := mc.Session.HeartbeatLatency()

	stats, err := json.MarshalIndent(map[string]int64{
		"API":       (sendLatency - wsLatency).Milliseconds(),
		"Websocket": wsLatency.Milliseconds(),
		"Database":  dbLatency.Milliseconds(),
		"Redis":     redisLatency.Milliseconds(),
	}, "", "  ")
	if err != nil {
		return err
	}

	_, err = reply.EditEmbed(mc.Session, mc.Message.ChannelID, msg.ID, "h!", &discordgo.MessageEmbed{
		Description: "```json\n" + string(stats) + "\n```",
		Color:       helpColor,
	})
	return err
}
