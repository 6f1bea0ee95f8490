// Package reply holds the outbound send helpers commands use, so command
// packages never import the discord adapter (avoids import cycles). All sends
// go through one process-wide limiter to keep burst replies inside a sane
// outbound budget.
package reply

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// One message per 250ms sustained, short bursts allowed.
var limiter = rate.NewLimiter(rate.Every(250*time.Millisecond), 5)

func wait() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = limiter.Wait(ctx)
}

// Message sends plain text to a channel.
func Message(s *discordgo.Session, channelID, content string) (*discordgo.Message, error) {
	wait()
	return s.ChannelMessageSend(channelID, content)
}

// Embed sends an embed to a channel.
func Embed(s *discordgo.Session, channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	wait()
	return s.ChannelMessageSendEmbed(channelID, embed)
}

// Edit replaces the content of an already sent message.
func Edit(s *discordgo.Session, channelID, messageID, content string) (*discordgo.Message, error) {
	wait()
	return s.ChannelMessageEdit(channelID, messageID, content)
}

// EditEmbed attaches an embed to an already sent message.
func EditEmbed(s *discordgo.Session, channelID, messageID, content string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	wait()
	return s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel: channelID,
		ID:      messageID,
		Content: &content,
		Embeds:  &[]*discordgo.MessageEmbed{embed},
	})
}
