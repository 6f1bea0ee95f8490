package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// baselinePermissions are required for every command on top of whatever the
// command itself declares.
const baselinePermissions = discordgo.PermissionSendMessages | discordgo.PermissionEmbedLinks

// permissionNames covers the permissions commands in this bot can require.
// Anything unnamed falls back to its hex value.
var permissionNames = map[int64]string{
	discordgo.PermissionSendMessages:       "Send Messages",
	discordgo.PermissionEmbedLinks:         "Embed Links",
	discordgo.PermissionManageMessages:     "Manage Messages",
	discordgo.PermissionReadMessageHistory: "Read Message History",
	discordgo.PermissionAddReactions:       "Add Reactions",
	discordgo.PermissionAttachFiles:        "Attach Files",
	discordgo.PermissionKickMembers:        "Kick Members",
	discordgo.PermissionAdministrator:      "Administrator",
}

func permissionName(p int64) string {
	if name := permissionNames[p]; name != "" {
		return name
	}
	return fmt.Sprintf("0x%x", p)
}

// missingBotPermissions returns the names of channel permissions the bot
// lacks, out of the baseline set unioned with the command's requirements.
func (b *Bot) missingBotPermissions(s *discordgo.Session, channelID string, required []int64) ([]string, error) {
	botUser := s.State.User
	if botUser == nil {
		u, err := s.User("@me")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve bot user: %w", err)
		}
		botUser = u
	}

	botPerms, err := s.UserChannelPermissions(botUser.ID, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bot permissions: %w", err)
	}

	var want int64 = baselinePermissions
	for _, p := range required {
		want |= p
	}

	var missing []string
	for _, p := range splitPermissions(want) {
		if botPerms&p == 0 {
			missing = append(missing, permissionName(p))
		}
	}
	return missing, nil
}

// splitPermissions breaks a permission bitmask into its individual bits.
func splitPermissions(mask int64) []int64 {
	var bits []int64
	for p := int64(1); p != 0 && p <= mask; p <<= 1 {
		if mask&p != 0 {
			bits = append(bits, p)
		}
	}
	return bits
}
