// Package eco holds the economy commands: balances, transfers, bank moves,
// registration, and the owner-only balance editors.
package eco

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const balanceColor = 0x60ff60

// fetchUser resolves a user by ID, returning def when the ID is empty or the
// lookup fails.
func fetchUser(s *discordgo.Session, userID string, def *discordgo.User) *discordgo.User {
	if userID == "" {
		return def
	}
	u, err := s.User(userID)
	if err != nil {
		return def
	}
	return u
}

// formatInt renders n with thousands separators.
func formatInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
