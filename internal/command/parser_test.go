package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, ok := Parse("$", "$pay <@123456789012345678> 50")
	require.True(t, ok)
	assert.Equal(t, "pay", p.Command)
	assert.Equal(t, []string{"<@123456789012345678>", "50"}, p.Args)
	assert.Equal(t, "<@123456789012345678> 50", p.Body)
}

func TestParseNoArgs(t *testing.T) {
	p, ok := Parse("$", "$ping")
	require.True(t, ok)
	assert.Equal(t, "ping", p.Command)
	assert.Empty(t, p.Args)
	assert.Equal(t, "", p.Body)
}

func TestParseIgnoresNonCommands(t *testing.T) {
	for _, content := range []string{"hello", "pay 50", "$", "$   ", ""} {
		_, ok := Parse("$", content)
		assert.False(t, ok, "content %q", content)
	}
}

func TestArgReaderUserID(t *testing.T) {
	p, _ := Parse("$", "$pay <@!123456789012345678> 50")
	r := p.Reader()

	id, ok := r.UserID()
	require.True(t, ok)
	assert.Equal(t, "123456789012345678", id)

	n, ok := r.Int()
	require.True(t, ok)
	assert.Equal(t, int64(50), n)
}

func TestArgReaderBareSnowflake(t *testing.T) {
	p, _ := Parse("$", "$bal 123456789012345678")
	id, ok := p.Reader().UserID()
	require.True(t, ok)
	assert.Equal(t, "123456789012345678", id)
}

func TestArgReaderFailedReadDoesNotConsume(t *testing.T) {
	p, _ := Parse("$", "$deposit all")
	r := p.Reader()

	_, ok := r.Int()
	assert.False(t, ok)

	// The same argument is still available as a string.
	s, ok := r.String()
	require.True(t, ok)
	assert.Equal(t, "all", s)
}

func TestArgReaderExhausted(t *testing.T) {
	p, _ := Parse("$", "$ping")
	r := p.Reader()

	_, ok := r.UserID()
	assert.False(t, ok)
	_, ok = r.Int()
	assert.False(t, ok)
	_, ok = r.String()
	assert.False(t, ok)
}
