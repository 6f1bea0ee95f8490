package command

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	mentionRegex   = regexp.MustCompile(`^<@!?(\d+)>$`)
	snowflakeRegex = regexp.MustCompile(`^\d{15,21}$`)
)

// Parsed is the result of prefix-parsing a message: the command token, its
// arguments, and the raw text after the token.
type Parsed struct {
	Command string
	Args    []string
	Body    string
}

// Parse matches content against the configured single-character prefix.
// Returns false for anything that is not a command invocation; such messages
// are ignored upstream, never treated as errors.
func Parse(prefix, content string) (*Parsed, bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(content[len(prefix):])
	if rest == "" {
		return nil, false
	}
	fields := strings.Fields(rest)
	return &Parsed{
		Command: fields[0],
		Args:    fields[1:],
		Body:    strings.TrimSpace(strings.TrimPrefix(rest, fields[0])),
	}, true
}

// Reader returns an ArgReader over the parsed arguments.
func (p *Parsed) Reader() *ArgReader {
	return &ArgReader{args: p.Args}
}

// ArgReader consumes arguments left to right. A failed read leaves the
// position untouched so the caller can retry the same argument as another
// type.
type ArgReader struct {
	args []string
	pos  int
}

// UserID reads a user mention (`<@id>` or `<@!id>`) or a bare snowflake.
func (r *ArgReader) UserID() (string, bool) {
	if r.pos >= len(r.args) {
		return "", false
	}
	arg := r.args[r.pos]
	if m := mentionRegex.FindStringSubmatch(arg); m != nil {
		r.pos++
		return m[1], true
	}
	if snowflakeRegex.MatchString(arg) {
		r.pos++
		return arg, true
	}
	return "", false
}

// Int reads a base-10 integer.
func (r *ArgReader) Int() (int64, bool) {
	if r.pos >= len(r.args) {
		return 0, false
	}
	n, err := strconv.ParseInt(r.args[r.pos], 10, 64)
	if err != nil {
		return 0, false
	}
	r.pos++
	return n, true
}

// String reads the next argument verbatim.
func (r *ArgReader) String() (string, bool) {
	if r.pos >= len(r.args) {
		return "", false
	}
	arg := r.args[r.pos]
	r.pos++
	return arg, true
}
