package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize converts a string to a canonical comparison key: lowercase,
// curly and straight quote variants unified to an apostrophe, everything
// outside [a-z0-9 ] stripped, whitespace runs collapsed, trimmed. Input
// is NFKD-decomposed first so accented letters reduce to their base
// letter instead of vanishing. Total over all inputs and idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range strings.ToLower(norm.NFKD.String(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevSpace = false
		case r == '‘' || r == '’' || r == '“' || r == '”' || r == '\'':
			// Quote variants unify to an apostrophe, which is then outside
			// the kept alphabet; they vanish from the key either way.
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !prevSpace && b.Len() > 0 {
				b.WriteByte(' ')
				prevSpace = true
			}
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Tokens splits the normalized form of s into its whitespace-delimited
// words. An input that normalizes to the empty string yields no tokens.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}
