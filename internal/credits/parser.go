package credits

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Credit is one parsed role/name pair. SortOrder is the dense emission
// index within the owning credits string.
type Credit struct {
	Role      string `json:"role"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// castRole is the one role whose name span holds multiple people.
const castRole = "cast"

// Parser tokenizes credits strings against a validated role vocabulary.
type Parser struct {
	roles []string
}

// NewParser builds a Parser over the built-in vocabulary. It fails when
// the vocabulary orders a phrase after one it is a prefix of, since that
// earlier phrase would always match first.
func NewParser() (*Parser, error) {
	return newParser(roleVocabulary)
}

func newParser(roles []string) (*Parser, error) {
	for i, role := range roles {
		for _, earlier := range roles[:i] {
			if strings.HasPrefix(role, earlier) {
				return nil, fmt.Errorf("role vocabulary: %q is ordered after its prefix %q", role, earlier)
			}
		}
	}
	return &Parser{roles: roles}, nil
}

// Parse tokenizes raw into ordered credits. Unparseable leading tokens are
// skipped a word at a time; Parse never fails and is idempotent over its
// input.
func (p *Parser) Parse(raw string) []Credit {
	remaining := strings.TrimSpace(raw)
	var credits []Credit

	for remaining != "" {
		role, ok := p.matchRole(remaining)
		if !ok {
			remaining = skipWord(remaining)
			continue
		}

		afterRole := strings.TrimSpace(remaining[len(role):])
		nameEnd := p.nameBoundary(afterRole)
		name := strings.TrimSpace(afterRole[:nameEnd])

		if name != "" {
			if role == castRole {
				for _, member := range splitCast(name) {
					credits = append(credits, Credit{Role: "Cast", Name: member, SortOrder: len(credits)})
				}
			} else {
				credits = append(credits, Credit{Role: displayRole(role), Name: name, SortOrder: len(credits)})
			}
		}
		remaining = strings.TrimSpace(afterRole[nameEnd:])
	}
	return credits
}

func (p *Parser) matchRole(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, role := range p.roles {
		if strings.HasPrefix(lower, role) {
			return role, true
		}
	}
	return "", false
}

// nameBoundary finds the earliest position in the candidate name span where
// another role phrase begins. The phrase must be bounded by spaces so a
// role embedded in a person's name is not mistaken for a delimiter.
func (p *Parser) nameBoundary(span string) int {
	lower := strings.ToLower(span)
	end := len(span)
	for _, role := range p.roles {
		if idx := strings.Index(lower, " "+role+" "); idx != -1 && idx < end {
			end = idx
		}
	}
	return end
}

// splitCast divides a cast name span on bullet glyphs or newlines into
// independent names.
func splitCast(span string) []string {
	parts := strings.FieldsFunc(span, func(r rune) bool {
		return r == '•' || r == '\n'
	})
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// displayRole title-cases each word of a vocabulary role, keeping the
// hard-coded abbreviation spellings.
func displayRole(role string) string {
	words := strings.Split(role, " ")
	for i, word := range words {
		if display, ok := displayExceptions[word]; ok {
			words[i] = display
			continue
		}
		words[i] = upperFirst(word)
	}
	return strings.Join(words, " ")
}

func upperFirst(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}

// skipWord drops the leading whitespace-delimited token for lossy
// recovery when no role phrase matches.
func skipWord(s string) string {
	idx := strings.IndexByte(s, ' ')
	if idx == -1 {
		return ""
	}
	return strings.TrimSpace(s[idx+1:])
}
