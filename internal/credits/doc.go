// Package credits parses the free-text "role name role name…" string from
// notes exports into ordered role/name records.
//
// The grammar has no delimiter beyond adjacency, so parsing leans on a
// fixed vocabulary of known role phrases. Phrase order matters: a phrase
// must come before any phrase it is a prefix of, and NewParser refuses a
// vocabulary that breaks that precedence. Parsing the same input always
// yields the same sequence.
package credits
