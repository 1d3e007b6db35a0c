package control

import (
	"regexp"
	"strings"
)

// Divider is the token marking an alternation boundary ("a | b").
const Divider = "|"

// versionRE matches a version constraint such as " (>= 1.0)".
var versionRE = regexp.MustCompile(` \([^)]*\)`)

// Tokenize normalizes a raw Depends value into dependency tokens.
//
// Version constraints are removed, then commas, then the rest is split on
// spaces with empty tokens dropped. Token order is preserved and tokens are
// not deduplicated.
func Tokenize(raw string) []string {
	s := versionRE.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, ",", "")

	tokens := []string{}
	for _, tok := range strings.Split(s, " ") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// IsDivider reports whether tok is the alternation divider.
func IsDivider(tok string) bool { return tok == Divider }
