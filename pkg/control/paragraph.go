package control

import (
	"regexp"
	"slices"
	"strings"
)

// paragraphSep separates stanzas: one fully blank line.
const paragraphSep = "\n\n"

var (
	packageRE     = regexp.MustCompile(`^Package:[ \t]*(.*)$`)
	descriptionRE = regexp.MustCompile(`^Description:[ \t]*(.*)$`)
	dependsRE     = regexp.MustCompile(`^Depends:[ \t]*(.*)$`)
)

// Record is the view of one stanza used by the dependency index.
type Record struct {
	Name        string   `json:"name"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Depends     []string `json:"depends"`
}

// HasDependency reports whether name is one of the record's dependency tokens.
// Alternation groups are not interpreted: the tokens are a flat list.
func (r Record) HasDependency(name string) bool {
	return slices.Contains(r.Depends, name)
}

// SplitParagraphs splits control file text into stanzas on blank lines.
// Empty stanzas are kept; parsing them yields an empty [Record].
func SplitParagraphs(text string) []string {
	return strings.Split(text, paragraphSep)
}

// Parse splits text into stanzas and parses each one, in file order.
func Parse(text string) []Record {
	paras := SplitParagraphs(text)
	records := make([]Record, len(paras))
	for i, p := range paras {
		records[i] = ParseParagraph(p)
	}
	return records
}

// ParseParagraph extracts Package, Description and Depends from one stanza
// in a single pass over its lines.
//
// For Package, Description (summary) and Depends only the first matching line
// counts. The long description is every whitespace-led line following a
// Description line, with the leading whitespace removed and the pieces joined
// without a separator, then trimmed.
func ParseParagraph(stanza string) Record {
	var rec Record
	var body strings.Builder
	var haveName, haveSummary, haveDepends, capturing bool

	for _, line := range strings.Split(stanza, "\n") {
		if capturing {
			if isContinuation(line) {
				body.WriteString(strings.TrimLeft(line, " \t"))
				continue
			}
			capturing = false
		}

		if m := descriptionRE.FindStringSubmatch(line); m != nil {
			if !haveSummary {
				rec.Summary = trimHorizontal(m[1])
				haveSummary = true
			}
			capturing = true
			continue
		}
		if m := packageRE.FindStringSubmatch(line); m != nil && !haveName {
			rec.Name = trimHorizontal(m[1])
			haveName = true
			continue
		}
		if m := dependsRE.FindStringSubmatch(line); m != nil && !haveDepends {
			rec.Depends = Tokenize(m[1])
			haveDepends = true
		}
	}

	rec.Description = strings.TrimSpace(body.String())
	if rec.Depends == nil {
		rec.Depends = []string{}
	}
	return rec
}

// ExtractName returns the first Package value in stanza, or "".
func ExtractName(stanza string) string {
	for _, line := range strings.Split(stanza, "\n") {
		if m := packageRE.FindStringSubmatch(line); m != nil {
			return trimHorizontal(m[1])
		}
	}
	return ""
}

func isContinuation(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

func trimHorizontal(s string) string {
	return strings.Trim(s, " \t")
}
