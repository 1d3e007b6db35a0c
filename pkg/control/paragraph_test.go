package control

import (
	"slices"
	"testing"
)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"single", "Package: a\n", 1},
		{"two", "Package: a\n\nPackage: b\n", 2},
		{"trailing blank line", "Package: a\n\nPackage: b\n\n", 3},
		{"empty", "", 1},
		{"double blank", "Package: a\n\n\n\nPackage: b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(SplitParagraphs(tt.text)); got != tt.want {
				t.Errorf("len(SplitParagraphs(%q)) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseParagraph(t *testing.T) {
	stanza := `Package: alpha
Status: install ok installed
Priority: optional
Depends: beta (>= 1.0), gamma | delta
Description: short alpha
 long alpha text
 .
 more text
Homepage: https://example.org`

	rec := ParseParagraph(stanza)

	if rec.Name != "alpha" {
		t.Errorf("Name = %q, want %q", rec.Name, "alpha")
	}
	if rec.Summary != "short alpha" {
		t.Errorf("Summary = %q, want %q", rec.Summary, "short alpha")
	}
	if want := "long alpha text.more text"; rec.Description != want {
		t.Errorf("Description = %q, want %q", rec.Description, want)
	}
	if want := []string{"beta", "gamma", "|", "delta"}; !slices.Equal(rec.Depends, want) {
		t.Errorf("Depends = %q, want %q", rec.Depends, want)
	}
}

func TestParseParagraphDescriptionConcatenation(t *testing.T) {
	rec := ParseParagraph("Description: short\n more text\n continued")

	if rec.Summary != "short" {
		t.Errorf("Summary = %q, want %q", rec.Summary, "short")
	}
	if rec.Description != "more textcontinued" {
		t.Errorf("Description = %q, want %q", rec.Description, "more textcontinued")
	}
}

func TestParseParagraphDescriptionCapture(t *testing.T) {
	tests := []struct {
		name        string
		stanza      string
		summary     string
		description string
	}{
		{
			name:        "capture ends at next field",
			stanza:      "Description: s\n one\nVersion: 1\n two",
			summary:     "s",
			description: "one",
		},
		{
			name:        "continuation before description ignored",
			stanza:      "Conffiles:\n /etc/a 123\nDescription: s\n body",
			summary:     "s",
			description: "body",
		},
		{
			name:        "tab continuation",
			stanza:      "Description: s\n\tone\n\ttwo",
			summary:     "s",
			description: "onetwo",
		},
		{
			name:        "second description restarts capture",
			stanza:      "Description: first\n a\nX-Field: y\nDescription: second\n b",
			summary:     "first",
			description: "ab",
		},
		{
			name:        "summary only",
			stanza:      "Package: p\nDescription:   padded\t",
			summary:     "padded",
			description: "",
		},
		{
			name:        "trailing spaces trimmed",
			stanza:      "Description: s\n   body   ",
			summary:     "s",
			description: "body",
		},
		{
			name:        "no description",
			stanza:      "Package: p",
			summary:     "",
			description: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseParagraph(tt.stanza)
			if rec.Summary != tt.summary {
				t.Errorf("Summary = %q, want %q", rec.Summary, tt.summary)
			}
			if rec.Description != tt.description {
				t.Errorf("Description = %q, want %q", rec.Description, tt.description)
			}
		})
	}
}

func TestParseParagraphFirstMatchWins(t *testing.T) {
	rec := ParseParagraph("Package: one\nPackage: two\nDepends: a\nDepends: b")

	if rec.Name != "one" {
		t.Errorf("Name = %q, want %q", rec.Name, "one")
	}
	if !slices.Equal(rec.Depends, []string{"a"}) {
		t.Errorf("Depends = %q, want [a]", rec.Depends)
	}
}

func TestParseParagraphDependsSingleLine(t *testing.T) {
	rec := ParseParagraph("Package: p\nDepends: a,\n b, c")

	if !slices.Equal(rec.Depends, []string{"a"}) {
		t.Errorf("Depends = %q, want [a] (continuation lines are not read)", rec.Depends)
	}
}

func TestParseParagraphFieldNameCase(t *testing.T) {
	tests := []struct {
		name   string
		stanza string
	}{
		{"lowercase field", "package: p"},
		{"indented field", " Package: p"},
		{"pre-depends is not depends", "Pre-Depends: p"},
		{"missing colon", "Package p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseParagraph(tt.stanza)
			if rec.Name != "" || len(rec.Depends) != 0 {
				t.Errorf("ParseParagraph(%q) = %+v, want empty record", tt.stanza, rec)
			}
		})
	}
}

func TestParseParagraphEmpty(t *testing.T) {
	rec := ParseParagraph("")

	if rec.Name != "" || rec.Summary != "" || rec.Description != "" {
		t.Errorf("ParseParagraph(\"\") = %+v, want zero fields", rec)
	}
	if rec.Depends == nil || len(rec.Depends) != 0 {
		t.Errorf("Depends = %#v, want empty non-nil slice", rec.Depends)
	}
}

func TestParseParagraphWhitespaceAroundValues(t *testing.T) {
	rec := ParseParagraph("Package:\t libfoo \t\nDepends:   bar , baz  ")

	if rec.Name != "libfoo" {
		t.Errorf("Name = %q, want %q", rec.Name, "libfoo")
	}
	if !slices.Equal(rec.Depends, []string{"bar", "baz"}) {
		t.Errorf("Depends = %q, want [bar baz]", rec.Depends)
	}
}

func TestExtractName(t *testing.T) {
	if got := ExtractName("Status: x\nPackage:  curl \nPackage: other"); got != "curl" {
		t.Errorf("ExtractName = %q, want %q", got, "curl")
	}
	if got := ExtractName("Status: x"); got != "" {
		t.Errorf("ExtractName = %q, want empty", got)
	}
}

func TestParse(t *testing.T) {
	text := "Package: a\nDepends: b\n\nPackage: b\n\nPackage: c\nDepends: a | b"
	records := Parse(text)

	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	names := []string{records[0].Name, records[1].Name, records[2].Name}
	if !slices.Equal(names, []string{"a", "b", "c"}) {
		t.Errorf("names = %q, want [a b c]", names)
	}
	if !records[2].HasDependency("|") || !records[2].HasDependency("b") {
		t.Errorf("records[2].Depends = %q, want divider and b", records[2].Depends)
	}
	if records[1].HasDependency("a") {
		t.Error("records[1] should have no dependencies")
	}
}
