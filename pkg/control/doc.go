// Package control parses the dpkg status database stanza format.
//
// # Overview
//
// The dpkg status file (/var/lib/dpkg/status) is a sequence of stanzas
// separated by blank lines. Each stanza describes one package with
// "Field: value" lines. This package reads the subset of fields needed to
// build a dependency view:
//
//   - Package: the package name
//   - Description: its value is the summary, its whitespace-led
//     continuation lines form the long description
//   - Depends: a single line of comma-separated dependencies
//
// # Usage
//
//	text, err := control.Load("/var/lib/dpkg/status")
//	if err != nil {
//	    return err
//	}
//	for _, rec := range control.Parse(text) {
//	    fmt.Println(rec.Name, rec.Depends)
//	}
//
// # Limitations
//
// The parser is deliberately permissive. Lines that do not look like a known
// field are ignored, missing fields yield empty values, and Depends is read
// from a single line only: continuation lines of Depends are not supported.
// No other field folding, alternate encodings or full Debian Policy grammar
// checks are performed.
//
// # Dependency Tokens
//
// [Tokenize] turns a raw Depends value into an ordered token list. Version
// constraints and commas are removed; the alternation divider "|" survives
// as a token of its own because it is space-delimited in the source:
//
//	control.Tokenize("foo (>= 1.0), bar | baz") // [foo bar | baz]
package control
