package index

import (
	"github.com/matzehuels/dpkgview/pkg/control"
)

// Lookup is the raw, unresolved result of scanning all records for one
// target package.
type Lookup struct {
	Target      string
	Summary     string
	Description string
	Depends     []string    // target's dependency tokens, unresolved, in source order
	Dependents  []string    // one entry per other stanza that depends on Target
	Names       *OrderedSet // every package name in the file
}

// Build scans records once for target.
//
// Every record's name goes into the name set. Records named target overwrite
// the captured fields, so the last such stanza wins. Every other named record
// whose dependency tokens contain target is appended to Dependents.
func Build(records []control.Record, target string) *Lookup {
	l := &Lookup{
		Target:     target,
		Depends:    []string{},
		Dependents: []string{},
		Names:      &OrderedSet{},
	}

	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		l.Names.Add(rec.Name)

		if rec.Name == target {
			l.Summary = rec.Summary
			l.Description = rec.Description
			l.Depends = rec.Depends
			continue
		}
		if rec.HasDependency(target) {
			l.Dependents = append(l.Dependents, rec.Name)
		}
	}
	return l
}

// Names returns each stanza's package name in file order. Duplicates are
// kept and nothing is sorted. Stanzas without a Package line are skipped.
func Names(records []control.Record) []string {
	names := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.Name != "" {
			names = append(names, rec.Name)
		}
	}
	return names
}

// Query builds and resolves the detail for target in one call.
func Query(records []control.Record, target string) *Detail {
	return Resolve(Build(records, target))
}
