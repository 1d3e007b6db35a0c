package index

// Dependency is one resolved dependency token.
type Dependency struct {
	Name  string `json:"name" yaml:"name"`
	Found bool   `json:"found" yaml:"found"`
}

// Detail is the result of a package detail query.
type Detail struct {
	Summary     string       `json:"summary" yaml:"summary"`
	Description string       `json:"description" yaml:"description"`
	Depends     []Dependency `json:"depends" yaml:"depends"`
	Dependents  []string     `json:"dependents" yaml:"dependents"`
}

// Resolve deduplicates the lookup's dependency tokens, keeping the first
// occurrence, and marks each one Found when it names a package in the file.
// Dividers are treated like any other token.
func Resolve(l *Lookup) *Detail {
	tokens := NewOrderedSet(l.Depends...)

	depends := make([]Dependency, 0, tokens.Len())
	for _, tok := range tokens.Items() {
		depends = append(depends, Dependency{Name: tok, Found: l.Names.Contains(tok)})
	}

	dependents := l.Dependents
	if dependents == nil {
		dependents = []string{}
	}
	return &Detail{
		Summary:     l.Summary,
		Description: l.Description,
		Depends:     depends,
		Dependents:  dependents,
	}
}
