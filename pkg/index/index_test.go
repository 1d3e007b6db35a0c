package index

import (
	"encoding/json"
	"reflect"
	"slices"
	"testing"

	"github.com/matzehuels/dpkgview/pkg/control"
)

const scenario = `Package: alpha
Description: short alpha
 long alpha text
Depends: beta (>= 1.0), gamma

Package: beta
Description: short beta
`

func TestQueryScenario(t *testing.T) {
	records := control.Parse(scenario)

	alpha := Query(records, "alpha")
	wantDeps := []Dependency{{Name: "beta", Found: true}, {Name: "gamma", Found: false}}
	if !reflect.DeepEqual(alpha.Depends, wantDeps) {
		t.Errorf("alpha.Depends = %+v, want %+v", alpha.Depends, wantDeps)
	}
	if len(alpha.Dependents) != 0 {
		t.Errorf("alpha.Dependents = %q, want empty", alpha.Dependents)
	}
	if alpha.Summary != "short alpha" || alpha.Description != "long alpha text" {
		t.Errorf("alpha summary/description = %q/%q", alpha.Summary, alpha.Description)
	}

	beta := Query(records, "beta")
	if !slices.Equal(beta.Dependents, []string{"alpha"}) {
		t.Errorf("beta.Dependents = %q, want [alpha]", beta.Dependents)
	}
	if len(beta.Depends) != 0 {
		t.Errorf("beta.Depends = %+v, want empty", beta.Depends)
	}
	if beta.Summary != "short beta" {
		t.Errorf("beta.Summary = %q, want %q", beta.Summary, "short beta")
	}
}

func TestQueryReverseDependency(t *testing.T) {
	records := control.Parse("Package: A\nDepends: B\n\nPackage: B")

	if b := Query(records, "B"); !slices.Contains(b.Dependents, "A") {
		t.Errorf("B.Dependents = %q, want to contain A", b.Dependents)
	}
	a := Query(records, "A")
	if len(a.Depends) != 1 || a.Depends[0] != (Dependency{Name: "B", Found: true}) {
		t.Errorf("A.Depends = %+v, want [{B true}]", a.Depends)
	}
}

func TestQueryResolutionProperty(t *testing.T) {
	text := `Package: app
Depends: libc6 (>= 2.34), libfoo | libbar, missing-one, libc6

Package: libc6

Package: libbar
Depends: libc6

Package: tool
Depends: app, libc6`
	records := control.Parse(text)
	names := NewOrderedSet(Names(records)...)

	for _, target := range []string{"app", "libc6", "libbar", "tool", "nope"} {
		d := Query(records, target)
		for _, dep := range d.Depends {
			if dep.Found != names.Contains(dep.Name) {
				t.Errorf("%s: dependency %q Found = %v, want %v", target, dep.Name, dep.Found, !dep.Found)
			}
		}
	}
}

func TestQueryDedupPreservesOrder(t *testing.T) {
	records := control.Parse("Package: p\nDepends: c, a | b, a, c | b\n\nPackage: a")

	d := Query(records, "p")
	var got []string
	for _, dep := range d.Depends {
		got = append(got, dep.Name)
	}
	if want := []string{"c", "a", "|", "b"}; !slices.Equal(got, want) {
		t.Errorf("Depends order = %q, want %q", got, want)
	}
}

func TestQueryDividerResolvesNotFound(t *testing.T) {
	records := control.Parse("Package: p\nDepends: a | b\n\nPackage: a\n\nPackage: b")

	d := Query(records, "p")
	want := []Dependency{{"a", true}, {"|", false}, {"b", true}}
	if !reflect.DeepEqual(d.Depends, want) {
		t.Errorf("Depends = %+v, want %+v", d.Depends, want)
	}
}

func TestQueryUnknownName(t *testing.T) {
	records := control.Parse("Package: a\nDepends: ghost\n\nPackage: b\nDepends: ghost, a")

	d := Query(records, "ghost")
	if d.Summary != "" || d.Description != "" {
		t.Errorf("summary/description = %q/%q, want empty", d.Summary, d.Description)
	}
	if d.Depends == nil || len(d.Depends) != 0 {
		t.Errorf("Depends = %#v, want empty non-nil", d.Depends)
	}
	if !slices.Equal(d.Dependents, []string{"a", "b"}) {
		t.Errorf("Dependents = %q, want [a b]", d.Dependents)
	}

	empty := Query(records, "nobody")
	if empty.Dependents == nil || len(empty.Dependents) != 0 {
		t.Errorf("Dependents = %#v, want empty non-nil", empty.Dependents)
	}
}

// Duplicate stanzas are a known ambiguity of the format: the last stanza
// with the queried name determines the captured fields.
func TestQueryDuplicateStanzasLastMatchWins(t *testing.T) {
	text := `Package: dup
Description: first
Depends: a

Package: other
Depends: dup

Package: dup
Description: second
Depends: b`
	records := control.Parse(text)

	d := Query(records, "dup")
	if d.Summary != "second" {
		t.Errorf("Summary = %q, want %q", d.Summary, "second")
	}
	if len(d.Depends) != 1 || d.Depends[0].Name != "b" {
		t.Errorf("Depends = %+v, want [b]", d.Depends)
	}
	if !slices.Equal(d.Dependents, []string{"other"}) {
		t.Errorf("Dependents = %q, want [other]", d.Dependents)
	}
}

func TestQueryDependentsPerStanza(t *testing.T) {
	text := "Package: x\nDepends: t, t\n\nPackage: x\nDepends: t\n\nPackage: y\nDepends: a | t"
	d := Query(control.Parse(text), "t")

	if want := []string{"x", "x", "y"}; !slices.Equal(d.Dependents, want) {
		t.Errorf("Dependents = %q, want %q", d.Dependents, want)
	}
}

func TestQuerySelfDependency(t *testing.T) {
	d := Query(control.Parse("Package: self\nDepends: self"), "self")

	if len(d.Dependents) != 0 {
		t.Errorf("Dependents = %q, the target never lists itself", d.Dependents)
	}
	if len(d.Depends) != 1 || !d.Depends[0].Found {
		t.Errorf("Depends = %+v, want [{self true}]", d.Depends)
	}
}

func TestNames(t *testing.T) {
	text := "Package: b\n\nPackage: a\n\nStatus: orphan\n\nPackage: b\n\n"
	got := Names(control.Parse(text))

	if want := []string{"b", "a", "b"}; !slices.Equal(got, want) {
		t.Errorf("Names = %q, want %q", got, want)
	}
}

func TestNamesCountMatchesPackageLines(t *testing.T) {
	text := "Package: p1\nDescription: d\n x\n\nPackage: p2\n\nPackage: p3\nDepends: p1"
	if got := len(Names(control.Parse(text))); got != 3 {
		t.Errorf("len(Names) = %d, want 3", got)
	}
}

func TestQueryIdempotent(t *testing.T) {
	first, err := json.Marshal(Query(control.Parse(scenario), "beta"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(Query(control.Parse(scenario), "beta"))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("results differ:\n%s\n%s", first, second)
	}
}

func TestDetailJSON(t *testing.T) {
	data, err := json.Marshal(Query(control.Parse(scenario), "beta"))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"summary":"short beta","description":"","depends":[],"dependents":["alpha"]}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestBuild(t *testing.T) {
	l := Build(control.Parse(scenario), "alpha")

	if !slices.Equal(l.Depends, []string{"beta", "gamma"}) {
		t.Errorf("Depends = %q", l.Depends)
	}
	if !slices.Equal(l.Names.Items(), []string{"alpha", "beta"}) {
		t.Errorf("Names = %q", l.Names.Items())
	}
	if l.Target != "alpha" {
		t.Errorf("Target = %q", l.Target)
	}
}
