package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/dpkgview/pkg/control"
	"github.com/matzehuels/dpkgview/pkg/index"
)

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}

// writeDetail renders a package detail as styled text.
func writeDetail(w io.Writer, name string, d *index.Detail) {
	fmt.Fprintln(w, StyleTitle.Render(name))
	if d.Summary != "" {
		fmt.Fprintln(w, StyleValue.Render(d.Summary))
	}
	if d.Description != "" {
		fmt.Fprintln(w, StyleDim.Render(d.Description))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeading.Render(fmt.Sprintf("Depends (%d)", countPackages(d.Depends))))
	if len(d.Depends) == 0 {
		fmt.Fprintln(w, "  "+StyleDim.Render("none"))
	} else {
		fmt.Fprintln(w, "  "+formatDepends(d.Depends))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeading.Render(fmt.Sprintf("Dependents (%d)", len(d.Dependents))))
	if len(d.Dependents) == 0 {
		fmt.Fprintln(w, "  "+StyleDim.Render("none"))
	}
	for _, dep := range d.Dependents {
		fmt.Fprintln(w, "  "+StyleHighlight.Render(dep))
	}
}

// formatDepends joins resolved dependencies on one line. Packages present in
// the file are highlighted, missing ones dimmed, and dividers stay as "|".
func formatDepends(deps []index.Dependency) string {
	parts := make([]string, len(deps))
	for i, dep := range deps {
		switch {
		case control.IsDivider(dep.Name):
			parts[i] = StyleDim.Render(dep.Name)
		case dep.Found:
			parts[i] = StyleHighlight.Render(dep.Name)
		default:
			parts[i] = styleMissing.Render(dep.Name)
		}
	}
	return strings.Join(parts, " ")
}

func countPackages(deps []index.Dependency) int {
	n := 0
	for _, dep := range deps {
		if !control.IsDivider(dep.Name) {
			n++
		}
	}
	return n
}
