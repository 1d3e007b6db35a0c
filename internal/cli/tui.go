package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dpkgview/pkg/control"
	"github.com/matzehuels/dpkgview/pkg/index"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// detailFunc fetches one package's detail.
type detailFunc func(ctx context.Context, name string) (*index.Detail, error)

// detailMsg delivers a loaded detail to the model.
type detailMsg struct {
	name   string
	detail *index.Detail
	err    error
}

// =============================================================================
// BrowseModel - Interactive package browser
// =============================================================================

// BrowseModel is the bubbletea model behind "dpkgview browse". It shows the
// package list and, after enter, one package's detail whose dependencies
// and dependents can be followed.
type BrowseModel struct {
	Names  []string
	Cursor int
	Offset int
	Height int

	Filter    string
	filtering bool

	// Detail view state. Current is empty while the list is shown.
	Current    string
	Detail     *index.Detail
	Links      []string
	LinkCursor int
	Err        error

	ctx    context.Context
	detail detailFunc
}

// NewBrowseModel creates a browser over names.
func NewBrowseModel(ctx context.Context, names []string, detail detailFunc) BrowseModel {
	return BrowseModel{
		Names:  names,
		Height: 15,
		ctx:    ctx,
		detail: detail,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// visible returns the names matching the filter.
func (m BrowseModel) visible() []string {
	if m.Filter == "" {
		return m.Names
	}
	var out []string
	for _, n := range m.Names {
		if strings.Contains(n, m.Filter) {
			out = append(out, n)
		}
	}
	return out
}

func (m BrowseModel) load(name string) tea.Cmd {
	return func() tea.Msg {
		d, err := m.detail(m.ctx, name)
		return detailMsg{name: name, detail: d, err: err}
	}
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailMsg:
		m.Current = msg.name
		m.Detail = msg.detail
		m.Err = msg.err
		m.Links = linksOf(msg.detail)
		m.LinkCursor = 0
		return m, nil

	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.filtering:
			return m.updateFilter(msg)
		case m.Current != "":
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m BrowseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.filtering = false
	case tea.KeyBackspace:
		if len(m.Filter) > 0 {
			m.Filter = m.Filter[:len(m.Filter)-1]
		}
	case tea.KeyRunes:
		m.Filter += string(msg.Runes)
	}
	m.Cursor, m.Offset = 0, 0
	return m, nil
}

func (m BrowseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := m.visible()
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "/":
		m.filtering = true
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			if m.Cursor < m.Offset {
				m.Offset = m.Cursor
			}
		}
	case "down", "j":
		if m.Cursor < len(names)-1 {
			m.Cursor++
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case "enter":
		if len(names) == 0 {
			return m, nil
		}
		return m, m.load(names[m.Cursor])
	}
	return m, nil
}

func (m BrowseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace", "h", "left":
		m.Current, m.Detail, m.Err, m.Links = "", nil, nil, nil
	case "up", "k", "shift+tab":
		if m.LinkCursor > 0 {
			m.LinkCursor--
		}
	case "down", "j", "tab":
		if m.LinkCursor < len(m.Links)-1 {
			m.LinkCursor++
		}
	case "enter", "right", "l":
		if len(m.Links) > 0 {
			return m, m.load(m.Links[m.LinkCursor])
		}
	}
	return m, nil
}

// linksOf lists the packages a detail view can jump to: dependencies the
// file provides, then dependents, each once.
func linksOf(d *index.Detail) []string {
	if d == nil {
		return nil
	}
	seen := index.NewOrderedSet()
	for _, dep := range d.Depends {
		if dep.Found && !control.IsDivider(dep.Name) {
			seen.Add(dep.Name)
		}
	}
	for _, name := range d.Dependents {
		seen.Add(name)
	}
	return seen.Items()
}

func (m BrowseModel) View() string {
	if m.Current != "" {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m BrowseModel) viewList() string {
	var b strings.Builder
	names := m.visible()

	b.WriteString(StyleTitle.Render("Installed Packages"))
	b.WriteString("\n")
	if m.filtering || m.Filter != "" {
		b.WriteString(StyleValue.Render("/" + m.Filter))
		if m.filtering {
			b.WriteString(StyleDim.Render("▏"))
		}
	} else {
		b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  / filter  q quit"))
	}
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(names))
	for i := m.Offset; i < end; i++ {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + names[i]))
		} else {
			b.WriteString(listNormalStyle.Render("  " + names[i]))
		}
		b.WriteString("\n")
	}
	if len(names) == 0 {
		b.WriteString(StyleWarning.Render("  no matching packages"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(names)), len(names))))
	return b.String()
}

func (m BrowseModel) viewDetail() string {
	var b strings.Builder
	if m.Err != nil {
		b.WriteString(markError + " " + m.Err.Error())
		b.WriteString("\n\n")
		b.WriteString(listDimStyle.Render("esc back  q quit"))
		return b.String()
	}

	writeDetail(&b, m.Current, m.Detail)
	b.WriteString("\n")
	if len(m.Links) > 0 {
		b.WriteString(styleHeading.Render("Go to"))
		b.WriteString("\n")
		for i, name := range m.Links {
			if i == m.LinkCursor {
				b.WriteString(listSelectedStyle.Render("▸ " + name))
			} else {
				b.WriteString(listNormalStyle.Render("  " + name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render("↑/↓ select  ⏎ open  esc back  q quit"))
	return b.String()
}
