package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette (ANSI 256).
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle renders a package name heading.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight marks dependencies present in the status file.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim is used for secondary text and dividers.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders summaries and configuration values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning flags empty results.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleHeading     = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	styleMissing     = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// status line prefixes
var (
	markSuccess = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	markError   = lipgloss.NewStyle().Foreground(colorRed).Render("✗")
	markInfo    = lipgloss.NewStyle().Foreground(colorGray).Render("›")
	markFile    = StyleDim.Render("→")
)

func printSuccess(format string, args ...any) {
	fmt.Println(markSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(markError, fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Println(markInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  "+markFile, StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key), StyleValue.Render(value))
}
