package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slate-inspired palette matching the product's web shell.
var (
	colorHeader = lipgloss.Color("#83a598")
	colorBullet = lipgloss.Color("#fabd2f")
	colorDim    = lipgloss.Color("#928374")
	colorWarn   = lipgloss.Color("#fb4934")
	colorGood   = lipgloss.Color("#8ec07c")
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleBullet = lipgloss.NewStyle().Foreground(colorBullet)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleWarn   = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	styleGood   = lipgloss.NewStyle().Foreground(colorGood)
	styleBold   = lipgloss.NewStyle().Bold(true)
)

// renderDoc styles a markdown answer document for the terminal. It is a
// line-oriented pass: headers, bullets and separators get color, bold
// markers are stripped, everything else passes through.
func renderDoc(doc string) string {
	var b strings.Builder
	for i, line := range strings.Split(doc, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		switch {
		case strings.HasPrefix(line, "### "):
			b.WriteString(styleHeader.Render(strings.TrimPrefix(line, "### ")))
		case strings.HasPrefix(line, "## "):
			b.WriteString(styleHeader.Render(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "•"):
			b.WriteString(styleBullet.Render("•"))
			b.WriteString(stripBold(strings.TrimPrefix(line, "•")))
		case line == "---":
			b.WriteString(styleDim.Render("────────"))
		default:
			b.WriteString(stripBold(line))
		}
	}
	return b.String()
}

func stripBold(line string) string {
	return strings.ReplaceAll(line, "**", "")
}
