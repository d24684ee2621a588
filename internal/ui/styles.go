package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, active tab
	ColorHighlight = "205" // Magenta - selected items, borders
	ColorDanger    = "196" // Red - failed submissions
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorStar      = "220" // Yellow - filled rating stars
	ColorSuccess   = "42"  // Green - confirmations
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - app header
	Tagline lipgloss.Style // Muted subtitle under the header
	Heading lipgloss.Style // Section headings inside a view

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Box  lipgloss.Style // Rounded box for forms
	Card lipgloss.Style // Left-bordered card for books and reviews

	Selected  lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted     lipgloss.Style
	Normal    lipgloss.Style
	Hint      lipgloss.Style
	Label     lipgloss.Style
	Empty     lipgloss.Style // Empty state text (muted, italic)
	Button    lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style

	StarFilled lipgloss.Style
	StarEmpty  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Tagline: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true).
		Padding(0, 1),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorAccent)).
		PaddingLeft(1).
		MarginBottom(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Bold(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	StatusErr: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	StarFilled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorStar)),
	StarEmpty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// NewBookListDelegate returns the book card delegate: title plus a muted
// "by author" line, with shared styles.
func NewBookListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(1)
	d.ShowDescription = true
	d.Styles.SelectedTitle = Styles.Selected.
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 0, 0, 1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Bold(false)
	d.Styles.NormalTitle = Styles.Normal.Padding(0, 0, 0, 2)
	d.Styles.NormalDesc = Styles.Muted.Padding(0, 0, 0, 2)
	return d
}
