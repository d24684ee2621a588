package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a tab body or form with its own update and render.
// Update returns the View to keep so a screen can swap itself out.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
