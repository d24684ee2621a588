package ui

import (
	"bookreview/internal/api"
	"bookreview/internal/state"

	tea "github.com/charmbracelet/bubbletea"
)

// SwitchModeMsg asks the shell to show another tab.
type SwitchModeMsg struct {
	Mode state.Mode
}

// SelectBookMsg is sent when the user opens a book from the list (Enter).
type SelectBookMsg struct {
	Book api.Book
}

// SubmitBookMsg submits the add-book form.
type SubmitBookMsg struct{}

// SubmitReviewMsg submits the review form for the selected book.
type SubmitReviewMsg struct{}

// ToggleReviewFormMsg shows or hides the review form (SPC n or "a" in reviews).
type ToggleReviewFormMsg struct{}

// RefreshMsg re-fetches the data of the current tab (SPC g or "r").
type RefreshMsg struct{}

func switchMode(m state.Mode) tea.Cmd {
	return func() tea.Msg { return SwitchModeMsg{Mode: m} }
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// CycleTabMsg moves Step tabs to the right (negative: left), wrapping around.
type CycleTabMsg struct {
	Step int
}
