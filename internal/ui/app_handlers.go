package ui

import (
	"fmt"

	"bookreview/internal/state"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.editing() {
		cmd := a.updateCurrentView(msg)
		a.pushDrafts()
		return cmd
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Store.Mode); consumed {
			return cmd
		}
	}
	switch msg.String() {
	case "esc":
		if a.Store.Mode == state.ModeReviews {
			return switchMode(state.ModeBooks)
		}
	case "enter":
		if a.Store.Mode != state.ModeBooks {
			return nil
		}
		if b, ok := a.Books.SelectedBook(); ok {
			return send(SelectBookMsg{Book: b})
		}
		return nil
	}
	return a.updateCurrentView(msg)
}

// handleResult applies a request outcome to the store and refreshes the views from it.
func (a *AppModel) handleResult(msg tea.Msg) tea.Cmd {
	cmd := a.Store.Apply(msg)
	switch msg := msg.(type) {
	case state.BooksLoadedMsg:
		a.Books.SetBooks(a.Store.Books)
	case state.BookCreatedMsg:
		if msg.Err != nil {
			a.setStatus("Add book failed", true)
		} else {
			a.setStatus(fmt.Sprintf("Added %q", msg.Book.Title), false)
		}
	case state.ReviewCreatedMsg:
		if msg.Err != nil {
			a.setStatus("Add review failed", true)
		} else {
			a.setStatus("Review added", false)
		}
	}
	a.pullDrafts()
	return tea.Batch(cmd, a.Reviews.StartSpinner())
}

func (a *AppModel) handleSwitchMode(m state.Mode) tea.Cmd {
	a.Store.SetMode(m)
	a.Status = ""
	if m == state.ModeAddBook {
		return a.AddBook.Init()
	}
	return nil
}

func (a *AppModel) handleCycleTab(step int) tea.Cmd {
	n := len(state.Modes)
	idx := 0
	for i, m := range state.Modes {
		if m == a.Store.Mode {
			idx = i
		}
	}
	return a.handleSwitchMode(state.Modes[((idx+step)%n+n)%n])
}

func (a *AppModel) handleSelectBook(msg SelectBookMsg) tea.Cmd {
	a.Status = ""
	cmd := a.Store.SelectBook(msg.Book)
	return tea.Batch(cmd, a.Reviews.StartSpinner())
}

func (a *AppModel) handleToggleReviewForm() tea.Cmd {
	if a.Store.Mode != state.ModeReviews || !a.Store.HasSelection() {
		return nil
	}
	a.Store.ToggleReviewForm()
	if a.Store.ShowReviewForm {
		return a.Reviews.Form.Init()
	}
	return nil
}

func (a *AppModel) handleRefresh() tea.Cmd {
	cmd := a.Store.Refresh()
	return tea.Batch(cmd, a.Reviews.StartSpinner())
}

func (a *AppModel) setStatus(s string, isErr bool) {
	a.Status = s
	a.StatusIsError = isErr
}

// pushDrafts copies form input into the store drafts.
func (a *AppModel) pushDrafts() {
	switch a.Store.Mode {
	case state.ModeAddBook:
		a.Store.SetBookDraft(a.AddBook.Draft())
	case state.ModeReviews:
		a.Store.SetReviewDraft(a.Reviews.Form.Draft())
	}
}

// pullDrafts resets the forms to the store drafts after a submission cleared them.
func (a *AppModel) pullDrafts() {
	a.AddBook.SetDraft(a.Store.BookDraft)
	a.Reviews.Form.SetDraft(a.Store.ReviewDraft)
}
