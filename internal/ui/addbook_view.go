package ui

import (
	"strings"

	"bookreview/internal/state"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle  = "title"
	fieldAuthor = "author"
)

// AddBookView is the add-book form: a title and an author input.
type AddBookView struct {
	title  textinput.Model
	author textinput.Model
	focus  *FocusManager
}

var _ View = (*AddBookView)(nil)

// NewAddBookView creates the form with the title field focused.
func NewAddBookView() *AddBookView {
	v := &AddBookView{
		title:  newInput("Book title"),
		author: newInput("Author name"),
	}
	v.focus = NewFocusManager(v.onFocus, fieldTitle, fieldAuthor)
	return v
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 40
	return ti
}

func (v *AddBookView) onFocus(from, to string) {
	switch from {
	case fieldTitle:
		v.title.Blur()
	case fieldAuthor:
		v.author.Blur()
	}
	switch to {
	case fieldTitle:
		v.title.Focus()
	case fieldAuthor:
		v.author.Focus()
	}
}

// Draft returns the current field values.
func (v *AddBookView) Draft() state.BookDraft {
	return state.BookDraft{Title: v.title.Value(), Author: v.author.Value()}
}

// SetDraft overwrites the fields when they differ from d. A cleared draft
// also moves focus back to the title.
func (v *AddBookView) SetDraft(d state.BookDraft) {
	if v.Draft() == d {
		return
	}
	v.title.SetValue(d.Title)
	v.author.SetValue(d.Author)
	if d == (state.BookDraft{}) {
		v.focus.SetFocus(fieldTitle)
	}
}

// Init implements View.
func (v *AddBookView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *AddBookView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			v.focus.Next()
			return v, nil
		case "shift+tab", "up":
			v.focus.Prev()
			return v, nil
		case "enter":
			return v, send(SubmitBookMsg{})
		case "esc":
			return v, switchMode(state.ModeBooks)
		}
	}
	var cmd tea.Cmd
	if v.focus.Is(fieldAuthor) {
		v.author, cmd = v.author.Update(msg)
	} else {
		v.title, cmd = v.title.Update(msg)
	}
	return v, cmd
}

// View implements View.
func (v *AddBookView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Heading.Render("Add New Book") + "\n\n")
	b.WriteString(Styles.Label.Render("Book Title") + "\n")
	b.WriteString(v.title.View() + "\n\n")
	b.WriteString(Styles.Label.Render("Author") + "\n")
	b.WriteString(v.author.View() + "\n\n")
	b.WriteString(Styles.Hint.Render("Enter: add book  Tab: next field  Esc: back to books"))
	return Styles.Box.Render(b.String())
}
