package ui

import (
	"strconv"
	"strings"

	"bookreview/internal/state"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldRating  = "rating"
	fieldContent = "content"
)

// ReviewForm collects a rating and review text for the selected book.
// The rating selector lists 5 Stars down to 1 Star.
type ReviewForm struct {
	rating  int
	content textarea.Model
	focus   *FocusManager
}

var _ View = (*ReviewForm)(nil)

// NewReviewForm creates a cleared form with the content field focused.
func NewReviewForm() *ReviewForm {
	ta := textarea.New()
	ta.Placeholder = "Write your review here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetWidth(60)
	ta.SetHeight(4)

	f := &ReviewForm{rating: state.DefaultRating, content: ta}
	f.focus = NewFocusManager(f.onFocus, fieldContent, fieldRating)
	return f
}

func (f *ReviewForm) onFocus(_, to string) {
	if to == fieldContent {
		f.content.Focus()
	} else {
		f.content.Blur()
	}
}

// Draft returns the current rating and content.
func (f *ReviewForm) Draft() state.ReviewDraft {
	return state.ReviewDraft{Content: f.content.Value(), Rating: f.rating}
}

// SetDraft overwrites the form when it differs from d.
func (f *ReviewForm) SetDraft(d state.ReviewDraft) {
	if f.Draft() == d {
		return
	}
	f.rating = d.Rating
	f.content.SetValue(d.Content)
}

// SetWidth fits the text area to the available width.
func (f *ReviewForm) SetWidth(w int) {
	f.content.SetWidth(min(max(w-8, 20), 80))
}

// Init implements View.
func (f *ReviewForm) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements View.
func (f *ReviewForm) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			f.focus.Next()
			return f, nil
		case "shift+tab":
			f.focus.Prev()
			return f, nil
		case "ctrl+s":
			return f, send(SubmitReviewMsg{})
		case "esc":
			return f, send(ToggleReviewFormMsg{})
		}
		if f.focus.Is(fieldRating) {
			f.updateRating(msg.String())
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.content, cmd = f.content.Update(msg)
	return f, cmd
}

// updateRating moves along the selector, which reads 5 Stars first.
func (f *ReviewForm) updateRating(k string) {
	switch k {
	case "left", "h", "up", "k", "+":
		f.rating = min(f.rating+1, MaxRating)
	case "right", "l", "down", "j", "-":
		f.rating = max(f.rating-1, 1)
	case "enter":
		f.focus.SetFocus(fieldContent)
	default:
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= MaxRating {
			f.rating = n
		}
	}
}

// View implements View.
func (f *ReviewForm) View() string {
	var b strings.Builder
	b.WriteString(Styles.Heading.Render("Write a Review") + "\n\n")

	label := Styles.Label.Render("Rating")
	if f.focus.Is(fieldRating) {
		label = Styles.Selected.Render("Rating ▸")
	}
	b.WriteString(label + "\n")
	options := make([]string, 0, MaxRating)
	for r := MaxRating; r >= 1; r-- {
		if r == f.rating {
			options = append(options, Styles.Selected.Render("["+RatingLabel(r)+"]"))
		} else {
			options = append(options, Styles.Muted.Render(" "+RatingLabel(r)+" "))
		}
	}
	b.WriteString(strings.Join(options, " ") + "\n\n")

	b.WriteString(Styles.Label.Render("Review") + "\n")
	b.WriteString(f.content.View() + "\n\n")
	b.WriteString(Styles.Hint.Render("Ctrl+S: submit  Tab: switch field  ←/→ or 1-5: rating  Esc: hide form"))
	return Styles.Box.Render(b.String())
}
