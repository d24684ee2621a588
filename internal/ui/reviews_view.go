package ui

import (
	"fmt"
	"strings"

	"bookreview/internal/api"
	"bookreview/internal/state"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReviewsView shows the selected book, its average rating, the optional
// review form and the review cards. It reads from the store and never writes.
type ReviewsView struct {
	store    *state.Store
	Form     *ReviewForm
	spinner  spinner.Model
	spinning bool
	width    int
}

var _ View = (*ReviewsView)(nil)

// NewReviewsView creates the reviews screen over store.
func NewReviewsView(store *state.Store) *ReviewsView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &ReviewsView{
		store:   store,
		Form:    NewReviewForm(),
		spinner: s,
		width:   80,
	}
}

// StartSpinner returns the first spinner tick unless one is already running.
func (v *ReviewsView) StartSpinner() tea.Cmd {
	if v.spinning || !v.store.Loading {
		return nil
	}
	v.spinning = true
	return v.spinner.Tick
}

// Init implements View.
func (v *ReviewsView) Init() tea.Cmd {
	return v.StartSpinner()
}

// Update implements View. Keys reach the form only while it is shown.
func (v *ReviewsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.Form.SetWidth(msg.Width)
		return v, nil
	case spinner.TickMsg:
		if !v.store.Loading {
			v.spinning = false
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		if !v.store.ShowReviewForm || !v.store.HasSelection() {
			return v, nil
		}
	}
	_, cmd := v.Form.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ReviewsView) View() string {
	if !v.store.HasSelection() {
		return Styles.Empty.Render("Please select a book to view its reviews.")
	}
	book := v.store.Selected

	var b strings.Builder
	b.WriteString(Styles.Heading.Render(book.Title) + "\n")
	b.WriteString(Styles.Muted.Render("by "+book.Author) + "\n\n")
	b.WriteString(RenderStars(v.store.AverageRating) + " " +
		Styles.Normal.Render(fmt.Sprintf("%.1f", v.store.AverageRating)) +
		Styles.Muted.Render(fmt.Sprintf("  (%d reviews)", len(v.store.Reviews))) + "\n\n")

	toggle := "Add Review"
	if v.store.ShowReviewForm {
		toggle = "Hide Review Form"
	}
	b.WriteString(Styles.Button.Render(toggle) + " " + Styles.Hint.Render("a") + "\n")
	if v.store.ShowReviewForm {
		b.WriteString(v.Form.View() + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Styles.Heading.Render("Reviews"))
	if v.store.Loading {
		b.WriteString(" " + v.spinner.View())
	}
	b.WriteString("\n\n")
	if len(v.store.Reviews) == 0 {
		if !v.store.Loading {
			b.WriteString(Styles.Empty.Render("No reviews yet."))
		}
		return b.String()
	}
	for _, r := range v.store.Reviews {
		b.WriteString(v.renderReview(r) + "\n")
	}
	return b.String()
}

func (v *ReviewsView) renderReview(r api.Review) string {
	body := RenderStars(float64(r.Rating)) + "\n" + Styles.Normal.Render(r.Content)
	return Styles.Card.Width(max(v.width-4, 20)).Render(body)
}
