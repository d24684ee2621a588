package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bookreview/internal/api"
	"bookreview/internal/state"
	"bookreview/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ReviewListView is a read-only list of one book's reviews. It fetches once
// on Init and never refreshes.
type ReviewListView struct {
	BookID  int64
	Reviews []api.Review
	Loaded  bool

	client state.ReviewLister
	logger *slog.Logger
	token  string
	width  int
}

var _ View = (*ReviewListView)(nil)

// NewReviewListView creates a list for bookID. A nil logger discards diagnostics.
func NewReviewListView(client state.ReviewLister, bookID int64, logger *slog.Logger) *ReviewListView {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ReviewListView{
		BookID: bookID,
		client: client,
		logger: logger,
		token:  uuid.NewString(),
		width:  80,
	}
}

// Init implements View: the one reviews request.
func (v *ReviewListView) Init() tea.Cmd {
	return state.FetchReviews(context.Background(), v.client, v.BookID, v.token)
}

// Update implements View.
func (v *ReviewListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case state.ReviewsLoadedMsg:
		if msg.Token != v.token {
			return v, nil
		}
		v.Loaded = true
		if msg.Err != nil {
			v.logger.Error("load reviews failed", "book_id", msg.BookID, "error", msg.Err)
			return v, nil
		}
		v.Reviews = msg.Reviews
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		}
	}
	return v, nil
}

// View implements View.
func (v *ReviewListView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("💬 Reviews") + "\n\n")
	switch {
	case !v.Loaded:
		b.WriteString(Styles.Muted.Render("Loading reviews…") + "\n")
	case len(v.Reviews) == 0:
		b.WriteString(Styles.Empty.Render("No reviews yet.") + "\n")
	}
	for _, r := range v.Reviews {
		line := fmt.Sprintf("⭐ %d: %s", r.Rating, textutil.SingleLine(r.Content))
		b.WriteString(textutil.Truncate(line, max(v.width-2, 20)) + "\n")
	}
	b.WriteString("\n" + Styles.Hint.Render("q: quit"))
	return b.String()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (v *ReviewListView) AsTeaModel() tea.Model {
	return viewModel{view: v}
}

// viewModel adapts a View to tea.Model.
type viewModel struct {
	view View
}

func (m viewModel) Init() tea.Cmd {
	return m.view.Init()
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v, cmd := m.view.Update(msg)
	return viewModel{view: v}, cmd
}

func (m viewModel) View() string {
	return m.view.View()
}
