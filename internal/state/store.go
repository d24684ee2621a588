// Package state holds the client-side state of the book review application.
//
// Store is the single state container: every field the views render lives
// here, and the exported operations are the only way to change it. Remote
// calls are returned as Bubble Tea commands; their results come back as
// messages that Apply folds into the store on the event loop, so there is
// exactly one writer.
package state

import (
	"context"
	"log/slog"
	"strings"

	"bookreview/internal/api"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DefaultRating is the rating a fresh review draft starts with.
const DefaultRating = 5

// BookDraft is the unsubmitted add-book form. The zero value is the cleared draft.
type BookDraft struct {
	Title  string
	Author string
}

// Valid reports whether both fields are non-blank.
func (d BookDraft) Valid() bool {
	return strings.TrimSpace(d.Title) != "" && strings.TrimSpace(d.Author) != ""
}

// ReviewDraft is the unsubmitted review form.
type ReviewDraft struct {
	Content string
	Rating  int
}

// NewReviewDraft returns the cleared review draft.
func NewReviewDraft() ReviewDraft {
	return ReviewDraft{Rating: DefaultRating}
}

// Store is the application state for one mounted session.
type Store struct {
	Mode           Mode
	Books          []api.Book
	Selected       *api.Book
	Reviews        []api.Review
	AverageRating  float64
	Loading        bool
	ShowReviewForm bool
	BookDraft      BookDraft
	ReviewDraft    ReviewDraft

	client       BookAPI
	logger       *slog.Logger
	ctx          context.Context
	reviewsToken string
	newToken     func() string
}

// NewStore creates a store in books mode with empty drafts.
// A nil logger discards diagnostics.
func NewStore(client BookAPI, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		Mode:        ModeBooks,
		ReviewDraft: NewReviewDraft(),
		client:      client,
		logger:      logger,
		ctx:         context.Background(),
		newToken:    uuid.NewString,
	}
}

// Init returns the mount command: the initial book fetch.
func (s *Store) Init() tea.Cmd {
	return s.LoadBooks()
}

// HasSelection reports whether a book is selected.
func (s *Store) HasSelection() bool {
	return s.Selected != nil
}

// SetMode switches the active view. Selection and review state are kept, and
// no request is issued, even for reviews mode without a selection.
func (s *Store) SetMode(m Mode) {
	s.Mode = m
}

// ToggleReviewForm shows or hides the review entry form.
func (s *Store) ToggleReviewForm() {
	s.ShowReviewForm = !s.ShowReviewForm
}

// SetBookDraft replaces the add-book draft.
func (s *Store) SetBookDraft(d BookDraft) {
	s.BookDraft = d
}

// SetReviewDraft replaces the review draft.
func (s *Store) SetReviewDraft(d ReviewDraft) {
	s.ReviewDraft = d
}

// LoadBooks fetches the whole catalog.
func (s *Store) LoadBooks() tea.Cmd {
	return fetchBooks(s.ctx, s.client)
}

// SelectBook focuses b, switches to reviews mode and fetches its reviews.
// Reselecting the same book fetches again.
func (s *Store) SelectBook(b api.Book) tea.Cmd {
	if s.Selected == nil || s.Selected.ID != b.ID {
		s.Reviews = nil
		s.AverageRating = 0
	}
	book := b
	s.Selected = &book
	s.Mode = ModeReviews
	return s.LoadReviews(b.ID)
}

// LoadReviews fetches reviews and the average rating for bookID.
// Loading stays true until the matching ReviewsLoadedMsg is applied.
func (s *Store) LoadReviews(bookID int64) tea.Cmd {
	s.Loading = true
	s.reviewsToken = s.newToken()
	return FetchReviews(s.ctx, s.client, bookID, s.reviewsToken)
}

// CreateBook submits the book draft. It returns nil, issuing nothing, when
// either field is blank.
func (s *Store) CreateBook() tea.Cmd {
	if !s.BookDraft.Valid() {
		return nil
	}
	return submitBook(s.ctx, s.client, api.NewBook{
		Title:  s.BookDraft.Title,
		Author: s.BookDraft.Author,
	})
}

// CreateReview submits the review draft for the selected book. It returns
// nil, issuing nothing, when the content is blank or no book is selected.
func (s *Store) CreateReview() tea.Cmd {
	if strings.TrimSpace(s.ReviewDraft.Content) == "" || s.Selected == nil {
		return nil
	}
	return submitReview(s.ctx, s.client, s.Selected.ID, api.NewReview{
		Content: s.ReviewDraft.Content,
		Rating:  s.ReviewDraft.Rating,
	})
}

// Refresh re-fetches whatever the current mode displays.
func (s *Store) Refresh() tea.Cmd {
	switch s.Mode {
	case ModeBooks:
		return s.LoadBooks()
	case ModeReviews:
		if s.Selected != nil {
			return s.LoadReviews(s.Selected.ID)
		}
	}
	return nil
}

// Apply folds a result message into the store and returns any follow-up command.
// Messages it does not own are ignored.
func (s *Store) Apply(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case BooksLoadedMsg:
		s.applyBooks(msg)
	case ReviewsLoadedMsg:
		s.applyReviews(msg)
	case BookCreatedMsg:
		return s.applyBookCreated(msg)
	case ReviewCreatedMsg:
		return s.applyReviewCreated(msg)
	}
	return nil
}

func (s *Store) applyBooks(msg BooksLoadedMsg) {
	if msg.Err != nil {
		s.logger.Error("load books failed", "error", msg.Err)
		return
	}
	s.Books = msg.Books
	s.logger.Debug("books loaded", "count", len(msg.Books))
}

func (s *Store) applyReviews(msg ReviewsLoadedMsg) {
	if msg.Token != s.reviewsToken {
		s.logger.Debug("discarding stale reviews response", "book_id", msg.BookID)
		return
	}
	s.Loading = false
	if msg.Err != nil {
		s.logger.Error("load reviews failed", "book_id", msg.BookID, "error", msg.Err)
		return
	}
	s.Reviews = msg.Reviews
	s.AverageRating = msg.AverageRating
	s.logger.Debug("reviews loaded", "book_id", msg.BookID, "count", len(msg.Reviews))
}

func (s *Store) applyBookCreated(msg BookCreatedMsg) tea.Cmd {
	if msg.Err != nil {
		s.logger.Error("create book failed", "title", msg.Book.Title, "error", msg.Err)
		return nil
	}
	s.BookDraft = BookDraft{}
	s.Mode = ModeBooks
	s.logger.Info("book created", "title", msg.Book.Title)
	return s.LoadBooks()
}

func (s *Store) applyReviewCreated(msg ReviewCreatedMsg) tea.Cmd {
	if msg.Err != nil {
		s.logger.Error("create review failed", "book_id", msg.BookID, "error", msg.Err)
		return nil
	}
	s.logger.Info("review created", "book_id", msg.BookID)
	if s.Selected == nil {
		return nil
	}
	// a draft started for another book since the submit is kept
	if s.Selected.ID == msg.BookID {
		s.ReviewDraft = NewReviewDraft()
	}
	return s.LoadReviews(s.Selected.ID)
}
