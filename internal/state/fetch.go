package state

import (
	"context"
	"errors"
	"fmt"

	"bookreview/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnsuccessful marks a response the API answered but did not report as a success:
// a non-"success" envelope status on a list call or a non-2xx status on a create call.
var ErrUnsuccessful = errors.New("unsuccessful response")

// ReviewLister is the part of the API client needed to read reviews.
type ReviewLister interface {
	ListReviews(ctx context.Context, bookID int64) (*api.Response[[]api.Review], error)
}

// BookAPI is the API client surface the store drives.
type BookAPI interface {
	ReviewLister
	ListBooks(ctx context.Context) (*api.Response[[]api.Book], error)
	CreateBook(ctx context.Context, book api.NewBook) (*api.Response[api.Book], error)
	CreateReview(ctx context.Context, bookID int64, review api.NewReview) (*api.Response[api.Review], error)
}

// FetchReviews returns a command that lists the reviews of one book and reports
// the outcome as a ReviewsLoadedMsg tagged with token.
// Both the application shell and the standalone review list fetch through it.
func FetchReviews(ctx context.Context, client ReviewLister, bookID int64, token string) tea.Cmd {
	return func() tea.Msg {
		msg := ReviewsLoadedMsg{BookID: bookID, Token: token}
		resp, err := client.ListReviews(ctx, bookID)
		if err != nil {
			msg.Err = err
			return msg
		}
		if resp == nil || !resp.Envelope.Success() {
			msg.Err = unsuccessfulStatus("list reviews", envelopeStatus(resp))
			return msg
		}
		msg.Reviews = resp.Envelope.Data
		msg.AverageRating = resp.Envelope.Average()
		return msg
	}
}

func fetchBooks(ctx context.Context, client BookAPI) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.ListBooks(ctx)
		if err != nil {
			return BooksLoadedMsg{Err: err}
		}
		if resp == nil || !resp.Envelope.Success() {
			return BooksLoadedMsg{Err: unsuccessfulStatus("list books", envelopeStatus(resp))}
		}
		return BooksLoadedMsg{Books: resp.Envelope.Data}
	}
}

func submitBook(ctx context.Context, client BookAPI, book api.NewBook) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.CreateBook(ctx, book)
		if err == nil && !resp.OK() {
			err = unsuccessfulHTTP("create book", httpStatus(resp))
		}
		return BookCreatedMsg{Book: book, Err: err}
	}
}

func submitReview(ctx context.Context, client BookAPI, bookID int64, review api.NewReview) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.CreateReview(ctx, bookID, review)
		if err == nil && !resp.OK() {
			err = unsuccessfulHTTP("create review", httpStatus(resp))
		}
		return ReviewCreatedMsg{BookID: bookID, Review: review, Err: err}
	}
}

func unsuccessfulStatus(op, status string) error {
	return fmt.Errorf("%s: envelope status %q: %w", op, status, ErrUnsuccessful)
}

func unsuccessfulHTTP(op string, code int) error {
	return fmt.Errorf("%s: http status %d: %w", op, code, ErrUnsuccessful)
}

func envelopeStatus[T any](resp *api.Response[T]) string {
	if resp == nil {
		return ""
	}
	return resp.Envelope.Status
}

func httpStatus[T any](resp *api.Response[T]) int {
	if resp == nil {
		return 0
	}
	return resp.HTTPStatus
}
