package ui

import (
	"context"
	"fmt"
	"net/http"

	"bookreview/internal/api"
	"bookreview/internal/state"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeAPI answers from memory and records every call in order.
type fakeAPI struct {
	calls   []string
	books   []api.Book
	reviews map[int64][]api.Review
	average map[int64]float64

	createStatus   int // 0 means 201
	createdBooks   []api.NewBook
	createdReviews []api.NewReview
}

var _ state.BookAPI = (*fakeAPI)(nil)

func newFakeAPI(books ...api.Book) *fakeAPI {
	return &fakeAPI{
		books:   books,
		reviews: map[int64][]api.Review{},
		average: map[int64]float64{},
	}
}

func (f *fakeAPI) ListBooks(context.Context) (*api.Response[[]api.Book], error) {
	f.calls = append(f.calls, "listBooks")
	return &api.Response[[]api.Book]{
		HTTPStatus: http.StatusOK,
		Envelope:   api.Envelope[[]api.Book]{Status: api.StatusSuccess, Data: append([]api.Book(nil), f.books...)},
	}, nil
}

func (f *fakeAPI) CreateBook(_ context.Context, b api.NewBook) (*api.Response[api.Book], error) {
	f.calls = append(f.calls, "createBook")
	f.createdBooks = append(f.createdBooks, b)
	status := f.status()
	if status < 300 {
		f.books = append(f.books, api.Book{ID: int64(100 + len(f.books)), Title: b.Title, Author: b.Author})
	}
	return &api.Response[api.Book]{HTTPStatus: status}, nil
}

func (f *fakeAPI) ListReviews(_ context.Context, bookID int64) (*api.Response[[]api.Review], error) {
	f.calls = append(f.calls, fmt.Sprintf("listReviews(%d)", bookID))
	avg := f.average[bookID]
	return &api.Response[[]api.Review]{
		HTTPStatus: http.StatusOK,
		Envelope: api.Envelope[[]api.Review]{
			Status:        api.StatusSuccess,
			Data:          append([]api.Review(nil), f.reviews[bookID]...),
			AverageRating: &avg,
		},
	}, nil
}

func (f *fakeAPI) CreateReview(_ context.Context, bookID int64, r api.NewReview) (*api.Response[api.Review], error) {
	f.calls = append(f.calls, fmt.Sprintf("createReview(%d)", bookID))
	f.createdReviews = append(f.createdReviews, r)
	status := f.status()
	if status < 300 {
		f.reviews[bookID] = append(f.reviews[bookID], api.Review{ID: int64(len(f.reviews[bookID]) + 1), Content: r.Content, Rating: r.Rating})
	}
	return &api.Response[api.Review]{HTTPStatus: status}, nil
}

func (f *fakeAPI) status() int {
	if f.createStatus == 0 {
		return http.StatusCreated
	}
	return f.createStatus
}

// drain runs cmd and every follow-up command, feeding request results and
// shell intents back into m. Timers (spinner ticks, cursor blinks) are dropped.
// It returns true if a tea.Quit was produced.
func drain(m tea.Model, cmd tea.Cmd) (quit bool) {
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < 100; steps++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			quit = true
		case state.BooksLoadedMsg, state.ReviewsLoadedMsg, state.BookCreatedMsg, state.ReviewCreatedMsg,
			SwitchModeMsg, CycleTabMsg, SelectBookMsg, SubmitBookMsg, SubmitReviewMsg,
			ToggleReviewFormMsg, RefreshMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
	return quit
}

// press sends one key and drains what it triggers.
func press(m tea.Model, k string) (quit bool) {
	_, cmd := m.Update(keyMsg(k))
	return drain(m, cmd)
}
