package state

import "bookreview/internal/api"

// BooksLoadedMsg carries the result of a list books call.
type BooksLoadedMsg struct {
	Books []api.Book
	Err   error
}

// ReviewsLoadedMsg carries the result of a list reviews call.
// Token identifies the fetch that produced it.
type ReviewsLoadedMsg struct {
	BookID        int64
	Token         string
	Reviews       []api.Review
	AverageRating float64
	Err           error
}

// BookCreatedMsg carries the result of a create book call.
type BookCreatedMsg struct {
	Book api.NewBook
	Err  error
}

// ReviewCreatedMsg carries the result of a create review call.
type ReviewCreatedMsg struct {
	BookID int64
	Review api.NewReview
	Err    error
}
