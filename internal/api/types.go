package api

import "fmt"

// StatusSuccess is the envelope status the API reports for a successful call.
const StatusSuccess = "success"

// Book is a catalog entry as returned by GET /books.
type Book struct {
	ID     int64  `json:"book_id"`
	Title  string `json:"book_title"`
	Author string `json:"book_author"`
}

// Review is a single star-rated review of a book.
// The owning book is identified by the request path, not by the record.
type Review struct {
	ID      int64  `json:"review_id"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// NewBook is the POST /books request body.
type NewBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// NewReview is the POST /books/{id}/reviews request body.
type NewReview struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// Envelope is the wrapper every API response body uses.
// Status, StatusCode, Message and Source are informational; Data carries the payload.
type Envelope[T any] struct {
	Status        string   `json:"status"`
	StatusCode    int      `json:"status_code,omitempty"`
	Message       string   `json:"message,omitempty"`
	Source        string   `json:"source,omitempty"`
	Data          T        `json:"data"`
	AverageRating *float64 `json:"average_rating,omitempty"`
}

// Success reports whether the envelope status is "success".
func (e Envelope[T]) Success() bool {
	return e.Status == StatusSuccess
}

// Average returns average_rating, or 0 when the API omitted it.
func (e Envelope[T]) Average() float64 {
	if e.AverageRating == nil {
		return 0
	}
	return *e.AverageRating
}

// Response pairs the HTTP status code with the decoded envelope.
type Response[T any] struct {
	HTTPStatus int
	Envelope   Envelope[T]
}

// OK reports whether the HTTP status code is 2xx.
func (r *Response[T]) OK() bool {
	return r != nil && r.HTTPStatus >= 200 && r.HTTPStatus < 300
}

// StatusError is returned by list calls when the API answers with a non-2xx
// status and a body that cannot be decoded as an envelope.
type StatusError struct {
	Op     string
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: http status %d: %v", e.Op, e.Status, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
