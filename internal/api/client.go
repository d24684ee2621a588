// Package api is the HTTP client for the book review service.
//
// The client only performs the exchange and decodes the response envelope.
// Interpreting the envelope status is left to the caller.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bookreview/internal/jsonutil"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader carries a per-request id so calls can be matched in API logs.
const RequestIDHeader = "X-Request-ID"

const tracerName = "bookreview/api"

// Client calls the book review API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient constructs a client rooted at baseURL (e.g. http://localhost:5000).
// The default http.Client has no timeout.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the address the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListBooks fetches the full catalog (GET /books).
func (c *Client) ListBooks(ctx context.Context) (*Response[[]Book], error) {
	out := &Response[[]Book]{}
	status, err := c.do(ctx, "list books", http.MethodGet, "/books", nil, &out.Envelope, false)
	out.HTTPStatus = status
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBook submits a new book (POST /books).
// Only the HTTP status is meaningful; the body is decoded when possible.
func (c *Client) CreateBook(ctx context.Context, book NewBook) (*Response[Book], error) {
	out := &Response[Book]{}
	status, err := c.do(ctx, "create book", http.MethodPost, "/books", book, &out.Envelope, true)
	out.HTTPStatus = status
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListReviews fetches the reviews and average rating of one book
// (GET /books/{id}/reviews).
func (c *Client) ListReviews(ctx context.Context, bookID int64) (*Response[[]Review], error) {
	out := &Response[[]Review]{}
	status, err := c.do(ctx, "list reviews", http.MethodGet, reviewsPath(bookID), nil, &out.Envelope, false)
	out.HTTPStatus = status
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReview submits a review for a book (POST /books/{id}/reviews).
// Only the HTTP status is meaningful; the body is decoded when possible.
func (c *Client) CreateReview(ctx context.Context, bookID int64, review NewReview) (*Response[Review], error) {
	out := &Response[Review]{}
	status, err := c.do(ctx, "create review", http.MethodPost, reviewsPath(bookID), review, &out.Envelope, true)
	out.HTTPStatus = status
	if err != nil {
		return nil, err
	}
	return out, nil
}

func reviewsPath(bookID int64) string {
	return fmt.Sprintf("/books/%d/reviews", bookID)
}

// do performs one exchange and decodes the body into out.
// With lenient set, an undecodable body is not an error.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any, lenient bool) (int, error) {
	ctx, span := c.tracer.Start(ctx, op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	var reader io.Reader
	if body != nil {
		r, err := jsonutil.EncodeBody(body, op)
		if err != nil {
			return 0, failSpan(span, err)
		}
		reader = r
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, failSpan(span, fmt.Errorf("%s: build request: %w", op, err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	span.SetAttributes(attribute.String("bookreview.request_id", requestID))
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, failSpan(span, fmt.Errorf("%s: %w", op, err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, resp.Status)
	}

	if err := jsonutil.DecodeBody(resp.Body, out, op); err != nil {
		if lenient {
			return resp.StatusCode, nil
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp.StatusCode, failSpan(span, &StatusError{Op: op, Status: resp.StatusCode, Err: err})
		}
		return resp.StatusCode, failSpan(span, err)
	}
	return resp.StatusCode, nil
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
