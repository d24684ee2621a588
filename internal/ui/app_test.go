package ui

import (
	"strings"
	"testing"

	"bookreview/internal/api"
	"bookreview/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dune = api.Book{ID: 42, Title: "Dune", Author: "Frank Herbert"}
	emma = api.Book{ID: 7, Title: "Emma", Author: "Jane Austen"}
)

// newTestApp mounts the shell over fake and drains the initial fetch.
func newTestApp(t *testing.T, fake *fakeAPI) (*AppModel, *appModelAdapter) {
	t.Helper()
	app := NewAppModel(fake, nil)
	m := app.AsTeaModel().(*appModelAdapter)
	drain(m, m.Init())
	return app, m
}

func TestApp_InitLoadsBooks(t *testing.T) {
	fake := newFakeAPI(dune, emma)
	app, m := newTestApp(t, fake)

	assert.Equal(t, []string{"listBooks"}, fake.calls)
	assert.Equal(t, state.ModeBooks, app.Store.Mode)
	assert.Len(t, app.Books.Books, 2)

	out := m.View()
	assert.Contains(t, out, "Book Review Service")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "by Jane Austen")
}

func TestApp_EmptyCatalog(t *testing.T) {
	fake := newFakeAPI()
	app, m := newTestApp(t, fake)

	assert.Contains(t, m.View(), "No books available. Please add a new book.")

	// enter on an empty list selects nothing
	assert.False(t, press(m, "enter"))
	assert.Equal(t, state.ModeBooks, app.Store.Mode)
	assert.False(t, app.Store.HasSelection())
	assert.Equal(t, []string{"listBooks"}, fake.calls)
}

func TestApp_SelectBookShowsReviews(t *testing.T) {
	fake := newFakeAPI(dune, emma)
	fake.reviews[7] = []api.Review{{ID: 1, Content: "Witty and sharp", Rating: 3}}
	fake.average[7] = 3
	app, m := newTestApp(t, fake)

	press(m, "j")
	press(m, "enter")

	assert.Equal(t, state.ModeReviews, app.Store.Mode)
	require.True(t, app.Store.HasSelection())
	assert.Equal(t, emma, *app.Store.Selected)
	assert.Equal(t, []string{"listBooks", "listReviews(7)"}, fake.calls)
	assert.False(t, app.Store.Loading)

	out := m.View()
	assert.Contains(t, out, "by Jane Austen")
	assert.Contains(t, out, "3.0")
	assert.Contains(t, out, "Witty and sharp")
	assert.Contains(t, out, "Add Review")
	assert.NotContains(t, out, "Write a Review")
}

func TestApp_ReviewsTabWithoutSelection(t *testing.T) {
	fake := newFakeAPI(dune)
	app, m := newTestApp(t, fake)

	press(m, "3")

	assert.Equal(t, state.ModeReviews, app.Store.Mode)
	assert.Equal(t, []string{"listBooks"}, fake.calls, "no request without a selection")
	assert.Contains(t, m.View(), "Please select a book to view its reviews.")

	// the form cannot be opened without a book
	press(m, "a")
	assert.False(t, app.Store.ShowReviewForm)
}

func TestApp_NoReviewsYet(t *testing.T) {
	fake := newFakeAPI(dune)
	_, m := newTestApp(t, fake)

	press(m, "enter")
	assert.Contains(t, m.View(), "No reviews yet.")
}

func TestApp_TabSwitchingKeepsSelection(t *testing.T) {
	fake := newFakeAPI(dune)
	app, m := newTestApp(t, fake)
	press(m, "enter")

	press(m, "1")
	assert.Equal(t, state.ModeBooks, app.Store.Mode)
	press(m, "shift+tab")
	assert.Equal(t, state.ModeReviews, app.Store.Mode)
	press(m, "tab")
	assert.Equal(t, state.ModeBooks, app.Store.Mode)

	require.True(t, app.Store.HasSelection())
	assert.Equal(t, dune.ID, app.Store.Selected.ID)
	assert.Equal(t, []string{"listBooks", "listReviews(42)"}, fake.calls, "switching tabs issues no requests")
}

func TestApp_LeaderTabSubmenu(t *testing.T) {
	fake := newFakeAPI(dune)
	app, m := newTestApp(t, fake)

	press(m, " ")
	assert.Contains(t, m.View(), "Tab")
	press(m, "t")
	press(m, "a")
	assert.Equal(t, state.ModeAddBook, app.Store.Mode)
}

func TestApp_AddBook(t *testing.T) {
	fake := newFakeAPI(emma)
	app, m := newTestApp(t, fake)

	press(m, "2")
	require.Equal(t, state.ModeAddBook, app.Store.Mode)

	typeText(m, "Dune")
	press(m, "tab")
	typeText(m, "Frank Herbert")
	assert.Equal(t, state.BookDraft{Title: "Dune", Author: "Frank Herbert"}, app.Store.BookDraft)

	press(m, "enter")

	assert.Equal(t, []string{"listBooks", "createBook", "listBooks"}, fake.calls)
	assert.Equal(t, []api.NewBook{{Title: "Dune", Author: "Frank Herbert"}}, fake.createdBooks)
	assert.Equal(t, state.ModeBooks, app.Store.Mode)
	assert.Equal(t, state.BookDraft{}, app.Store.BookDraft)
	assert.Equal(t, state.BookDraft{}, app.AddBook.Draft(), "form inputs are reset")
	assert.Len(t, app.Books.Books, 2)
	assert.False(t, app.StatusIsError)
	assert.Contains(t, m.View(), `Added "Dune"`)
}

func TestApp_AddBookRequiresBothFields(t *testing.T) {
	fake := newFakeAPI()
	app, m := newTestApp(t, fake)

	press(m, "2")
	typeText(m, "   ")
	press(m, "tab")
	typeText(m, "Somebody")
	press(m, "enter")

	assert.Equal(t, []string{"listBooks"}, fake.calls)
	assert.Equal(t, state.ModeAddBook, app.Store.Mode)
	assert.Equal(t, "Somebody", app.Store.BookDraft.Author)
}

func TestApp_AddBookFailureKeepsDraft(t *testing.T) {
	fake := newFakeAPI()
	fake.createStatus = 500
	app, m := newTestApp(t, fake)

	press(m, "2")
	typeText(m, "Dune")
	press(m, "tab")
	typeText(m, "Frank Herbert")
	press(m, "enter")

	assert.Equal(t, []string{"listBooks", "createBook"}, fake.calls)
	assert.Equal(t, state.ModeAddBook, app.Store.Mode)
	assert.Equal(t, state.BookDraft{Title: "Dune", Author: "Frank Herbert"}, app.Store.BookDraft)
	assert.True(t, app.StatusIsError)
	assert.Contains(t, m.View(), "Add book failed")
}

func TestApp_EscLeavesAddBook(t *testing.T) {
	fake := newFakeAPI()
	app, m := newTestApp(t, fake)

	press(m, "2")
	typeText(m, "q")
	assert.Equal(t, state.ModeAddBook, app.Store.Mode, "q types into the form")
	assert.Equal(t, "q", app.Store.BookDraft.Title)

	press(m, "esc")
	assert.Equal(t, state.ModeBooks, app.Store.Mode)
	assert.Equal(t, "q", app.Store.BookDraft.Title, "draft survives leaving the tab")
}

func TestApp_SubmitReview(t *testing.T) {
	fake := newFakeAPI(dune)
	app, m := newTestApp(t, fake)
	press(m, "enter")

	press(m, "a")
	require.True(t, app.Store.ShowReviewForm)
	assert.Contains(t, m.View(), "Write a Review")
	assert.Contains(t, m.View(), "Hide Review Form")

	typeText(m, "Great read")
	press(m, "tab")
	press(m, "right")
	assert.Equal(t, state.ReviewDraft{Content: "Great read", Rating: 4}, app.Store.ReviewDraft)

	press(m, "ctrl+s")

	assert.Equal(t, []string{"listBooks", "listReviews(42)", "createReview(42)", "listReviews(42)"}, fake.calls)
	assert.Equal(t, []api.NewReview{{Content: "Great read", Rating: 4}}, fake.createdReviews)
	assert.Equal(t, state.NewReviewDraft(), app.Store.ReviewDraft)
	assert.Equal(t, state.NewReviewDraft(), app.Reviews.Form.Draft())
	assert.Len(t, app.Store.Reviews, 1)
	assert.Equal(t, "Review added", app.Status)
}

func TestApp_KeysWithHiddenFormDoNotReachIt(t *testing.T) {
	fake := newFakeAPI(dune)
	app, m := newTestApp(t, fake)
	press(m, "enter")

	typeText(m, "xyz")
	press(m, "j")
	assert.Equal(t, state.NewReviewDraft(), app.Reviews.Form.Draft())

	press(m, "a")
	press(m, "ctrl+s")

	assert.Empty(t, fake.createdReviews)
	assert.Equal(t, state.NewReviewDraft(), app.Store.ReviewDraft)
}

func TestApp_ReviewRequiresContent(t *testing.T) {
	fake := newFakeAPI(dune)
	app, m := newTestApp(t, fake)
	press(m, "enter")
	press(m, "a")

	typeText(m, "  ")
	press(m, "ctrl+s")

	assert.Equal(t, []string{"listBooks", "listReviews(42)"}, fake.calls)
	assert.True(t, app.Store.ShowReviewForm)
}

func TestApp_ReviewFailureShowsStatus(t *testing.T) {
	fake := newFakeAPI(dune)
	fake.createStatus = 400
	app, m := newTestApp(t, fake)
	press(m, "enter")
	press(m, "a")

	typeText(m, "Meh")
	press(m, "ctrl+s")

	assert.Equal(t, "Meh", app.Store.ReviewDraft.Content)
	assert.True(t, app.StatusIsError)
	assert.Contains(t, m.View(), "Add review failed")
}

func TestApp_EscHidesReviewFormThenLeaves(t *testing.T) {
	fake := newFakeAPI(dune)
	app, m := newTestApp(t, fake)
	press(m, "enter")
	press(m, "a")

	press(m, "esc")
	assert.False(t, app.Store.ShowReviewForm)
	assert.Equal(t, state.ModeReviews, app.Store.Mode)

	press(m, "esc")
	assert.Equal(t, state.ModeBooks, app.Store.Mode)
}

func TestApp_Refresh(t *testing.T) {
	fake := newFakeAPI(dune)
	_, m := newTestApp(t, fake)

	press(m, "r")
	press(m, "enter")
	press(m, "r")

	assert.Equal(t, []string{"listBooks", "listBooks", "listReviews(42)", "listReviews(42)"}, fake.calls)
}

func TestApp_Quit(t *testing.T) {
	fake := newFakeAPI()
	_, m := newTestApp(t, fake)

	assert.True(t, press(m, "q"))

	press(m, "2")
	assert.False(t, press(m, "q"), "q is text inside the form")
	assert.True(t, press(m, "ctrl+c"))
}

func TestRenderTabs(t *testing.T) {
	out := renderTabs(state.ModeAddBook)
	for _, label := range []string{"1 Books", "2 Add Book", "3 Reviews"} {
		assert.True(t, strings.Contains(out, label), "missing %q", label)
	}
}
