package ui

import (
	"errors"
	"testing"

	"bookreview/internal/api"
	"bookreview/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewListView_FetchesOnce(t *testing.T) {
	fake := newFakeAPI()
	fake.reviews[42] = []api.Review{
		{ID: 1, Content: "Great", Rating: 5},
		{ID: 2, Content: "Too long\nbut fine", Rating: 3},
	}
	v := NewReviewListView(fake, 42, nil)
	m := v.AsTeaModel()

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	m, _ = m.Update(msg)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, []string{"listReviews(42)"}, fake.calls)
	assert.True(t, v.Loaded)
	out := m.View()
	assert.Contains(t, out, "⭐ 5: Great")
	assert.Contains(t, out, "⭐ 3: Too long but fine")
	assert.NotContains(t, out, "No reviews yet.")
}

func TestReviewListView_Empty(t *testing.T) {
	v := NewReviewListView(newFakeAPI(), 1, nil)
	before := v.View()
	assert.Contains(t, before, "Loading reviews…")
	assert.NotContains(t, before, "No reviews yet.")

	v.Update(v.Init()())

	assert.True(t, v.Loaded)
	assert.Contains(t, v.View(), "No reviews yet.")
	assert.NotContains(t, v.View(), "Loading reviews…")
}

func TestReviewListView_IgnoresOtherFetches(t *testing.T) {
	v := NewReviewListView(newFakeAPI(), 1, nil)

	v.Update(state.ReviewsLoadedMsg{BookID: 1, Token: "someone-else", Reviews: []api.Review{{Content: "x", Rating: 1}}})
	assert.False(t, v.Loaded)
	assert.Empty(t, v.Reviews)
}

func TestReviewListView_FailureLeavesListEmpty(t *testing.T) {
	v := NewReviewListView(newFakeAPI(), 1, nil)
	msg := v.Init()().(state.ReviewsLoadedMsg)
	msg.Err = errors.New("boom")
	msg.Reviews = nil

	v.Update(msg)
	assert.True(t, v.Loaded)
	assert.Empty(t, v.Reviews)
}

func TestReviewListView_Quit(t *testing.T) {
	v := NewReviewListView(newFakeAPI(), 1, nil)
	_, cmd := v.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
