package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseline-tools/cockpit/internal/common"
)

func TestStageMovesItemToCart(t *testing.T) {
	s, _ := newTestSession(t, "a", "b")
	s.SetName("  Fizzy Drink 2L  ")
	fillForm(t, s)

	require.NoError(t, s.Stage(context.Background()))

	assert.Equal(t, []string{"b"}, queueIDs(s))
	staging := s.Staging()
	require.Len(t, staging, 1)
	staged := staging[0]
	assert.Equal(t, "a", staged.ID)
	assert.Equal(t, "Fizzy Drink 2L", staged.StagedName)
	assert.Equal(t, "cat-bev", staged.StagedCategoryID)
	assert.Equal(t, "Beverages", staged.StagedCategoryName)
	assert.Equal(t, "sub-soda", staged.StagedSubcategoryID)
	assert.Equal(t, "Sodas", staged.StagedSubcategoryName)

	// Selection advanced into a's former index.
	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", selected.ID)
}

func TestStageValidation(t *testing.T) {
	s, _ := newTestSession(t, "a")

	assert.ErrorIs(t, s.Stage(context.Background()), common.ErrIncompleteForm)

	s.ClearSelection()
	assert.ErrorIs(t, s.Stage(context.Background()), common.ErrNoSelection)
}

func TestStageWithMissingTaxonomyLookupDegradesSilently(t *testing.T) {
	// A taxonomy failure leaves the session without reference data. Staging
	// still works; the display names simply come out empty.
	client := NewMockClient(testQueue("a"), testCategories(), testSubcategories())
	client.CategoriesErr = common.ErrFetchFailed
	s := New(client)
	require.NoError(t, s.Load(context.Background()))

	// White-box: set ids directly, the empty taxonomy offers no options.
	s.mu.Lock()
	s.form.CategoryID = "cat-bev"
	s.form.SubcategoryID = "sub-soda"
	s.mu.Unlock()
	require.NoError(t, s.Stage(context.Background()))

	staging := s.Staging()
	require.Len(t, staging, 1)
	assert.Empty(t, staging[0].StagedCategoryName)
	assert.Empty(t, staging[0].StagedSubcategoryName)
}

func TestStagingRoundTrip(t *testing.T) {
	// Staging then reverting must restore the exact queue item, stripped of
	// staged fields, appended at the end of the queue.
	s, _ := newTestSession(t, "a", "b")
	original := s.Queue()[0]
	fillForm(t, s)
	require.NoError(t, s.Stage(context.Background()))

	restored, err := s.Revert(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, original, restored)
	assert.Empty(t, s.Staging())
	assert.Equal(t, []string{"b", "a"}, queueIDs(s))
	assert.Equal(t, original, s.Queue()[1])
}

func TestRevertSelectsItemWhenNothingSelected(t *testing.T) {
	s, _ := newTestSession(t, "a")
	fillForm(t, s)
	require.NoError(t, s.Stage(context.Background()))
	_, ok := s.Selected()
	require.False(t, ok)

	restored, err := s.Revert(context.Background(), "a")

	require.NoError(t, err)
	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, restored.ID, selected.ID)
	assert.Equal(t, "Product a", s.Form().Name)
}

func TestRevertKeepsExistingSelection(t *testing.T) {
	s, _ := newTestSession(t, "a", "b")
	fillForm(t, s)
	require.NoError(t, s.Stage(context.Background()))

	_, err := s.Revert(context.Background(), "a")

	require.NoError(t, err)
	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", selected.ID)
}

func TestRevertUnknownItem(t *testing.T) {
	s, _ := newTestSession(t, "a")

	_, err := s.Revert(context.Background(), "ghost")

	assert.ErrorIs(t, err, common.ErrNotInStaging)
}
