package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseline-tools/cockpit/internal/common"
	"github.com/baseline-tools/cockpit/internal/model"
)

func TestSaveSelectedSubmitsTrimmedForm(t *testing.T) {
	s, client := newTestSession(t, "a", "b")
	s.SetName("  Fizzy Drink 2L ")
	fillForm(t, s)

	require.NoError(t, s.SaveSelected(context.Background()))

	require.Len(t, client.SubmittedItems, 1)
	assert.Equal(t, model.SubmitPayload{
		ID:            "a",
		Name:          "Fizzy Drink 2L",
		CategoryID:    "cat-bev",
		SubcategoryID: "sub-soda",
	}, client.SubmittedItems[0])
}

func TestSaveSelectedValidation(t *testing.T) {
	s, _ := newTestSession(t, "a")

	assert.ErrorIs(t, s.SaveSelected(context.Background()), common.ErrIncompleteForm)

	s.ClearSelection()
	assert.ErrorIs(t, s.SaveSelected(context.Background()), common.ErrNoSelection)
}

func TestDuplicityErrorSurfacesDistinctly(t *testing.T) {
	s, client := newTestSession(t, "a", "b")
	fillForm(t, s)
	client.SubmitItemErr = common.ErrDuplicateName

	err := s.SaveSelected(context.Background())

	require.Error(t, err)
	assert.Equal(t, MsgDuplicateName, common.UserMessage(err))
	assert.NotEqual(t, MsgSubmitFailed, common.UserMessage(err))
	// The item stays exactly where it was.
	assert.Equal(t, []string{"a", "b"}, queueIDs(s))
	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", selected.ID)
	assert.False(t, s.IsSaving())
}

func TestGenericSubmitErrorLeavesStateUntouched(t *testing.T) {
	s, client := newTestSession(t, "a", "b")
	fillForm(t, s)
	client.SubmitItemErr = common.ErrSubmitFailed
	formBefore := s.Form()

	err := s.SaveSelected(context.Background())

	require.Error(t, err)
	assert.Equal(t, MsgSubmitFailed, common.UserMessage(err))
	assert.Equal(t, []string{"a", "b"}, queueIDs(s))
	assert.Equal(t, formBefore, s.Form())
}

// reentrantClient calls back into the session from inside a submission,
// simulating a second save triggered while one is outstanding.
type reentrantClient struct {
	*MockClient
	session *Session
	inner   error
}

func (c *reentrantClient) SubmitItem(ctx context.Context, payload model.SubmitPayload) error {
	c.inner = c.session.SaveSelected(ctx)
	return c.MockClient.SubmitItem(ctx, payload)
}

func TestSaveIsSerializedByBusyFlag(t *testing.T) {
	mock := NewMockClient(testQueue("a", "b"), testCategories(), testSubcategories())
	wrapper := &reentrantClient{MockClient: mock}
	s := New(wrapper)
	wrapper.session = s
	require.NoError(t, s.Load(context.Background()))
	fillForm(t, s)

	require.NoError(t, s.SaveSelected(context.Background()))

	assert.ErrorIs(t, wrapper.inner, common.ErrBusy)
	assert.Len(t, mock.SubmittedItems, 1)
	// The flag is released once the submission finishes.
	assert.False(t, s.IsSaving())
}

func TestCommitAllSubmitsStagedDecisions(t *testing.T) {
	s, client := newTestSession(t, "a", "b")
	fillForm(t, s)
	require.NoError(t, s.Stage(context.Background()))
	s.SetName("Second product")
	s.SetCategory("cat-clean")
	require.NoError(t, s.SetSubcategory("sub-detergent"))
	require.NoError(t, s.Stage(context.Background()))

	count, err := s.CommitAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Empty(t, s.Staging())
	assert.False(t, s.IsCommitting())

	require.Len(t, client.SubmittedBatches, 1)
	items := client.SubmittedBatches[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, model.BatchSubmitItem{
		ID:            "a",
		Name:          "Product a",
		CategoryID:    "cat-bev",
		SubcategoryID: "sub-soda",
	}, items[0])
	assert.Equal(t, model.BatchSubmitItem{
		ID:            "b",
		Name:          "Second product",
		CategoryID:    "cat-clean",
		SubcategoryID: "sub-detergent",
	}, items[1])
}

func TestCommitAllFailureKeepsCartForRetry(t *testing.T) {
	s, client := newTestSession(t, "a")
	fillForm(t, s)
	require.NoError(t, s.Stage(context.Background()))
	client.SubmitBatchErr = common.ErrSubmitFailed

	count, err := s.CommitAll(context.Background())

	require.Error(t, err)
	assert.Equal(t, MsgSubmitFailed, common.UserMessage(err))
	assert.Zero(t, count)
	assert.Len(t, s.Staging(), 1)
	assert.False(t, s.IsCommitting())
}

func TestCommitAllDuplicityKeepsCart(t *testing.T) {
	s, client := newTestSession(t, "a")
	fillForm(t, s)
	require.NoError(t, s.Stage(context.Background()))
	client.SubmitBatchErr = common.ErrDuplicateName

	_, err := s.CommitAll(context.Background())

	require.Error(t, err)
	assert.Equal(t, MsgDuplicateName, common.UserMessage(err))
	assert.Len(t, s.Staging(), 1)
}

func TestCommitAllWithEmptyCart(t *testing.T) {
	s, _ := newTestSession(t, "a")

	count, err := s.CommitAll(context.Background())

	require.Error(t, err)
	assert.Zero(t, count)
	assert.Equal(t, MsgNothingStaged, common.UserMessage(err))
	assert.ErrorIs(t, err, common.ErrNothingStaged)
}
