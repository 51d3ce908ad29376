package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baseline-tools/cockpit/internal/common"
)

func TestSubcategoryOptionsAreFilteredByCategory(t *testing.T) {
	s, _ := newTestSession(t, "a")

	for _, sub := range s.SubcategoriesFor("cat-bev") {
		assert.Equal(t, "cat-bev", sub.CategoryID)
	}
	assert.Len(t, s.SubcategoriesFor("cat-bev"), 2)
	assert.Len(t, s.SubcategoriesFor("cat-clean"), 1)
	assert.Empty(t, s.SubcategoriesFor("cat-ghost"))
}

func TestChangingCategoryResetsSubcategory(t *testing.T) {
	s, _ := newTestSession(t, "a")
	s.SetCategory("cat-bev")
	require.NoError(t, s.SetSubcategory("sub-soda"))

	s.SetCategory("cat-clean")

	form := s.Form()
	assert.Equal(t, "cat-clean", form.CategoryID)
	assert.Empty(t, form.SubcategoryID)
}

func TestSubcategoryFromAnotherCategoryIsRejected(t *testing.T) {
	s, _ := newTestSession(t, "a")
	s.SetCategory("cat-clean")

	err := s.SetSubcategory("sub-soda")

	assert.ErrorIs(t, err, common.ErrSubcategoryMismatch)
	assert.Empty(t, s.Form().SubcategoryID)
}

func TestSaveGating(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, s *Session)
		want    bool
	}{
		{
			name: "all fields set",
			prepare: func(t *testing.T, s *Session) {
				t.Helper()
				fillForm(t, s)
			},
			want: true,
		},
		{
			name: "empty name",
			prepare: func(t *testing.T, s *Session) {
				t.Helper()
				fillForm(t, s)
				s.SetName("")
			},
			want: false,
		},
		{
			name: "whitespace-only name",
			prepare: func(t *testing.T, s *Session) {
				t.Helper()
				fillForm(t, s)
				s.SetName("   ")
			},
			want: false,
		},
		{
			name:    "category unset",
			prepare: func(_ *testing.T, _ *Session) {},
			want:    false,
		},
		{
			name: "subcategory unset",
			prepare: func(_ *testing.T, s *Session) {
				s.SetCategory("cat-bev")
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, "a")
			tt.prepare(t, s)
			assert.Equal(t, tt.want, s.CanSave())
		})
	}
}

func TestSaveGatingRequiresSelection(t *testing.T) {
	s, _ := newTestSession(t, "a")
	fillForm(t, s)
	s.ClearSelection()
	s.SetName("Something")
	s.SetCategory("cat-bev")
	require.NoError(t, s.SetSubcategory("sub-soda"))

	assert.False(t, s.CanSave())
}

func TestBatchGatingIgnoresName(t *testing.T) {
	s, _ := newTestSession(t, "a", "b")
	require.NoError(t, s.ToggleBatch("a"))
	s.SetCategory("cat-bev")
	require.NoError(t, s.SetSubcategory("sub-soda"))
	s.SetName("")

	assert.True(t, s.CanBatchSave())

	s.SetCategory("")
	assert.False(t, s.CanBatchSave())
}

func TestApplySuggestion(t *testing.T) {
	s, client := newTestSession(t, "a")
	client.Suggestions["a"] = testSuggestions()
	require.NoError(t, s.Select(context.Background(), "a"))
	s.SetName("Operator name")

	require.NoError(t, s.ApplySuggestion("sug-2"))

	form := s.Form()
	// Category and subcategory land atomically; the name is untouched.
	assert.Equal(t, "cat-clean", form.CategoryID)
	assert.Equal(t, "sub-detergent", form.SubcategoryID)
	assert.Equal(t, "Operator name", form.Name)
}

func TestApplyUnknownSuggestion(t *testing.T) {
	s, _ := newTestSession(t, "a")

	err := s.ApplySuggestion("sug-ghost")

	assert.ErrorIs(t, err, common.ErrUnknownSuggestion)
}
