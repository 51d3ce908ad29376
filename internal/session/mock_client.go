package session

import (
	"context"
	"sync"

	"github.com/baseline-tools/cockpit/internal/model"
)

// MockClient is a test implementation of the service.CockpitClient interface.
// It serves canned data, records every write, and supports injected failures
// and a fetch hook for exercising ordering hazards.
type MockClient struct {
	Suggestions map[string][]model.Suggestion

	QueueErr       error
	CategoriesErr  error
	SuggestionsErr error
	SubmitItemErr  error
	SubmitBatchErr error

	// SuggestionHook, when set, runs before a suggestion fetch returns. Tests
	// use it to hold a fetch in flight while the selection moves on.
	SuggestionHook func(itemID string)

	QueueData         []model.QueueItem
	CategoryData      []model.Category
	SubcategoryData   []model.Subcategory
	SubmittedItems    []model.SubmitPayload
	SubmittedBatches  []model.BatchSubmitPayload
	SuggestionQueries []string

	mu sync.Mutex
}

// NewMockClient creates a mock backed by the given queue and taxonomy.
func NewMockClient(queue []model.QueueItem, categories []model.Category, subcategories []model.Subcategory) *MockClient {
	return &MockClient{
		QueueData:       queue,
		CategoryData:    categories,
		SubcategoryData: subcategories,
		Suggestions:     make(map[string][]model.Suggestion),
	}
}

// ListQueue returns the canned queue.
func (m *MockClient) ListQueue(_ context.Context) ([]model.QueueItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueueErr != nil {
		return nil, m.QueueErr
	}
	out := make([]model.QueueItem, len(m.QueueData))
	copy(out, m.QueueData)
	return out, nil
}

// ListSuggestions returns the canned suggestions for an item.
func (m *MockClient) ListSuggestions(_ context.Context, itemID string) ([]model.Suggestion, error) {
	m.mu.Lock()
	m.SuggestionQueries = append(m.SuggestionQueries, itemID)
	hook := m.SuggestionHook
	err := m.SuggestionsErr
	suggestions := m.Suggestions[itemID]
	m.mu.Unlock()

	if hook != nil {
		hook(itemID)
	}
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

// ListCategories returns the canned categories.
func (m *MockClient) ListCategories(_ context.Context) ([]model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CategoriesErr != nil {
		return nil, m.CategoriesErr
	}
	return m.CategoryData, nil
}

// ListSubcategories returns the canned subcategories, filtered if asked.
func (m *MockClient) ListSubcategories(_ context.Context, categoryID string) ([]model.Subcategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CategoriesErr != nil {
		return nil, m.CategoriesErr
	}
	if categoryID == "" {
		return m.SubcategoryData, nil
	}
	var out []model.Subcategory
	for _, sub := range m.SubcategoryData {
		if sub.CategoryID == categoryID {
			out = append(out, sub)
		}
	}
	return out, nil
}

// SubmitItem records a single submission.
func (m *MockClient) SubmitItem(_ context.Context, payload model.SubmitPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SubmitItemErr != nil {
		return m.SubmitItemErr
	}
	m.SubmittedItems = append(m.SubmittedItems, payload)
	return nil
}

// SubmitBatch records a batch submission.
func (m *MockClient) SubmitBatch(_ context.Context, payload model.BatchSubmitPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SubmitBatchErr != nil {
		return m.SubmitBatchErr
	}
	m.SubmittedBatches = append(m.SubmittedBatches, payload)
	return nil
}
