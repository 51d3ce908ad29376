// Package session implements the cockpit review session: the in-memory state
// machine that tracks the pending queue, the active selection, an optional
// batch selection, the staging cart, and the suggestion cache, and coordinates
// submissions against the remote backend.
//
// All state lives in a single Session owned by the root composition. Network
// calls are never made while the internal lock is held, and local state is
// only mutated after a remote call has succeeded.
package session

import (
	"context"
	"sync"

	"github.com/baseline-tools/cockpit/internal/common"
	"github.com/baseline-tools/cockpit/internal/model"
	"github.com/baseline-tools/cockpit/internal/service"
)

// User-facing messages returned from action boundaries.
const (
	MsgQueueLoadFailed = "Could not load the queue. Try again."
	MsgDuplicateName   = "This name already exists for this client."
	MsgSubmitFailed    = "Submission failed. Try again."
	MsgNothingStaged   = "There are no items in the cart."
)

// Session holds all review state for one operator sitting.
type Session struct {
	client service.CockpitClient

	mu                 sync.Mutex
	queue              []model.QueueItem
	staging            []model.StagingItem
	categories         []model.Category
	subcategories      []model.Subcategory
	suggestions        []model.Suggestion
	batch              []string
	selectedID         string
	form               Form
	suggestionSeq      uint64
	suggestionsLoading bool
	saving             bool
	committing         bool
}

// New creates a session backed by the given client. Call Load before use.
func New(client service.CockpitClient) *Session {
	return &Session{client: client}
}

// Load fetches the queue and the taxonomy concurrently and replaces the
// session state wholesale on success. A queue fetch failure is returned as a
// retryable user error and leaves existing state untouched; a taxonomy fetch
// failure degrades to an empty taxonomy and is only logged.
//
// On a successful non-empty load the first item is auto-selected and its
// suggestions are fetched as part of the same pass.
func (s *Session) Load(ctx context.Context) error {
	var (
		wg            sync.WaitGroup
		queue         []model.QueueItem
		categories    []model.Category
		subcategories []model.Subcategory
		queueErr      error
		taxonomyErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		queue, queueErr = s.client.ListQueue(ctx)
	}()
	go func() {
		defer wg.Done()
		categories, taxonomyErr = s.client.ListCategories(ctx)
		if taxonomyErr != nil {
			return
		}
		subcategories, taxonomyErr = s.client.ListSubcategories(ctx, "")
	}()
	wg.Wait()

	if taxonomyErr != nil {
		common.LogError(taxonomyErr, "failed to load taxonomy", nil)
	}
	if queueErr != nil {
		return common.NewUserError(MsgQueueLoadFailed, queueErr)
	}

	s.mu.Lock()
	s.categories = categories
	s.subcategories = subcategories
	s.queue = queue
	s.batch = nil
	if len(queue) == 0 {
		s.clearSelectionLocked()
		s.mu.Unlock()
		return nil
	}
	seq := s.setSelectionLocked(queue[0].ID)
	s.mu.Unlock()

	common.LogInfo("queue loaded", common.Fields{"pending": len(queue)})
	s.loadSuggestions(ctx, queue[0].ID, seq)
	return nil
}

// Queue returns a snapshot of the pending queue in order.
func (s *Session) Queue() []model.QueueItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.QueueItem, len(s.queue))
	copy(out, s.queue)
	return out
}

// Staging returns a snapshot of the staging cart in staging order.
func (s *Session) Staging() []model.StagingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.StagingItem, len(s.staging))
	copy(out, s.staging)
	return out
}

// Categories returns the category reference data.
func (s *Session) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Subcategories returns all subcategories.
func (s *Session) Subcategories() []model.Subcategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Subcategory, len(s.subcategories))
	copy(out, s.subcategories)
	return out
}

// SubcategoriesFor returns the subcategories owned by the given category.
// This is the only set the editor may offer once a category is chosen.
func (s *Session) SubcategoriesFor(categoryID string) []model.Subcategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Subcategory
	for _, sub := range s.subcategories {
		if sub.CategoryID == categoryID {
			out = append(out, sub)
		}
	}
	return out
}

// Suggestions returns the suggestion cache for the current selection.
func (s *Session) Suggestions() []model.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Suggestion, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// SuggestionsLoading reports whether a suggestion fetch is outstanding for the
// current selection.
func (s *Session) SuggestionsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestionsLoading
}

// Selected returns the active queue item, if any.
func (s *Session) Selected() (model.QueueItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

func (s *Session) selectedLocked() (model.QueueItem, bool) {
	if s.selectedID == "" {
		return model.QueueItem{}, false
	}
	idx := s.queueIndexLocked(s.selectedID)
	if idx < 0 {
		return model.QueueItem{}, false
	}
	return s.queue[idx], true
}

func (s *Session) queueIndexLocked(id string) int {
	for i, item := range s.queue {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) categoryNameLocked(id string) string {
	for _, cat := range s.categories {
		if cat.ID == id {
			return cat.Name
		}
	}
	return ""
}

func (s *Session) subcategoryNameLocked(id string) string {
	for _, sub := range s.subcategories {
		if sub.ID == id {
			return sub.Name
		}
	}
	return ""
}

// removeFromQueueLocked removes the item with the given id from the queue,
// prunes it from the batch selection, and returns the id that should become
// active under the index-preserving advance rule: the item now occupying the
// removed item's former index, else the new first item, else none.
func (s *Session) removeFromQueueLocked(id string) (nextID string) {
	idx := s.queueIndexLocked(id)
	if idx < 0 {
		return s.selectedID
	}

	s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
	s.pruneBatchLocked(id)

	switch {
	case idx < len(s.queue):
		return s.queue[idx].ID
	case len(s.queue) > 0:
		return s.queue[0].ID
	default:
		return ""
	}
}
