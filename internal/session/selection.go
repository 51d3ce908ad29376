package session

import (
	"context"

	"github.com/baseline-tools/cockpit/internal/common"
)

// Select makes the given queue item active, seeds the editor form from it and
// starts a fresh suggestion fetch. A late response from a superseded fetch is
// discarded, so suggestions always belong to the current selection.
func (s *Session) Select(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.queueIndexLocked(id) < 0 {
		s.mu.Unlock()
		return common.ErrNotInQueue
	}
	seq := s.setSelectionLocked(id)
	s.mu.Unlock()

	s.loadSuggestions(ctx, id, seq)
	return nil
}

// ClearSelection deactivates the current item and clears the suggestion cache.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearSelectionLocked()
}

// Skip advances the selection to the next queue item, wrapping at the tail.
// It is a no-op without a selection or when the queue has at most one item.
func (s *Session) Skip(ctx context.Context) {
	s.mu.Lock()
	if s.selectedID == "" || len(s.queue) == 0 {
		s.mu.Unlock()
		return
	}
	idx := s.queueIndexLocked(s.selectedID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	next := (idx + 1) % len(s.queue)
	if next == idx {
		s.mu.Unlock()
		return
	}
	id := s.queue[next].ID
	seq := s.setSelectionLocked(id)
	s.mu.Unlock()

	s.loadSuggestions(ctx, id, seq)
}

// setSelectionLocked activates the item with the given id, seeds the form and
// invalidates any in-flight suggestion fetch. It returns the sequence number
// tagging the fetch that belongs to this selection.
func (s *Session) setSelectionLocked(id string) uint64 {
	s.selectedID = id
	s.seedFormLocked()
	s.suggestions = nil
	s.suggestionsLoading = true
	s.suggestionSeq++
	return s.suggestionSeq
}

func (s *Session) clearSelectionLocked() {
	s.selectedID = ""
	s.form = Form{}
	s.suggestions = nil
	s.suggestionsLoading = false
	s.suggestionSeq++
}

// loadSuggestions fetches suggestions for the given item and installs them
// only if the selection has not moved on since the fetch was issued. Fetch
// failures are non-fatal: they are logged and leave the cache empty.
func (s *Session) loadSuggestions(ctx context.Context, itemID string, seq uint64) {
	suggestions, err := s.client.ListSuggestions(ctx, itemID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.suggestionSeq {
		// Superseded by a newer selection.
		return
	}
	s.suggestionsLoading = false
	if err != nil {
		common.LogError(err, "failed to load suggestions", common.Fields{"item_id": itemID})
		s.suggestions = nil
		return
	}
	s.suggestions = suggestions
}
