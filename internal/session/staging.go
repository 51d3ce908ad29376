package session

import (
	"context"
	"strings"

	"github.com/baseline-tools/cockpit/internal/common"
	"github.com/baseline-tools/cockpit/internal/model"
)

// Stage moves the active item into the staging cart with the decision held in
// the edit form. The item leaves the queue atomically and the selection
// advances under the index-preserving rule. Category and subcategory names
// are resolved from the taxonomy; a missing lookup degrades to an empty name
// rather than failing.
func (s *Session) Stage(ctx context.Context) error {
	s.mu.Lock()
	item, ok := s.selectedLocked()
	if !ok {
		s.mu.Unlock()
		return common.ErrNoSelection
	}
	if !s.canSaveLocked() {
		s.mu.Unlock()
		return common.ErrIncompleteForm
	}

	staged := model.StagingItem{
		QueueItem:             item,
		StagedName:            strings.TrimSpace(s.form.Name),
		StagedCategoryID:      s.form.CategoryID,
		StagedCategoryName:    s.categoryNameLocked(s.form.CategoryID),
		StagedSubcategoryID:   s.form.SubcategoryID,
		StagedSubcategoryName: s.subcategoryNameLocked(s.form.SubcategoryID),
	}
	s.staging = append(s.staging, staged)

	nextID := s.removeFromQueueLocked(item.ID)
	var seq uint64
	if nextID != "" {
		seq = s.setSelectionLocked(nextID)
	} else {
		s.clearSelectionLocked()
	}
	s.mu.Unlock()

	if nextID != "" {
		s.loadSuggestions(ctx, nextID, seq)
	}
	return nil
}

// Revert moves a staged item back to the pending queue, stripped of its
// staged decision. The item is appended at the end of the queue; its original
// position is not remembered. If nothing is selected, the reverted item
// becomes the new selection. The restored item is returned so callers can
// name it when notifying the operator.
func (s *Session) Revert(ctx context.Context, id string) (model.QueueItem, error) {
	s.mu.Lock()
	idx := -1
	for i, staged := range s.staging {
		if staged.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return model.QueueItem{}, common.ErrNotInStaging
	}

	item := s.staging[idx].Unstage()
	s.staging = append(s.staging[:idx], s.staging[idx+1:]...)
	s.queue = append(s.queue, item)

	var seq uint64
	takeSelection := s.selectedID == ""
	if takeSelection {
		seq = s.setSelectionLocked(item.ID)
	}
	s.mu.Unlock()

	if takeSelection {
		s.loadSuggestions(ctx, item.ID, seq)
	}
	return item, nil
}
