package session

import (
	"context"
	"strings"

	"github.com/baseline-tools/cockpit/internal/common"
	"github.com/baseline-tools/cockpit/internal/model"
)

// IsSaving reports whether a save (single or ad-hoc batch) is in flight.
func (s *Session) IsSaving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// IsCommitting reports whether a cart commit is in flight.
func (s *Session) IsCommitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committing
}

// SaveSelected submits the active item with the decision held in the edit
// form. Local state is mutated only after the remote call succeeds: the item
// leaves the queue and the selection advances under the index-preserving
// rule. On failure the queue, selection and form are left exactly as they
// were.
func (s *Session) SaveSelected(ctx context.Context) error {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return common.ErrBusy
	}
	if s.selectedID == "" {
		s.mu.Unlock()
		return common.ErrNoSelection
	}
	if !s.canSaveLocked() {
		s.mu.Unlock()
		return common.ErrIncompleteForm
	}
	payload := model.SubmitPayload{
		ID:            s.selectedID,
		Name:          strings.TrimSpace(s.form.Name),
		CategoryID:    s.form.CategoryID,
		SubcategoryID: s.form.SubcategoryID,
	}
	s.saving = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	if err := s.client.SubmitItem(ctx, payload); err != nil {
		return classifySubmitError(err)
	}

	s.mu.Lock()
	nextID := s.removeFromQueueLocked(payload.ID)
	var seq uint64
	if nextID != "" {
		seq = s.setSelectionLocked(nextID)
	} else {
		s.clearSelectionLocked()
	}
	s.mu.Unlock()

	common.LogInfo("item committed", common.Fields{"item_id": payload.ID, "category_id": payload.CategoryID})
	if nextID != "" {
		s.loadSuggestions(ctx, nextID, seq)
	}
	return nil
}

// SaveBatch applies the form's category and subcategory to every item in the
// batch selection in one submission. Names are left unchanged server-side. On
// success all batch items leave the queue and the batch selection empties; if
// the active item was among them, the new first queue item becomes active (or
// the selection clears).
func (s *Session) SaveBatch(ctx context.Context) error {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return common.ErrBusy
	}
	if len(s.batch) == 0 {
		s.mu.Unlock()
		return common.ErrEmptyBatch
	}
	if !s.canBatchSaveLocked() {
		s.mu.Unlock()
		return common.ErrIncompleteForm
	}

	ids := make([]string, len(s.batch))
	copy(ids, s.batch)
	items := make([]model.BatchSubmitItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, model.BatchSubmitItem{
			ID:            id,
			CategoryID:    s.form.CategoryID,
			SubcategoryID: s.form.SubcategoryID,
		})
	}
	selectedWasBatched := s.inBatchLocked(s.selectedID)
	s.saving = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	if err := s.client.SubmitBatch(ctx, model.BatchSubmitPayload{Items: items}); err != nil {
		return classifySubmitError(err)
	}

	s.mu.Lock()
	for _, id := range ids {
		if idx := s.queueIndexLocked(id); idx >= 0 {
			s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
		}
	}
	s.batch = nil

	var nextID string
	var seq uint64
	switch {
	case selectedWasBatched && len(s.queue) > 0:
		nextID = s.queue[0].ID
		seq = s.setSelectionLocked(nextID)
	case selectedWasBatched:
		s.clearSelectionLocked()
	default:
		// Selection survives; returning to single-item mode reseeds the form.
		s.resetFormLocked()
	}
	s.mu.Unlock()

	common.LogInfo("batch committed", common.Fields{"count": len(ids)})
	if nextID != "" {
		s.loadSuggestions(ctx, nextID, seq)
	}
	return nil
}

// CommitAll submits the whole staging cart as one payload and reports the
// committed count. The cart is emptied only on success; on failure it is left
// intact for a retry.
func (s *Session) CommitAll(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.committing {
		s.mu.Unlock()
		return 0, common.ErrBusy
	}
	if len(s.staging) == 0 {
		s.mu.Unlock()
		return 0, common.NewUserError(MsgNothingStaged, common.ErrNothingStaged)
	}

	staged := make([]model.StagingItem, len(s.staging))
	copy(staged, s.staging)
	items := make([]model.BatchSubmitItem, 0, len(staged))
	for _, item := range staged {
		items = append(items, model.BatchSubmitItem{
			ID:            item.ID,
			Name:          item.StagedName,
			CategoryID:    item.StagedCategoryID,
			SubcategoryID: item.StagedSubcategoryID,
		})
	}
	s.committing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.committing = false
		s.mu.Unlock()
	}()

	if err := s.client.SubmitBatch(ctx, model.BatchSubmitPayload{Items: items}); err != nil {
		return 0, classifySubmitError(err)
	}

	s.mu.Lock()
	committed := make(map[string]bool, len(staged))
	for _, item := range staged {
		committed[item.ID] = true
	}
	remaining := s.staging[:0]
	for _, item := range s.staging {
		if !committed[item.ID] {
			remaining = append(remaining, item)
		}
	}
	s.staging = remaining
	s.mu.Unlock()

	common.LogInfo("cart committed", common.Fields{"count": len(staged)})
	return len(staged), nil
}

// classifySubmitError converts a transport error into the user-facing error
// taxonomy: a duplicity rejection gets its own actionable message, everything
// else the generic retry message.
func classifySubmitError(err error) error {
	if common.IsDuplicate(err) {
		return common.NewUserError(MsgDuplicateName, err)
	}
	return common.NewUserError(MsgSubmitFailed, err)
}
