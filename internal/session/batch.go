package session

import (
	"github.com/baseline-tools/cockpit/internal/common"
)

// BatchIDs returns the batch selection in deterministic (insertion) order.
func (s *Session) BatchIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.batch))
	copy(out, s.batch)
	return out
}

// BatchMode reports whether a batch selection is active. While it is, batch
// classification takes precedence over single-item editing.
func (s *Session) BatchMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.batch) > 0
}

// InBatch reports whether the given item is part of the batch selection.
func (s *Session) InBatch(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inBatchLocked(id)
}

// ToggleBatch adds the item to the batch selection, or removes it if already
// present. Only items currently in the queue can be selected. Entering or
// leaving batch mode resets the edit form.
func (s *Session) ToggleBatch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queueIndexLocked(id) < 0 {
		return common.ErrNotInQueue
	}

	wasBatch := len(s.batch) > 0
	if s.inBatchLocked(id) {
		s.dropFromBatchLocked(id)
	} else {
		s.batch = append(s.batch, id)
	}
	if wasBatch != (len(s.batch) > 0) {
		s.resetFormLocked()
	}
	return nil
}

// SelectAllBatch sets the batch selection to exactly the current queue.
func (s *Session) SelectAllBatch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasBatch := len(s.batch) > 0
	s.batch = make([]string, 0, len(s.queue))
	for _, item := range s.queue {
		s.batch = append(s.batch, item.ID)
	}
	if wasBatch != (len(s.batch) > 0) {
		s.resetFormLocked()
	}
}

// ClearBatch empties the batch selection and returns to single-item mode.
func (s *Session) ClearBatch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.batch) == 0 {
		return
	}
	s.batch = nil
	s.resetFormLocked()
}

func (s *Session) inBatchLocked(id string) bool {
	for _, batchID := range s.batch {
		if batchID == id {
			return true
		}
	}
	return false
}

func (s *Session) dropFromBatchLocked(id string) {
	for i, batchID := range s.batch {
		if batchID == id {
			s.batch = append(s.batch[:i], s.batch[i+1:]...)
			return
		}
	}
}

// pruneBatchLocked keeps the batch selection consistent with the queue:
// whenever an item leaves the queue it leaves the batch as well.
func (s *Session) pruneBatchLocked(id string) {
	wasBatch := len(s.batch) > 0
	s.dropFromBatchLocked(id)
	if wasBatch && len(s.batch) == 0 {
		s.resetFormLocked()
	}
}

// resetFormLocked reinitializes the edit form for the current mode: cleared
// in batch mode, reseeded from the active item in single-item mode.
func (s *Session) resetFormLocked() {
	if len(s.batch) > 0 {
		s.form = Form{}
		return
	}
	s.seedFormLocked()
}
