package session

import (
	"strings"

	"github.com/baseline-tools/cockpit/internal/common"
)

// Form holds the transient edit fields for the active item. The values are
// not written back to the queue item itself until the item is staged or saved.
type Form struct {
	Name          string
	CategoryID    string
	SubcategoryID string
}

// Form returns a snapshot of the editor form.
func (s *Session) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetName updates the working name.
func (s *Session) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Name = name
}

// SetCategory chooses a category and always resets the chosen subcategory:
// a subcategory from a different category must never be submittable.
func (s *Session) SetCategory(categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.CategoryID = categoryID
	s.form.SubcategoryID = ""
}

// SetSubcategory chooses a subcategory. The subcategory must belong to the
// currently chosen category.
func (s *Session) SetSubcategory(subcategoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subcategories {
		if sub.ID != subcategoryID {
			continue
		}
		if sub.CategoryID != s.form.CategoryID {
			return common.ErrSubcategoryMismatch
		}
		s.form.SubcategoryID = subcategoryID
		return nil
	}
	return common.ErrSubcategoryMismatch
}

// ApplySuggestion copies the category and subcategory of a cached suggestion
// into the form atomically, bypassing the clear-subcategory-on-category-change
// rule. The working name is never overwritten.
func (s *Session) ApplySuggestion(suggestionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sug := range s.suggestions {
		if sug.ID == suggestionID {
			s.form.CategoryID = sug.CategoryID
			s.form.SubcategoryID = sug.SubcategoryID
			return nil
		}
	}
	return common.ErrUnknownSuggestion
}

// CanSave reports whether the single-item submit actions (save, stage) are
// permitted: an item is selected, the trimmed name is non-empty, and both
// category and subcategory are chosen.
func (s *Session) CanSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canSaveLocked()
}

func (s *Session) canSaveLocked() bool {
	return s.selectedID != "" &&
		strings.TrimSpace(s.form.Name) != "" &&
		s.form.CategoryID != "" &&
		s.form.SubcategoryID != ""
}

// CanBatchSave reports whether the ad-hoc batch save is permitted: the batch
// selection is non-empty and both category and subcategory are chosen. The
// name is irrelevant in batch mode.
func (s *Session) CanBatchSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canBatchSaveLocked()
}

func (s *Session) canBatchSaveLocked() bool {
	return len(s.batch) > 0 &&
		s.form.CategoryID != "" &&
		s.form.SubcategoryID != ""
}

// seedFormLocked resets the form from the active item: the working name
// defaults to the normalized name, category and subcategory default to the
// system-suggested ids when present.
func (s *Session) seedFormLocked() {
	item, ok := s.selectedLocked()
	if !ok {
		s.form = Form{}
		return
	}
	s.form = Form{
		Name:          item.NormalizedName,
		CategoryID:    item.CategoryID,
		SubcategoryID: item.SubcategoryID,
	}
}
