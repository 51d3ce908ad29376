// Package model defines the core domain models used throughout the application.
package model

import "time"

// QueueItem represents a machine-classified product awaiting operator review.
type QueueItem struct {
	CreatedAt      time.Time `json:"created_at"`
	ID             string    `json:"id"`
	OriginalName   string    `json:"original_name"`
	NormalizedName string    `json:"normalized_name"`
	Reasoning      string    `json:"reasoning"`
	CNPJ           string    `json:"cnpj"`
	CategoryID     string    `json:"category_id,omitempty"`
	SubcategoryID  string    `json:"subcategory_id,omitempty"`
	Confidence     float64   `json:"confidence"`
}

// StagingItem is a queue item plus the operator's pending classification
// decision, held locally until the cart is committed.
type StagingItem struct {
	QueueItem

	StagedName            string `json:"staged_name"`
	StagedCategoryID      string `json:"staged_category_id"`
	StagedCategoryName    string `json:"staged_category_name"`
	StagedSubcategoryID   string `json:"staged_subcategory_id"`
	StagedSubcategoryName string `json:"staged_subcategory_name"`
}

// Unstage strips the staged decision, yielding the original queue item.
func (s StagingItem) Unstage() QueueItem {
	return s.QueueItem
}
