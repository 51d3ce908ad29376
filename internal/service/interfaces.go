// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/baseline-tools/cockpit/internal/model"
)

// CockpitClient defines the contract with the remote classification backend.
// Read operations fail with a generic fetch error; write operations may fail
// with a duplicity rejection when a name collides within the same CNPJ scope.
type CockpitClient interface {
	// Read operations
	ListQueue(ctx context.Context) ([]model.QueueItem, error)
	ListSuggestions(ctx context.Context, itemID string) ([]model.Suggestion, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListSubcategories(ctx context.Context, categoryID string) ([]model.Subcategory, error)

	// Write operations
	SubmitItem(ctx context.Context, payload model.SubmitPayload) error
	SubmitBatch(ctx context.Context, payload model.BatchSubmitPayload) error
}
