// Package ports defines repository interfaces for the asset management domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"amo/internal/core/domain/model/category"
	"amo/internal/core/domain/model/kernel"
)

// CategoryRepository defines the persistence contract for category aggregates.
type CategoryRepository interface {
	// Add persists a new category aggregate to storage.
	Add(ctx context.Context, cat *category.Category) error

	// Get retrieves a category aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*category.Category, error)

	// GetAll retrieves every category, ordered by name.
	GetAll(ctx context.Context) ([]*category.Category, error)
}
