package ports

import (
	"context"

	"amo/internal/core/domain/model/assignment"
	"amo/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment aggregates.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// Delete removes the assignment by id. The caller must separately restore
	// the referenced asset to Available.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetByReturnRequest retrieves the assignment linked to the given live
	// return request.
	GetByReturnRequest(ctx context.Context, requestID kernel.UUID) (*assignment.Assignment, error)

	// ExistsForAsset reports whether any assignment, live or closed,
	// references the given asset. Used as the asset delete guard.
	ExistsForAsset(ctx context.Context, assetID kernel.UUID) (bool, error)

	// HasActiveForAsset reports whether a live assignment references the
	// given asset. An asset has at most one live assignment at a time.
	HasActiveForAsset(ctx context.Context, assetID kernel.UUID) (bool, error)
}
