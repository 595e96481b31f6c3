package ports

import (
	"context"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/core/domain/model/request"
)

// ReturnRequestRepository defines the persistence contract for return request aggregates.
type ReturnRequestRepository interface {
	// Add persists a new return request aggregate to storage.
	Add(ctx context.Context, aggregate *request.ReturnRequest) error

	// Update persists changes to an existing return request aggregate.
	Update(ctx context.Context, aggregate *request.ReturnRequest) error

	// Get retrieves a return request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.ReturnRequest, error)

	// Delete removes the return request by id. The caller must first unlink
	// it from its assignment.
	Delete(ctx context.Context, id kernel.UUID) error
}
