package ports

import (
	"context"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"
)

// AssetRepository defines the persistence contract for asset aggregates.
type AssetRepository interface {
	// Add persists a new asset aggregate to storage.
	// Fails with a conflict error when the asset code is already taken.
	Add(ctx context.Context, aggregate *asset.Asset) error

	// Update persists changes to an existing asset aggregate.
	Update(ctx context.Context, aggregate *asset.Asset) error

	// Get retrieves an asset aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*asset.Asset, error)

	// Delete removes the asset by id. The caller must guarantee no active
	// assignment references it; no cascade or guard is performed here.
	Delete(ctx context.Context, id kernel.UUID) error

	// MaxCodeInCategory returns the lexicographically-maximal asset code in
	// the given category, or the empty string when the category has no assets.
	MaxCodeInCategory(ctx context.Context, categoryID kernel.UUID) (string, error)
}
