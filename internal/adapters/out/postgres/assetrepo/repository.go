package assetrepo

import (
	"context"
	"errors"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssetRepository implements AssetRepository using GORM.
type GormAssetRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssetRepository creates a new GORM asset repository.
func NewGormAssetRepository(db *gorm.DB, tracker aggregateTracker) *GormAssetRepository {
	return &GormAssetRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new asset to the database. A duplicate code surfaces as a
// conflict error.
func (r *GormAssetRepository) Add(ctx context.Context, aggregate *asset.Asset) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("asset code "+aggregate.Code(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing asset to the database.
func (r *GormAssetRepository) Update(ctx context.Context, aggregate *asset.Asset) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssetDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an asset by ID.
func (r *GormAssetRepository) Get(ctx context.Context, id kernel.UUID) (*asset.Asset, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssetDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("asset", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the asset by ID.
func (r *GormAssetRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AssetDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("asset", id.String())
	}
	return nil
}

// MaxCodeInCategory returns the lexicographically-maximal asset code in the
// category, or the empty string for a category without assets.
func (r *GormAssetRepository) MaxCodeInCategory(ctx context.Context, categoryID kernel.UUID) (string, error) {
	if err := categoryID.Validate(); err != nil {
		return "", err
	}

	var maxCode string
	err := r.db.WithContext(ctx).
		Model(&AssetDTO{}).
		Where("category_id = ?", categoryID.Bytes()).
		Select("COALESCE(MAX(code), '')").
		Scan(&maxCode).Error
	if err != nil {
		return "", err
	}

	return maxCode, nil
}
