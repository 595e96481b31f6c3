package requestrepo

import (
	"context"
	"errors"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/core/domain/model/request"
	"amo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReturnRequestRepository implements ReturnRequestRepository using GORM.
type GormReturnRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReturnRequestRepository creates a new GORM return request repository.
func NewGormReturnRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormReturnRequestRepository {
	return &GormReturnRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new return request to the database.
func (r *GormReturnRequestRepository) Add(ctx context.Context, aggregate *request.ReturnRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing return request to the database.
func (r *GormReturnRequestRepository) Update(ctx context.Context, aggregate *request.ReturnRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ReturnRequestDTO{}).
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

// Get retrieves a return request by ID.
func (r *GormReturnRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.ReturnRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("return request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the return request by ID.
func (r *GormReturnRequestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ReturnRequestDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("return request", id.String())
	}
	return nil
}
