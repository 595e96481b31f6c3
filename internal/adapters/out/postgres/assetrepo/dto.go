// Package assetrepo provides data transfer objects and mapping functions for
// asset persistence. The unique index on the code column is the database
// backstop for the allocator's per-category serialization: should two
// processes ever allocate the same code, one insert fails instead of two
// assets sharing it.
package assetrepo

import (
	"time"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssetDTO represents the database structure for persisting asset aggregates.
type AssetDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code          string    `gorm:"uniqueIndex"`
	Name          string    `gorm:"index"`
	Specification string
	Location      string    `gorm:"index"`
	CategoryID    uuid.UUID `gorm:"type:uuid;index"`
	State         int
	InstalledDate time.Time
	CreatedDate   time.Time
	UpdatedDate   time.Time
	CreatorID     uuid.UUID `gorm:"type:uuid"`
	Active        bool      `gorm:"index"`
}

// TableName specifies the database table name for asset entities.
func (AssetDTO) TableName() string {
	return "assets"
}

func fromDomain(a *asset.Asset) AssetDTO {
	return AssetDTO{
		ID:            a.ID().Bytes(),
		Code:          a.Code(),
		Name:          a.Name(),
		Specification: a.Specification(),
		Location:      a.Location(),
		CategoryID:    a.CategoryID().Bytes(),
		State:         int(a.State()),
		InstalledDate: a.InstalledDate(),
		CreatedDate:   a.CreatedDate(),
		UpdatedDate:   a.UpdatedDate(),
		CreatorID:     a.CreatorID().Bytes(),
		Active:        a.IsActive(),
	}
}

func toDomain(dto AssetDTO) (*asset.Asset, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	creatorID, err := kernel.UUIDFromBytes(dto.CreatorID[:])
	if err != nil {
		return nil, err
	}

	return asset.RestoreAsset(
		id,
		dto.Code,
		dto.Name,
		dto.Specification,
		dto.Location,
		categoryID,
		asset.State(dto.State),
		dto.InstalledDate,
		dto.CreatedDate,
		dto.UpdatedDate,
		creatorID,
		dto.Active,
	)
}
