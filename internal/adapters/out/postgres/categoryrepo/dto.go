// Package categoryrepo provides data transfer objects and mapping functions
// for category persistence.
package categoryrepo

import (
	"amo/internal/core/domain/model/category"
	"amo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"uniqueIndex"`
	Prefix string
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

func fromDomain(c *category.Category) CategoryDTO {
	return CategoryDTO{
		ID:     c.ID().Bytes(),
		Name:   c.Name(),
		Prefix: c.Prefix(),
	}
}

func toDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return category.RestoreCategory(id, dto.Name, dto.Prefix)
}
