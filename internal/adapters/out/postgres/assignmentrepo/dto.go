package assignmentrepo

import (
	"time"

	"amo/internal/core/domain/model/assignment"
	"amo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO is the database model for an assignment. Closed assignments
// stay in the table with active=false for history queries.
type AssignmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssetID         uuid.UUID `gorm:"type:uuid;index"`
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	CreatorID       uuid.UUID `gorm:"type:uuid"`
	AssignedDate    time.Time
	Note            string
	State           int
	ReturnRequestID *uuid.UUID `gorm:"type:uuid;index"`
	Active          bool       `gorm:"index"`
	CreatedDate     time.Time
	UpdatedDate     time.Time
}

// TableName returns the database table name for the AssignmentDTO.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment aggregate to an AssignmentDTO.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	dto := AssignmentDTO{
		ID:           aggregate.ID().Bytes(),
		AssetID:      aggregate.AssetID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		CreatorID:    aggregate.CreatorID().Bytes(),
		AssignedDate: aggregate.AssignedDate(),
		Note:         aggregate.Note(),
		State:        int(aggregate.State()),
		Active:       aggregate.IsActive(),
		CreatedDate:  aggregate.CreatedDate(),
		UpdatedDate:  aggregate.UpdatedDate(),
	}

	if requestID := aggregate.ReturnRequestID(); requestID != nil {
		id := requestID.Bytes()
		dto.ReturnRequestID = &id
	}

	return dto
}

// toDomain converts an AssignmentDTO to an assignment aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assetID, err := kernel.UUIDFromBytes(dto.AssetID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	creatorID, err := kernel.UUIDFromBytes(dto.CreatorID[:])
	if err != nil {
		return nil, err
	}

	var returnRequestID *kernel.UUID
	if dto.ReturnRequestID != nil {
		requestID, err := kernel.UUIDFromBytes(dto.ReturnRequestID[:])
		if err != nil {
			return nil, err
		}
		returnRequestID = &requestID
	}

	return assignment.RestoreAssignment(
		id,
		assetID,
		userID,
		creatorID,
		dto.AssignedDate,
		dto.Note,
		assignment.State(dto.State),
		returnRequestID,
		dto.CreatedDate,
		dto.UpdatedDate,
		dto.Active,
	)
}
