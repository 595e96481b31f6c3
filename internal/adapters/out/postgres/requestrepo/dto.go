package requestrepo

import (
	"time"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// ReturnRequestDTO is the database model for a return request. UserAcceptID
// and ReturnDate stay NULL until an admin completes the request.
type ReturnRequestDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AssignmentID  uuid.UUID  `gorm:"type:uuid;index"`
	UserRequestID uuid.UUID  `gorm:"type:uuid;index"`
	UserAcceptID  *uuid.UUID `gorm:"type:uuid"`
	ReturnDate    *time.Time
	State         int
}

// TableName returns the database table name for the ReturnRequestDTO.
func (ReturnRequestDTO) TableName() string {
	return "return_requests"
}

// fromDomain converts a return request aggregate to a ReturnRequestDTO.
func fromDomain(aggregate *request.ReturnRequest) ReturnRequestDTO {
	dto := ReturnRequestDTO{
		ID:            aggregate.ID().Bytes(),
		AssignmentID:  aggregate.AssignmentID().Bytes(),
		UserRequestID: aggregate.UserRequestID().Bytes(),
		ReturnDate:    aggregate.ReturnDate(),
		State:         int(aggregate.State()),
	}

	if acceptID := aggregate.UserAcceptID(); acceptID != nil {
		id := acceptID.Bytes()
		dto.UserAcceptID = &id
	}

	return dto
}

// toDomain converts a ReturnRequestDTO to a return request aggregate.
func toDomain(dto ReturnRequestDTO) (*request.ReturnRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignmentID, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return nil, err
	}

	userRequestID, err := kernel.UUIDFromBytes(dto.UserRequestID[:])
	if err != nil {
		return nil, err
	}

	var userAcceptID *kernel.UUID
	if dto.UserAcceptID != nil {
		acceptID, err := kernel.UUIDFromBytes(dto.UserAcceptID[:])
		if err != nil {
			return nil, err
		}
		userAcceptID = &acceptID
	}

	return request.RestoreReturnRequest(
		id,
		assignmentID,
		userRequestID,
		userAcceptID,
		dto.ReturnDate,
		request.State(dto.State),
	)
}
