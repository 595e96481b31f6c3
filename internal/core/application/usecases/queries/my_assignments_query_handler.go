package queries

import (
	"context"
	"time"

	"amo/internal/core/domain/model/assignment"
	"amo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MyAssignmentsQueryHandler retrieves a user's current assignments from the
// database, joined with assets and categories for display.
type MyAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewMyAssignmentsQueryHandler creates a handler for my-assignments queries.
func NewMyAssignmentsQueryHandler(db *gorm.DB) MyAssignmentsQueryHandler {
	return MyAssignmentsQueryHandler{db: db}
}

type myAssignmentRow struct {
	ID                 uuid.UUID
	AssetID            uuid.UUID
	AssetCode          string
	AssetName          string
	AssetSpecification string
	CategoryName       string
	AssignedDate       time.Time
	Note               string
	State              int
	ReturnRequestID    *uuid.UUID
}

// Handle executes the my-assignments query, sorted by assigned date with the
// newest first.
func (h MyAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query MyAssignmentsQuery,
) ([]MyAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("assignments").
		Joins("JOIN assets ON assets.id = assignments.asset_id").
		Joins("JOIN categories ON categories.id = assets.category_id").
		Where("assignments.active = ?", true).
		Where("assignments.user_id = ?", query.userID.Bytes()).
		Where("assignments.assigned_date::date <= CURRENT_DATE").
		Order("assignments.assigned_date DESC").
		Select(
			"assignments.id",
			"assignments.asset_id",
			"assets.code AS asset_code",
			"assets.name AS asset_name",
			"assets.specification AS asset_specification",
			"categories.name AS category_name",
			"assignments.assigned_date",
			"assignments.note",
			"assignments.state",
			"assignments.return_request_id",
		)

	var rows []myAssignmentRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]MyAssignmentsQueryResponse, 0, len(rows))
	for _, row := range rows {
		item, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r myAssignmentRow) toResponse() (MyAssignmentsQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return MyAssignmentsQueryResponse{}, err
	}
	assetID, err := kernel.UUIDFromBytes(r.AssetID[:])
	if err != nil {
		return MyAssignmentsQueryResponse{}, err
	}

	var returnRequestID *kernel.UUID
	if r.ReturnRequestID != nil {
		converted, convErr := kernel.UUIDFromBytes(r.ReturnRequestID[:])
		if convErr != nil {
			return MyAssignmentsQueryResponse{}, convErr
		}
		returnRequestID = &converted
	}

	state := assignment.State(r.State)
	return MyAssignmentsQueryResponse{
		ID:                 id,
		AssetID:            assetID,
		AssetCode:          r.AssetCode,
		AssetName:          r.AssetName,
		AssetSpecification: r.AssetSpecification,
		CategoryName:       r.CategoryName,
		AssignedDate:       r.AssignedDate,
		Note:               r.Note,
		State:              state,
		StateName:          state.DisplayName(),
		ReturnRequestID:    returnRequestID,
	}, nil
}
