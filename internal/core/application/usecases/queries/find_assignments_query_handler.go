package queries

import (
	"context"
	"time"

	"amo/internal/core/domain/model/assignment"
	"amo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// FindAssignmentsQueryHandler runs the assignment list query against the
// database, joining each assignment with its asset.
type FindAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewFindAssignmentsQueryHandler creates a handler for assignment list queries.
func NewFindAssignmentsQueryHandler(db *gorm.DB) FindAssignmentsQueryHandler {
	return FindAssignmentsQueryHandler{db: db}
}

type assignmentRow struct {
	ID              uuid.UUID
	AssetID         uuid.UUID
	AssetCode       string
	AssetName       string
	UserID          uuid.UUID
	CreatorID       uuid.UUID
	AssignedDate    time.Time
	Note            string
	State           int
	ReturnRequestID *uuid.UUID
}

// Handle executes the assignment list query.
func (h FindAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query FindAssignmentsQuery,
) (PagedResponse[FindAssignmentsQueryResponse], error) {
	var empty PagedResponse[FindAssignmentsQueryResponse]
	if err := query.Validate(); err != nil {
		return empty, err
	}

	var totalItems int64
	if err := h.filtered(ctx, query).Count(&totalItems).Error; err != nil {
		return empty, err
	}

	tx := assignmentOrderColumns.apply(h.filtered(ctx, query), query.orderProperty, query.desc)
	tx = tx.Select(
		"assignments.id",
		"assignments.asset_id",
		"assets.code AS asset_code",
		"assets.name AS asset_name",
		"assignments.user_id",
		"assignments.creator_id",
		"assignments.assigned_date",
		"assignments.note",
		"assignments.state",
		"assignments.return_request_id",
	).
		Offset((query.page - 1) * query.limit).
		Limit(query.limit)

	var rows []assignmentRow
	if err := tx.Scan(&rows).Error; err != nil {
		return empty, err
	}

	items := make([]FindAssignmentsQueryResponse, 0, len(rows))
	for _, row := range rows {
		item, err := row.toResponse()
		if err != nil {
			return empty, err
		}
		items = append(items, item)
	}

	return newPagedResponse(items, query.page, query.limit, int(totalItems)), nil
}

func (h FindAssignmentsQueryHandler) filtered(ctx context.Context, query FindAssignmentsQuery) *gorm.DB {
	tx := h.db.WithContext(ctx).
		Table("assignments").
		Joins("JOIN assets ON assets.id = assignments.asset_id").
		Where("assignments.active = ?", true)

	// keySearch matches the asset columns OR the resolved user set; with an
	// empty keySearch the user set is ignored entirely.
	if query.keySearch != "" {
		pattern := "%" + query.keySearch + "%"
		if len(query.userFilter) > 0 {
			tx = tx.Where(
				"(assets.name ILIKE ? OR assets.code ILIKE ? OR assignments.user_id = ANY(?::uuid[]))",
				pattern, pattern, pq.Array(uuidStrings(query.userFilter)),
			)
		} else {
			tx = tx.Where("(assets.name ILIKE ? OR assets.code ILIKE ?)", pattern, pattern)
		}
	}

	if len(query.states) > 0 {
		tx = tx.Where("assignments.state IN ?", assignmentStateInts(query.states))
	}

	if query.assignedDate != nil {
		tx = tx.Where("assignments.assigned_date::date = ?::date", *query.assignedDate)
	}

	return tx
}

func assignmentStateInts(states []assignment.State) []int {
	ints := make([]int, 0, len(states))
	for _, s := range states {
		ints = append(ints, int(s))
	}
	return ints
}

func uuidStrings(ids []kernel.UUID) []string {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}
	return values
}

func (r assignmentRow) toResponse() (FindAssignmentsQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return FindAssignmentsQueryResponse{}, err
	}
	assetID, err := kernel.UUIDFromBytes(r.AssetID[:])
	if err != nil {
		return FindAssignmentsQueryResponse{}, err
	}
	userID, err := kernel.UUIDFromBytes(r.UserID[:])
	if err != nil {
		return FindAssignmentsQueryResponse{}, err
	}
	creatorID, err := kernel.UUIDFromBytes(r.CreatorID[:])
	if err != nil {
		return FindAssignmentsQueryResponse{}, err
	}

	var returnRequestID *kernel.UUID
	if r.ReturnRequestID != nil {
		converted, convErr := kernel.UUIDFromBytes(r.ReturnRequestID[:])
		if convErr != nil {
			return FindAssignmentsQueryResponse{}, convErr
		}
		returnRequestID = &converted
	}

	state := assignment.State(r.State)
	return FindAssignmentsQueryResponse{
		ID:              id,
		AssetID:         assetID,
		AssetCode:       r.AssetCode,
		AssetName:       r.AssetName,
		UserID:          userID,
		CreatorID:       creatorID,
		AssignedDate:    r.AssignedDate,
		Note:            r.Note,
		State:           state,
		StateName:       state.DisplayName(),
		ReturnRequestID: returnRequestID,
	}, nil
}
