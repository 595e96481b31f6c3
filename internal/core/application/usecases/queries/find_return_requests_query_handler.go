package queries

import (
	"context"
	"time"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/core/domain/model/request"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// FindReturnRequestsQueryHandler runs the return request list query against
// the database, joining through assignments to assets.
//
// When the table holds no return requests at all the page comes back with
// nil Items and TotalPages=1, which existing clients depend on; an empty
// filtered page within a non-empty table still materializes an empty slice.
type FindReturnRequestsQueryHandler struct {
	db *gorm.DB
}

// NewFindReturnRequestsQueryHandler creates a handler for return request list queries.
func NewFindReturnRequestsQueryHandler(db *gorm.DB) FindReturnRequestsQueryHandler {
	return FindReturnRequestsQueryHandler{db: db}
}

type returnRequestRow struct {
	ID            uuid.UUID
	AssetCode     string
	AssetName     string
	AssignedDate  time.Time
	ReturnDate    *time.Time
	UserRequestID uuid.UUID
	UserAcceptID  *uuid.UUID
	State         int
}

// Handle executes the return request list query.
func (h FindReturnRequestsQueryHandler) Handle(
	ctx context.Context,
	query FindReturnRequestsQuery,
) (PagedResponse[FindReturnRequestsQueryResponse], error) {
	var empty PagedResponse[FindReturnRequestsQueryResponse]
	if err := query.Validate(); err != nil {
		return empty, err
	}

	var tableCount int64
	if err := h.db.WithContext(ctx).Table("return_requests").Count(&tableCount).Error; err != nil {
		return empty, err
	}
	if tableCount == 0 {
		return PagedResponse[FindReturnRequestsQueryResponse]{
			Items:       nil,
			CurrentPage: 1,
			TotalPages:  1,
			TotalItems:  0,
		}, nil
	}

	var totalItems int64
	if err := h.filtered(ctx, query).Count(&totalItems).Error; err != nil {
		return empty, err
	}

	tx := returnRequestOrderColumns.apply(h.filtered(ctx, query), query.orderProperty, query.desc)
	tx = tx.Select(
		"return_requests.id",
		"assets.code AS asset_code",
		"assets.name AS asset_name",
		"assignments.assigned_date",
		"return_requests.return_date",
		"return_requests.user_request_id",
		"return_requests.user_accept_id",
		"return_requests.state",
	).
		Offset((query.page - 1) * query.limit).
		Limit(query.limit)

	var rows []returnRequestRow
	if err := tx.Scan(&rows).Error; err != nil {
		return empty, err
	}

	items := make([]FindReturnRequestsQueryResponse, 0, len(rows))
	for _, row := range rows {
		item, err := row.toResponse()
		if err != nil {
			return empty, err
		}
		items = append(items, item)
	}

	return newPagedResponse(items, query.page, query.limit, int(totalItems)), nil
}

func (h FindReturnRequestsQueryHandler) filtered(ctx context.Context, query FindReturnRequestsQuery) *gorm.DB {
	tx := h.db.WithContext(ctx).
		Table("return_requests").
		Joins("JOIN assignments ON assignments.id = return_requests.assignment_id").
		Joins("JOIN assets ON assets.id = assignments.asset_id")

	if query.keySearch != "" {
		pattern := "%" + query.keySearch + "%"
		if len(query.userFilter) > 0 {
			users := pq.Array(uuidStrings(query.userFilter))
			tx = tx.Where(
				"(assets.name ILIKE ? OR assets.code ILIKE ? OR return_requests.user_request_id = ANY(?::uuid[]) OR return_requests.user_accept_id = ANY(?::uuid[]))",
				pattern, pattern, users, users,
			)
		} else {
			tx = tx.Where("(assets.name ILIKE ? OR assets.code ILIKE ?)", pattern, pattern)
		}
	}

	if len(query.states) > 0 {
		tx = tx.Where("return_requests.state IN ?", requestStateInts(query.states))
	}

	if query.returnDate != nil {
		tx = tx.Where("return_requests.return_date::date = ?::date", *query.returnDate)
	}

	return tx
}

func requestStateInts(states []request.State) []int {
	ints := make([]int, 0, len(states))
	for _, s := range states {
		ints = append(ints, int(s))
	}
	return ints
}

func (r returnRequestRow) toResponse() (FindReturnRequestsQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return FindReturnRequestsQueryResponse{}, err
	}
	userRequestID, err := kernel.UUIDFromBytes(r.UserRequestID[:])
	if err != nil {
		return FindReturnRequestsQueryResponse{}, err
	}

	var userAcceptID *kernel.UUID
	if r.UserAcceptID != nil {
		converted, convErr := kernel.UUIDFromBytes(r.UserAcceptID[:])
		if convErr != nil {
			return FindReturnRequestsQueryResponse{}, convErr
		}
		userAcceptID = &converted
	}

	state := request.State(r.State)
	return FindReturnRequestsQueryResponse{
		ID:            id,
		AssetCode:     r.AssetCode,
		AssetName:     r.AssetName,
		AssignedDate:  r.AssignedDate,
		ReturnDate:    r.ReturnDate,
		UserRequestID: userRequestID,
		UserAcceptID:  userAcceptID,
		State:         state,
		StateName:     state.DisplayName(),
	}, nil
}
