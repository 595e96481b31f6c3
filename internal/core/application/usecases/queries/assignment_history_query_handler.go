package queries

import (
	"context"
	"time"

	"amo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentHistoryQueryHandler retrieves an asset's recent assignment
// history from the database.
type AssignmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewAssignmentHistoryQueryHandler creates a handler for assignment history queries.
func NewAssignmentHistoryQueryHandler(db *gorm.DB) AssignmentHistoryQueryHandler {
	return AssignmentHistoryQueryHandler{db: db}
}

type historyRow struct {
	AssignedDate time.Time
	ReturnDate   *time.Time
	CreatorID    uuid.UUID
	UserID       uuid.UUID
}

// Handle executes the history query. Closed assignments are included; the
// left join keeps entries whose return request was never opened or was
// cancelled.
func (h AssignmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query AssignmentHistoryQuery,
) ([]AssignmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("assignments").
		Joins("LEFT JOIN return_requests ON return_requests.assignment_id = assignments.id").
		Where("assignments.asset_id = ?", query.assetID.Bytes()).
		Order("assignments.assigned_date DESC").
		Limit(historyLimit).
		Select(
			"assignments.assigned_date",
			"return_requests.return_date",
			"assignments.creator_id",
			"assignments.user_id",
		)

	var rows []historyRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	history := make([]AssignmentHistoryQueryResponse, 0, len(rows))
	for _, row := range rows {
		assignedBy, err := kernel.UUIDFromBytes(row.CreatorID[:])
		if err != nil {
			return nil, err
		}
		assignedTo, err := kernel.UUIDFromBytes(row.UserID[:])
		if err != nil {
			return nil, err
		}
		history = append(history, AssignmentHistoryQueryResponse{
			AssignedDate:     row.AssignedDate,
			ReturnDate:       row.ReturnDate,
			UserAssignedByID: assignedBy,
			UserAssignedToID: assignedTo,
		})
	}

	return history, nil
}
