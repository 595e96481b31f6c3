package queries

import (
	"errors"
	"time"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/guard"
)

var (
	ErrAssignmentHistoryQueryIsNotConstructed = errors.New(
		"AssignmentHistoryQuery must be created via NewAssignmentHistoryQuery constructor",
	)
)

// historyLimit caps the assignment history at the three most recent entries.
const historyLimit = 3

// AssignmentHistoryQuery retrieves the most recent assignments of one asset,
// newest first, each annotated with the return date of its linked return
// request when one exists.
type AssignmentHistoryQuery struct { //nolint:recvcheck //using for validation
	assetID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignmentHistoryQuery creates a query for an asset's assignment history.
func NewAssignmentHistoryQuery(assetID kernel.UUID) (AssignmentHistoryQuery, error) {
	if err := assetID.Validate(); err != nil {
		return AssignmentHistoryQuery{}, err
	}
	return AssignmentHistoryQuery{
		assetID: assetID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AssignmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrAssignmentHistoryQueryIsNotConstructed)
}

// AssignmentHistoryQueryResponse is one history entry: when the asset was
// handed out, by whom, to whom, and when it came back.
type AssignmentHistoryQueryResponse struct {
	AssignedDate     time.Time
	ReturnDate       *time.Time
	UserAssignedByID kernel.UUID
	UserAssignedToID kernel.UUID
}
