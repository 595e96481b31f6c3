package queries

import (
	"errors"
	"time"

	"amo/internal/core/domain/model/assignment"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/guard"
)

var (
	ErrMyAssignmentsQueryIsNotConstructed = errors.New(
		"MyAssignmentsQuery must be created via NewMyAssignmentsQuery constructor",
	)
)

// MyAssignmentsQuery retrieves the live assignments of one user whose
// assigned date has arrived. Assignments dated in the future stay hidden
// until their day comes.
type MyAssignmentsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMyAssignmentsQuery creates a query for a user's current assignments.
func NewMyAssignmentsQuery(userID kernel.UUID) (MyAssignmentsQuery, error) {
	if err := userID.Validate(); err != nil {
		return MyAssignmentsQuery{}, err
	}
	return MyAssignmentsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q MyAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrMyAssignmentsQueryIsNotConstructed)
}

// MyAssignmentsQueryResponse is one of the user's assignments annotated
// with the asset and category details their home screen shows.
type MyAssignmentsQueryResponse struct {
	ID                 kernel.UUID
	AssetID            kernel.UUID
	AssetCode          string
	AssetName          string
	AssetSpecification string
	CategoryName       string
	AssignedDate       time.Time
	Note               string
	State              assignment.State
	StateName          string
	ReturnRequestID    *kernel.UUID
}
