package queries

import (
	"errors"
	"strings"
	"time"

	"amo/internal/core/domain/model/assignment"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/guard"
)

var (
	ErrFindAssignmentsQueryIsNotConstructed = errors.New(
		"FindAssignmentsQuery must be created via NewFindAssignmentsQuery constructor",
	)
)

// FindAssignmentsQuery retrieves a filtered, sorted page of assignments,
// each joined with its asset for the code/name columns.
//
// userFilter is a set of user IDs resolved by the caller (typically a
// directory search for the same keySearch term); rows whose assignee is in
// the set match even when the asset columns do not. The membership test only
// applies while keySearch is non-empty, matching the original combined
// search behavior.
type FindAssignmentsQuery struct { //nolint:recvcheck //using for validation
	keySearch     string
	userFilter    []kernel.UUID
	states        []assignment.State
	assignedDate  *time.Time
	orderProperty string
	desc          bool
	page          int
	limit         int

	guard guard.ConstructorGuard
}

// NewFindAssignmentsQuery creates a query for a page of assignments.
func NewFindAssignmentsQuery(
	keySearch string,
	userFilter []kernel.UUID,
	states string,
	assignedDate *time.Time,
	orderProperty string,
	desc bool,
	page int,
	limit int,
) (FindAssignmentsQuery, error) {
	if err := validatePage(page); err != nil {
		return FindAssignmentsQuery{}, err
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return FindAssignmentsQuery{}, err
	}
	parsed, err := parseAssignmentStates(states)
	if err != nil {
		return FindAssignmentsQuery{}, err
	}

	return FindAssignmentsQuery{
		keySearch:     keySearch,
		userFilter:    userFilter,
		states:        parsed,
		assignedDate:  assignedDate,
		orderProperty: orderProperty,
		desc:          desc,
		page:          page,
		limit:         limit,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrFindAssignmentsQueryIsNotConstructed)
}

func parseAssignmentStates(tokens string) ([]assignment.State, error) {
	fields := strings.Fields(tokens)
	if len(fields) == 0 {
		return nil, nil
	}
	states := make([]assignment.State, 0, len(fields))
	for _, token := range fields {
		s, err := assignment.ParseState(token)
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, nil
}

// FindAssignmentsQueryResponse is one assignment row of the result page.
type FindAssignmentsQueryResponse struct {
	ID              kernel.UUID
	AssetID         kernel.UUID
	AssetCode       string
	AssetName       string
	UserID          kernel.UUID
	CreatorID       kernel.UUID
	AssignedDate    time.Time
	Note            string
	State           assignment.State
	StateName       string
	ReturnRequestID *kernel.UUID
}
