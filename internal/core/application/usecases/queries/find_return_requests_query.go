package queries

import (
	"errors"
	"strings"
	"time"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/core/domain/model/request"
	"amo/internal/pkg/guard"
)

var (
	ErrFindReturnRequestsQueryIsNotConstructed = errors.New(
		"FindReturnRequestsQuery must be created via NewFindReturnRequestsQuery constructor",
	)
)

// FindReturnRequestsQuery retrieves a filtered, sorted page of return
// requests, joined through their assignment to the asset.
//
// userFilter membership is tested against both the requesting and the
// accepting user, and only while keySearch is non-empty.
type FindReturnRequestsQuery struct { //nolint:recvcheck //using for validation
	keySearch     string
	userFilter    []kernel.UUID
	states        []request.State
	returnDate    *time.Time
	orderProperty string
	desc          bool
	page          int
	limit         int

	guard guard.ConstructorGuard
}

// NewFindReturnRequestsQuery creates a query for a page of return requests.
func NewFindReturnRequestsQuery(
	keySearch string,
	userFilter []kernel.UUID,
	states string,
	returnDate *time.Time,
	orderProperty string,
	desc bool,
	page int,
	limit int,
) (FindReturnRequestsQuery, error) {
	if err := validatePage(page); err != nil {
		return FindReturnRequestsQuery{}, err
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return FindReturnRequestsQuery{}, err
	}
	parsed, err := parseRequestStates(states)
	if err != nil {
		return FindReturnRequestsQuery{}, err
	}

	return FindReturnRequestsQuery{
		keySearch:     keySearch,
		userFilter:    userFilter,
		states:        parsed,
		returnDate:    returnDate,
		orderProperty: orderProperty,
		desc:          desc,
		page:          page,
		limit:         limit,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindReturnRequestsQuery) Validate() error {
	return q.guard.Validate(ErrFindReturnRequestsQueryIsNotConstructed)
}

func parseRequestStates(tokens string) ([]request.State, error) {
	fields := strings.Fields(tokens)
	if len(fields) == 0 {
		return nil, nil
	}
	states := make([]request.State, 0, len(fields))
	for _, token := range fields {
		s, err := request.ParseState(token)
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, nil
}

// FindReturnRequestsQueryResponse is one return request row of the result
// page.
type FindReturnRequestsQueryResponse struct {
	ID            kernel.UUID
	AssetCode     string
	AssetName     string
	AssignedDate  time.Time
	ReturnDate    *time.Time
	UserRequestID kernel.UUID
	UserAcceptID  *kernel.UUID
	State         request.State
	StateName     string
}
