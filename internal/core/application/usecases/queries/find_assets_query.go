package queries

import (
	"errors"
	"strings"
	"time"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"
	"amo/internal/pkg/guard"
)

var (
	ErrFindAssetsQueryIsNotConstructed = errors.New(
		"FindAssetsQuery must be created via NewFindAssetsQuery constructor",
	)
)

// FindAssetsQuery retrieves a filtered, sorted page of assets within one
// location. Location is the administrator's partition and is always applied.
//
// The state filter is a space-separated list of state enum names; an
// unrecognized name fails construction rather than being dropped, so a typo
// never silently widens the result set.
type FindAssetsQuery struct { //nolint:recvcheck //using for validation
	location        string
	keySearch       string
	category        string
	states          []asset.State
	mustBeAvailable bool
	orderProperty   string
	desc            bool
	page            int
	limit           int

	guard guard.ConstructorGuard
}

// NewFindAssetsQuery creates a query for a page of assets.
// states is the raw space-separated token list; page is 1-based; a zero
// limit selects the default page size.
func NewFindAssetsQuery(
	location string,
	keySearch string,
	category string,
	states string,
	mustBeAvailable bool,
	orderProperty string,
	desc bool,
	page int,
	limit int,
) (FindAssetsQuery, error) {
	if location == "" {
		return FindAssetsQuery{}, errs.NewValueIsRequiredError("location")
	}
	if err := validatePage(page); err != nil {
		return FindAssetsQuery{}, err
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return FindAssetsQuery{}, err
	}
	parsed, err := parseAssetStates(states)
	if err != nil {
		return FindAssetsQuery{}, err
	}

	return FindAssetsQuery{
		location:        location,
		keySearch:       keySearch,
		category:        category,
		states:          parsed,
		mustBeAvailable: mustBeAvailable,
		orderProperty:   orderProperty,
		desc:            desc,
		page:            page,
		limit:           limit,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindAssetsQuery) Validate() error {
	return q.guard.Validate(ErrFindAssetsQueryIsNotConstructed)
}

func parseAssetStates(tokens string) ([]asset.State, error) {
	fields := strings.Fields(tokens)
	if len(fields) == 0 {
		return nil, nil
	}
	states := make([]asset.State, 0, len(fields))
	for _, token := range fields {
		s, err := asset.ParseState(token)
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, nil
}

// FindAssetsQueryResponse is one asset row of the result page, annotated
// with its category name and display state.
type FindAssetsQueryResponse struct {
	ID            kernel.UUID
	Code          string
	Name          string
	Specification string
	Location      string
	CategoryID    kernel.UUID
	CategoryName  string
	State         asset.State
	StateName     string
	InstalledDate time.Time
	CreatedDate   time.Time
	UpdatedDate   time.Time
}
