package queries

import (
	"errors"

	"amo/internal/pkg/errs"
	"amo/internal/pkg/guard"
)

var (
	ErrAssetReportQueryIsNotConstructed = errors.New(
		"AssetReportQuery must be created via NewAssetReportQuery constructor",
	)
)

// AssetReportQuery computes, for one location, how many assets each
// category holds in each state.
type AssetReportQuery struct { //nolint:recvcheck //using for validation
	location string

	guard guard.ConstructorGuard
}

// NewAssetReportQuery creates a report query scoped to an administrator's
// location.
func NewAssetReportQuery(location string) (AssetReportQuery, error) {
	if location == "" {
		return AssetReportQuery{}, errs.NewValueIsRequiredError("location")
	}
	return AssetReportQuery{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AssetReportQuery) Validate() error {
	return q.guard.Validate(ErrAssetReportQueryIsNotConstructed)
}

// AssetReportQueryResponse is one report line: a category's asset counts
// broken down by state.
type AssetReportQueryResponse struct {
	CategoryName      string
	Total             int
	Available         int
	NotAvailable      int
	Assigned          int
	WaitingForRecycle int
	Recycled          int
}
