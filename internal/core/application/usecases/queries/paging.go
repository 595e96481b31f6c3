// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly through gorm, bypassing the domain aggregates, and
// return flat response models shaped for the HTTP layer.
package queries

import (
	"amo/internal/pkg/errs"
)

// DefaultPageLimit is applied when a filter does not name a page size.
const DefaultPageLimit = 10

// PagedResponse carries one page of query results together with the paging
// bookkeeping clients need to render a pager.
type PagedResponse[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	TotalItems  int
}

// newPagedResponse assembles a page from the already-sliced items and the
// pre-pagination total. totalPages is never below 1, even for an empty set.
func newPagedResponse[T any](items []T, page int, limit int, totalItems int) PagedResponse[T] {
	totalPages := (totalItems + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return PagedResponse[T]{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
	}
}

func validatePage(page int) error {
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}
	return nil
}

func normalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultPageLimit, nil
	}
	if limit < 1 {
		return 0, errs.NewValueIsOutOfRangeError("limit", limit, 1, nil)
	}
	return limit, nil
}
