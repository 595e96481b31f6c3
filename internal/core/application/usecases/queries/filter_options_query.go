package queries

import (
	"errors"

	"amo/internal/pkg/guard"
)

var (
	ErrFilterOptionsQueryIsNotConstructed = errors.New(
		"FilterOptionsQuery must be created via NewFilterOptionsQuery constructor",
	)
)

// FilterOptionsQuery retrieves the select lists the asset filter UI offers:
// every category, and every asset state with its display name.
type FilterOptionsQuery struct {
	guard guard.ConstructorGuard
}

// NewFilterOptionsQuery creates a parameterless filter options query.
func NewFilterOptionsQuery() FilterOptionsQuery {
	return FilterOptionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q FilterOptionsQuery) Validate() error {
	return q.guard.Validate(ErrFilterOptionsQueryIsNotConstructed)
}

// SelectOption is one entry of a filter select list.
type SelectOption struct {
	ID   string
	Name string
}

// FilterOptionsQueryResponse carries both filter select lists.
type FilterOptionsQueryResponse struct {
	Categories []SelectOption
	States     []SelectOption
}
