package queries

import (
	"context"
	"strconv"

	"amo/internal/core/domain/model/asset"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FilterOptionsQueryHandler assembles the filter select lists: categories
// from the database, states from the static display-name mapping.
type FilterOptionsQueryHandler struct {
	db *gorm.DB
}

// NewFilterOptionsQueryHandler creates a handler for filter options queries.
func NewFilterOptionsQueryHandler(db *gorm.DB) FilterOptionsQueryHandler {
	return FilterOptionsQueryHandler{db: db}
}

type categoryOptionRow struct {
	ID   uuid.UUID
	Name string
}

// Handle executes the filter options query.
func (h FilterOptionsQueryHandler) Handle(
	ctx context.Context,
	query FilterOptionsQuery,
) (FilterOptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FilterOptionsQueryResponse{}, err
	}

	var rows []categoryOptionRow
	err := h.db.WithContext(ctx).
		Table("categories").
		Order("name").
		Select("id", "name").
		Scan(&rows).Error
	if err != nil {
		return FilterOptionsQueryResponse{}, err
	}

	categories := make([]SelectOption, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, SelectOption{
			ID:   row.ID.String(),
			Name: row.Name,
		})
	}

	allStates := asset.AllStates()
	states := make([]SelectOption, 0, len(allStates))
	for _, s := range allStates {
		states = append(states, SelectOption{
			ID:   strconv.Itoa(int(s)),
			Name: s.DisplayName(),
		})
	}

	return FilterOptionsQueryResponse{
		Categories: categories,
		States:     states,
	}, nil
}
