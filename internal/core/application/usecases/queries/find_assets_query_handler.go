package queries

import (
	"context"
	"time"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindAssetsQueryHandler runs the asset list query against the database.
// Reads bypass the aggregates and work on the table rows directly, joined
// with categories for the category-name column.
type FindAssetsQueryHandler struct {
	db *gorm.DB
}

// NewFindAssetsQueryHandler creates a handler for asset list queries.
func NewFindAssetsQueryHandler(db *gorm.DB) FindAssetsQueryHandler {
	return FindAssetsQueryHandler{db: db}
}

type assetRow struct {
	ID            uuid.UUID
	Code          string
	Name          string
	Specification string
	Location      string
	CategoryID    uuid.UUID
	CategoryName  string
	State         int
	InstalledDate time.Time
	CreatedDate   time.Time
	UpdatedDate   time.Time
}

// Handle executes the asset list query.
// Filters run first, then ordering; the total is counted before pagination
// so totalPages reflects the whole filtered set.
func (h FindAssetsQueryHandler) Handle(
	ctx context.Context,
	query FindAssetsQuery,
) (PagedResponse[FindAssetsQueryResponse], error) {
	var empty PagedResponse[FindAssetsQueryResponse]
	if err := query.Validate(); err != nil {
		return empty, err
	}

	var totalItems int64
	if err := h.filtered(ctx, query).Count(&totalItems).Error; err != nil {
		return empty, err
	}

	tx := assetOrderColumns.apply(h.filtered(ctx, query), query.orderProperty, query.desc)
	tx = tx.Select(
		"assets.id",
		"assets.code",
		"assets.name",
		"assets.specification",
		"assets.location",
		"assets.category_id",
		"categories.name AS category_name",
		"assets.state",
		"assets.installed_date",
		"assets.created_date",
		"assets.updated_date",
	).
		Offset((query.page - 1) * query.limit).
		Limit(query.limit)

	var rows []assetRow
	if err := tx.Scan(&rows).Error; err != nil {
		return empty, err
	}

	items := make([]FindAssetsQueryResponse, 0, len(rows))
	for _, row := range rows {
		item, err := row.toResponse()
		if err != nil {
			return empty, err
		}
		items = append(items, item)
	}

	return newPagedResponse(items, query.page, query.limit, int(totalItems)), nil
}

// filtered builds the WHERE portion of the query. Called once for counting
// and once for the page fetch; the two runs must stay identical.
func (h FindAssetsQueryHandler) filtered(ctx context.Context, query FindAssetsQuery) *gorm.DB {
	tx := h.db.WithContext(ctx).
		Table("assets").
		Joins("JOIN categories ON categories.id = assets.category_id").
		Where("assets.active = ?", true).
		Where("assets.location = ?", query.location)

	if query.keySearch != "" {
		pattern := "%" + query.keySearch + "%"
		tx = tx.Where("(assets.name ILIKE ? OR assets.code ILIKE ?)", pattern, pattern)
	}

	if query.mustBeAvailable {
		tx = tx.Where("assets.state = ?", int(asset.Available))
	}

	// The category filter is a reversed substring test: the filter value
	// names one or more categories and matches rows whose category name is
	// contained in it.
	if query.category != "" {
		tx = tx.Where("? ILIKE '%' || categories.name || '%'", query.category)
	}

	if len(query.states) > 0 {
		tx = tx.Where("assets.state IN ?", stateInts(query.states))
	}

	return tx
}

func stateInts(states []asset.State) []int {
	ints := make([]int, 0, len(states))
	for _, s := range states {
		ints = append(ints, int(s))
	}
	return ints
}

func (r assetRow) toResponse() (FindAssetsQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return FindAssetsQueryResponse{}, err
	}
	categoryID, err := kernel.UUIDFromBytes(r.CategoryID[:])
	if err != nil {
		return FindAssetsQueryResponse{}, err
	}

	state := asset.State(r.State)
	return FindAssetsQueryResponse{
		ID:            id,
		Code:          r.Code,
		Name:          r.Name,
		Specification: r.Specification,
		Location:      r.Location,
		CategoryID:    categoryID,
		CategoryName:  r.CategoryName,
		State:         state,
		StateName:     state.DisplayName(),
		InstalledDate: r.InstalledDate,
		CreatedDate:   r.CreatedDate,
		UpdatedDate:   r.UpdatedDate,
	}, nil
}
