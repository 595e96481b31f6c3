package queries

import (
	"context"
	"sort"

	"amo/internal/core/domain/model/asset"

	"gorm.io/gorm"
)

// AssetReportQueryHandler computes the category-by-state asset report.
// Groups rows in the database and pivots the counts into one line per
// category, sorted by category name.
type AssetReportQueryHandler struct {
	db *gorm.DB
}

// NewAssetReportQueryHandler creates a handler for asset report queries.
func NewAssetReportQueryHandler(db *gorm.DB) AssetReportQueryHandler {
	return AssetReportQueryHandler{db: db}
}

type reportGroupRow struct {
	CategoryName string
	State        int
	Count        int
}

// Handle executes the report query.
func (h AssetReportQueryHandler) Handle(
	ctx context.Context,
	query AssetReportQuery,
) ([]AssetReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("assets").
		Joins("JOIN categories ON categories.id = assets.category_id").
		Where("assets.location = ?", query.location).
		Group("categories.name, assets.state").
		Select("categories.name AS category_name", "assets.state", "COUNT(*) AS count")

	var groups []reportGroupRow
	if err := tx.Scan(&groups).Error; err != nil {
		return nil, err
	}

	byCategory := make(map[string]*AssetReportQueryResponse)
	for _, group := range groups {
		line, ok := byCategory[group.CategoryName]
		if !ok {
			line = &AssetReportQueryResponse{CategoryName: group.CategoryName}
			byCategory[group.CategoryName] = line
		}
		line.Total += group.Count

		switch asset.State(group.State) {
		case asset.Available:
			line.Available += group.Count
		case asset.NotAvailable:
			line.NotAvailable += group.Count
		case asset.Assigned:
			line.Assigned += group.Count
		case asset.WaitingForRecycle:
			line.WaitingForRecycle += group.Count
		case asset.Recycled:
			line.Recycled += group.Count
		}
	}

	report := make([]AssetReportQueryResponse, 0, len(byCategory))
	for _, line := range byCategory {
		report = append(report, *line)
	}
	sort.Slice(report, func(i, j int) bool {
		return report[i].CategoryName < report[j].CategoryName
	})

	return report, nil
}
