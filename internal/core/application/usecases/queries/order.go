package queries

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// orderRegistry maps sortable property names to the SQL expressions they
// sort by. Keys are matched case-insensitively, which also covers clients
// naming any result property in its own casing. Registries are built once at
// package init; no reflection happens per query.
type orderRegistry map[string]string

func newOrderRegistry(columns map[string]string) orderRegistry {
	r := make(orderRegistry, len(columns))
	for name, expr := range columns {
		r[strings.ToLower(name)] = expr
	}
	return r
}

// apply adds an ORDER BY clause for the named property. An empty or
// unrecognized property leaves the query order untouched, preserving the
// storage order for compatibility with existing clients.
func (r orderRegistry) apply(tx *gorm.DB, property string, desc bool) *gorm.DB {
	if property == "" {
		return tx
	}
	expr, ok := r[strings.ToLower(property)]
	if !ok {
		return tx
	}
	if desc {
		return tx.Order(fmt.Sprintf("%s DESC", expr))
	}
	return tx.Order(expr)
}

// assetOrderColumns covers every sortable property of an asset row,
// including the joined category name.
var assetOrderColumns = newOrderRegistry(map[string]string{
	"code":          "assets.code",
	"name":          "assets.name",
	"specification": "assets.specification",
	"location":      "assets.location",
	"categoryName":  "categories.name",
	"state":         "assets.state",
	"installedDate": "assets.installed_date",
	"createdDate":   "assets.created_date",
	"updatedDate":   "assets.updated_date",
})

// assignmentOrderColumns covers assignment rows and their joined asset.
var assignmentOrderColumns = newOrderRegistry(map[string]string{
	"AssetCode":    "assets.code",
	"AssetName":    "assets.name",
	"assignedDate": "assignments.assigned_date",
	"state":        "assignments.state",
	"note":         "assignments.note",
})

// returnRequestOrderColumns covers return request rows and the asset two
// joins away.
var returnRequestOrderColumns = newOrderRegistry(map[string]string{
	"assetCode":  "assets.code",
	"assetName":  "assets.name",
	"returnDate": "return_requests.return_date",
	"state":      "return_requests.state",
})
