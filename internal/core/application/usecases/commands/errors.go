package commands

import (
	"fmt"

	"amo/internal/core/domain/model/kernel"
	"amo/internal/pkg/errs"
)

func errAssetReferencedByAssignment(assetID kernel.UUID) error {
	return errs.NewConflictError(
		fmt.Sprintf("asset %s is referenced by an assignment and cannot be deleted", assetID),
	)
}

func errAssetAlreadyAssigned(assetID kernel.UUID) error {
	return errs.NewConflictError(
		fmt.Sprintf("asset %s already has an active assignment", assetID),
	)
}
