package commands

import (
	"context"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/services"
)

// CreateAssetCommandHandler handles the business logic for asset creation.
// Allocates a category-scoped asset code and persists the asset within a
// single transaction.
//
// Code allocation and the insert run under the allocator's per-category lock
// so two concurrent creations in the same category cannot observe the same
// maximum code.
//
// Example:
//
//	handler := NewCreateAssetCommandHandler(uowFactory, allocator)
//	cmd, _ := NewCreateAssetCommand(assetID, "MacBook Pro", "M3, 16GB", "HN",
//	    categoryID, asset.Available, installedDate, adminID)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("asset creation failed: %w", err)
//	}
//	fmt.Printf("asset created with code %s", result.Code)
type CreateAssetCommandHandler struct {
	uowFactory AssetUoWFactory
	allocator  *services.CodeAllocator
}

// NewCreateAssetCommandHandler creates a handler for asset creation operations.
// Requires an AssetUoWFactory for transactional persistence and the shared
// CodeAllocator for category-scoped code generation.
func NewCreateAssetCommandHandler(uowFactory AssetUoWFactory, allocator *services.CodeAllocator) CreateAssetCommandHandler {
	return CreateAssetCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle processes the asset creation command.
// Fetches the owning category, allocates the next code, and persists the new
// asset. Fails with an object-not-found error when the category does not
// exist.
func (h CreateAssetCommandHandler) Handle(ctx context.Context, cmd CreateAssetCommand) (*AssetResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *AssetResult
	err := h.allocator.WithCategoryLock(cmd.CategoryID(), func() error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		cat, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID())
		if err != nil {
			return err
		}

		assetRepo := uow.AssetRepository()
		maxCode, err := assetRepo.MaxCodeInCategory(ctx, cmd.CategoryID())
		if err != nil {
			return err
		}

		code, err := h.allocator.NextCode(cat, maxCode)
		if err != nil {
			return err
		}

		aggregate, err := asset.NewAsset(
			cmd.AssetID(),
			code,
			cmd.Name(),
			cmd.Specification(),
			cmd.Location(),
			cmd.CategoryID(),
			cmd.State(),
			cmd.InstalledDate(),
			cmd.CreatorID(),
		)
		if err != nil {
			return err
		}

		if err = assetRepo.Add(ctx, aggregate); err != nil {
			return err
		}

		if err = uow.Commit(ctx); err != nil {
			return err
		}

		result = newAssetResult(aggregate)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
