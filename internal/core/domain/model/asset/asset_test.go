package asset_test

import (
	"testing"
	"time"

	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsset(t *testing.T) {
	validID := kernel.NewUUID()
	validCategoryID := kernel.NewUUID()
	validCreatorID := kernel.NewUUID()
	installedDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should create valid asset with all valid parameters", func(t *testing.T) {
		a, err := asset.NewAsset(validID, "LA000001", "MacBook Pro", "M3, 16GB RAM",
			"HN", validCategoryID, asset.Available, installedDate, validCreatorID)

		require.NoError(t, err)
		assert.NotNil(t, a)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(validID))
		assert.Equal(t, "LA000001", a.Code())
		assert.Equal(t, "MacBook Pro", a.Name())
		assert.Equal(t, "M3, 16GB RAM", a.Specification())
		assert.Equal(t, "HN", a.Location())
		assert.True(t, a.CategoryID().IsEqual(validCategoryID))
		assert.Equal(t, asset.Available, a.State())
		assert.Equal(t, installedDate, a.InstalledDate())
		assert.True(t, a.IsActive())
		assert.False(t, a.CreatedDate().IsZero())
		assert.False(t, a.UpdatedDate().IsZero())
	})

	t.Run("should allow empty specification", func(t *testing.T) {
		a, err := asset.NewAsset(validID, "LA000001", "MacBook Pro", "",
			"HN", validCategoryID, asset.Available, installedDate, validCreatorID)

		require.NoError(t, err)
		assert.Empty(t, a.Specification())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := asset.NewAsset(invalidID, "LA000001", "MacBook Pro", "",
			"HN", validCategoryID, asset.Available, installedDate, validCreatorID)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty code", func(t *testing.T) {
		a, err := asset.NewAsset(validID, "", "MacBook Pro", "",
			"HN", validCategoryID, asset.Available, installedDate, validCreatorID)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "code")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		a, err := asset.NewAsset(validID, "LA000001", "", "",
			"HN", validCategoryID, asset.Available, installedDate, validCreatorID)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with empty location", func(t *testing.T) {
		a, err := asset.NewAsset(validID, "LA000001", "MacBook Pro", "",
			"", validCategoryID, asset.Available, installedDate, validCreatorID)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "location")
	})

	t.Run("should fail with unknown state", func(t *testing.T) {
		a, err := asset.NewAsset(validID, "LA000001", "MacBook Pro", "",
			"HN", validCategoryID, asset.Unknown, installedDate, validCreatorID)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "not a valid asset state")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := asset.NewAsset(invalidID, "", "", "",
			"", validCategoryID, asset.Unknown, installedDate, validCreatorID)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "code")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "location")
	})
}

func TestAsset_UpdateDetails(t *testing.T) {
	newAsset := func(t *testing.T) *asset.Asset {
		a, err := asset.NewAsset(kernel.NewUUID(), "LA000001", "MacBook Pro", "M3",
			"HN", kernel.NewUUID(), asset.Available, time.Now(), kernel.NewUUID())
		require.NoError(t, err)
		return a
	}

	t.Run("should update the mutable fields", func(t *testing.T) {
		a := newAsset(t)
		before := a.UpdatedDate()
		newDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		err := a.UpdateDetails("ThinkPad X1", "i7, 32GB RAM", newDate, asset.NotAvailable)

		require.NoError(t, err)
		assert.Equal(t, "ThinkPad X1", a.Name())
		assert.Equal(t, "i7, 32GB RAM", a.Specification())
		assert.Equal(t, newDate, a.InstalledDate())
		assert.Equal(t, asset.NotAvailable, a.State())
		assert.False(t, a.UpdatedDate().Before(before))
	})

	t.Run("should keep code, category and location unchanged", func(t *testing.T) {
		a := newAsset(t)
		code, categoryID, location := a.Code(), a.CategoryID(), a.Location()

		require.NoError(t, a.UpdateDetails("ThinkPad X1", "", time.Now(), asset.Available))

		assert.Equal(t, code, a.Code())
		assert.True(t, a.CategoryID().IsEqual(categoryID))
		assert.Equal(t, location, a.Location())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		a := newAsset(t)

		err := a.UpdateDetails("", "", time.Now(), asset.Available)

		require.Error(t, err)
		assert.Equal(t, "MacBook Pro", a.Name())
	})

	t.Run("should reject unknown state", func(t *testing.T) {
		a := newAsset(t)

		err := a.UpdateDetails("ThinkPad X1", "", time.Now(), asset.Unknown)

		require.Error(t, err)
		assert.Equal(t, asset.Available, a.State())
	})
}

func TestAsset_SetState(t *testing.T) {
	t.Run("should overwrite state unconditionally", func(t *testing.T) {
		a, err := asset.NewAsset(kernel.NewUUID(), "LA000001", "MacBook Pro", "",
			"HN", kernel.NewUUID(), asset.Recycled, time.Now(), kernel.NewUUID())
		require.NoError(t, err)

		require.NoError(t, a.SetState(asset.Available))
		assert.Equal(t, asset.Available, a.State())

		require.NoError(t, a.SetState(asset.Assigned))
		assert.Equal(t, asset.Assigned, a.State())
	})

	t.Run("should reject invalid state", func(t *testing.T) {
		a, err := asset.NewAsset(kernel.NewUUID(), "LA000001", "MacBook Pro", "",
			"HN", kernel.NewUUID(), asset.Available, time.Now(), kernel.NewUUID())
		require.NoError(t, err)

		require.Error(t, a.SetState(asset.State(42)))
		assert.Equal(t, asset.Available, a.State())
	})
}

func TestRestoreAsset(t *testing.T) {
	t.Run("should restore persisted state including audit fields", func(t *testing.T) {
		id := kernel.NewUUID()
		createdDate := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
		updatedDate := time.Date(2023, 2, 1, 12, 0, 0, 0, time.UTC)

		a, err := asset.RestoreAsset(id, "LA000007", "MacBook Pro", "M3",
			"HN", kernel.NewUUID(), asset.Assigned, time.Now(), createdDate, updatedDate,
			kernel.NewUUID(), false)

		require.NoError(t, err)
		assert.Equal(t, createdDate, a.CreatedDate())
		assert.Equal(t, updatedDate, a.UpdatedDate())
		assert.Equal(t, asset.Assigned, a.State())
		assert.False(t, a.IsActive())
	})
}

func TestAsset_Validate(t *testing.T) {
	t.Run("should fail for zero-value asset", func(t *testing.T) {
		var a asset.Asset

		assert.ErrorIs(t, a.Validate(), asset.ErrAssetIsNotConstructed)
	})

	t.Run("should fail for nil asset", func(t *testing.T) {
		var a *asset.Asset

		assert.ErrorIs(t, a.Validate(), asset.ErrAssetIsNotConstructed)
	})
}
