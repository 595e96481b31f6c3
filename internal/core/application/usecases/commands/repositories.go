// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"amo/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// AssetRepoFactory provides access to the asset repository within a transaction.
	AssetRepoFactory interface {
		AssetRepository() ports.AssetRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// ReturnRequestRepoFactory provides access to the return request repository within a transaction.
	ReturnRequestRepoFactory interface {
		ReturnRequestRepository() ports.ReturnRequestRepository
	}

	// AssetUoW manages transactions for asset lifecycle operations.
	// Creation reads the owning category for code allocation and deletion
	// consults assignments for the reference guard, so both repositories
	// ride along.
	AssetUoW interface {
		TxManager
		AssetRepoFactory
		CategoryRepoFactory
		AssignmentRepoFactory
	}

	// AssetUoWFactory creates new asset unit of work instances.
	AssetUoWFactory interface {
		Create() AssetUoW
	}

	// AssignmentUoW manages transactions for assignment workflow operations.
	// Assignment workflows drive asset state transitions, so the asset
	// repository is part of the same transaction.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
		AssetRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ReturnRequestUoW manages transactions for return-request workflow
	// operations, which span the request, its assignment and the asset.
	ReturnRequestUoW interface {
		TxManager
		ReturnRequestRepoFactory
		AssignmentRepoFactory
		AssetRepoFactory
	}

	// ReturnRequestUoWFactory creates new return request unit of work instances.
	ReturnRequestUoWFactory interface {
		Create() ReturnRequestUoW
	}
)
