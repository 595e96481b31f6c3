package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Every workflow operation that touches more than one entity (for example
// accepting a return request, which completes the request, soft-closes the
// assignment and frees the asset) runs inside a single unit of work so a
// crash mid-operation cannot leave the entity graph inconsistent.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CategoryRepository returns a CategoryRepository bound to the current transaction.
	CategoryRepository() CategoryRepository

	// AssetRepository returns an AssetRepository bound to the current transaction.
	AssetRepository() AssetRepository

	// AssignmentRepository returns an AssignmentRepository bound to the current transaction.
	AssignmentRepository() AssignmentRepository

	// ReturnRequestRepository returns a ReturnRequestRepository bound to the current transaction.
	ReturnRequestRepository() ReturnRequestRepository
}
