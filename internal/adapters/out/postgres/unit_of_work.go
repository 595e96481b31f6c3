// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern. A unit of work spans a single business transaction and coordinates
// writes across the category, asset, assignment and return request
// repositories, so a workflow touching several aggregates either lands fully
// or not at all.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.AssetRepository().Update(ctx, target); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets its own instance; instances are not safe for
// concurrent use.
package postgres

import (
	"context"

	"amo/internal/adapters/out/postgres/assetrepo"
	"amo/internal/adapters/out/postgres/assignmentrepo"
	"amo/internal/adapters/out/postgres/categoryrepo"
	"amo/internal/adapters/out/postgres/requestrepo"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like event sourcing or the outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// database connection. The factory hands each business operation a fresh
// instance with its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the aggregates
// modified within it. Repositories obtained from the unit of work run inside
// the current transaction when one is active, and against the main connection
// otherwise.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CategoryRepository returns a category repository bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) CategoryRepository() ports.CategoryRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return categoryrepo.NewGormCategoryRepository(db, uow)
}

// AssetRepository returns an asset repository bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) AssetRepository() ports.AssetRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return assetrepo.NewGormAssetRepository(db, uow)
}

// AssignmentRepository returns an assignment repository bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return assignmentrepo.NewGormAssignmentRepository(db, uow)
}

// ReturnRequestRepository returns a return request repository bound to the
// current transaction if one is active.
func (uow *GormUnitOfWork) ReturnRequestRepository() ports.ReturnRequestRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return requestrepo.NewGormReturnRequestRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on Add and Update; the collected
// aggregates enable post-commit processing such as domain event publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
