package commands_test

import (
	"context"
	"time"

	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/domain/model/asset"
	"amo/internal/core/domain/model/assignment"
	"amo/internal/core/domain/model/category"
	"amo/internal/core/domain/model/kernel"
	"amo/internal/core/domain/model/request"
	"amo/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *category.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}
func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

type MockAssetRepository struct{ mock.Mock }

func (m *MockAssetRepository) Add(ctx context.Context, a *asset.Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAssetRepository) Get(ctx context.Context, id kernel.UUID) (*asset.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asset.Asset), args.Error(1)
}
func (m *MockAssetRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAssetRepository) MaxCodeInCategory(ctx context.Context, categoryID kernel.UUID) (string, error) {
	args := m.Called(ctx, categoryID)
	return args.String(0), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}
func (m *MockAssignmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAssignmentRepository) GetByReturnRequest(ctx context.Context, requestID kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}
func (m *MockAssignmentRepository) ExistsForAsset(ctx context.Context, assetID kernel.UUID) (bool, error) {
	args := m.Called(ctx, assetID)
	return args.Bool(0), args.Error(1)
}
func (m *MockAssignmentRepository) HasActiveForAsset(ctx context.Context, assetID kernel.UUID) (bool, error) {
	args := m.Called(ctx, assetID)
	return args.Bool(0), args.Error(1)
}

type MockReturnRequestRepository struct{ mock.Mock }

func (m *MockReturnRequestRepository) Add(ctx context.Context, r *request.ReturnRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReturnRequestRepository) Update(ctx context.Context, r *request.ReturnRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReturnRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.ReturnRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.ReturnRequest), args.Error(1)
}
func (m *MockReturnRequestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAssetUoW struct{ mock.Mock }

func (m *MockAssetUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssetUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssetUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssetUoW) AssetRepository() ports.AssetRepository {
	args := m.Called()
	return args.Get(0).(ports.AssetRepository)
}
func (m *MockAssetUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}
func (m *MockAssetUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockAssetUoWFactory struct{ mock.Mock }

func (m *MockAssetUoWFactory) Create() commands.AssetUoW {
	args := m.Called()
	return args.Get(0).(commands.AssetUoW)
}

type MockAssignmentUoW struct{ mock.Mock }

func (m *MockAssignmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssignmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssignmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAssignmentUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}
func (m *MockAssignmentUoW) AssetRepository() ports.AssetRepository {
	args := m.Called()
	return args.Get(0).(ports.AssetRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockReturnRequestUoW struct{ mock.Mock }

func (m *MockReturnRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReturnRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReturnRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReturnRequestUoW) ReturnRequestRepository() ports.ReturnRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.ReturnRequestRepository)
}
func (m *MockReturnRequestUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}
func (m *MockReturnRequestUoW) AssetRepository() ports.AssetRepository {
	args := m.Called()
	return args.Get(0).(ports.AssetRepository)
}

type MockReturnRequestUoWFactory struct{ mock.Mock }

func (m *MockReturnRequestUoWFactory) Create() commands.ReturnRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.ReturnRequestUoW)
}

func newTestCategory(id kernel.UUID) *category.Category {
	c, err := category.NewCategory(id, "Laptop", "LA")
	if err != nil {
		panic(err)
	}
	return c
}

func newTestAsset(id kernel.UUID, categoryID kernel.UUID, state asset.State) *asset.Asset {
	a, err := asset.NewAsset(
		id,
		"LA000001",
		"MacBook Pro",
		"M3, 16GB",
		"HN",
		categoryID,
		state,
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		kernel.NewUUID(),
	)
	if err != nil {
		panic(err)
	}
	return a
}

func newTestAssignment(id kernel.UUID, assetID kernel.UUID) *assignment.Assignment {
	a, err := assignment.NewAssignment(
		id,
		assetID,
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		"handled with care",
	)
	if err != nil {
		panic(err)
	}
	return a
}

func newTestReturnRequest(id kernel.UUID, assignmentID kernel.UUID) *request.ReturnRequest {
	r, err := request.NewReturnRequest(id, assignmentID, kernel.NewUUID())
	if err != nil {
		panic(err)
	}
	return r
}
