package cmd

import (
	"amo/internal/adapters/out/postgres"
	"amo/internal/core/application/usecases/commands"
	"amo/internal/core/application/usecases/queries"
	"amo/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	allocator  *services.CodeAllocator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		allocator:  services.NewCodeAllocator(),
	}
}

func (c *CompositionRoot) CreateCreateAssetCommandHandler() commands.CreateAssetCommandHandler {
	var f commands.AssetUoWFactory = FuncAssetUoWFactory(func() commands.AssetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAssetCommandHandler(f, c.allocator)
}

func (c *CompositionRoot) CreateUpdateAssetCommandHandler() commands.UpdateAssetCommandHandler {
	var f commands.AssetUoWFactory = FuncAssetUoWFactory(func() commands.AssetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAssetCommandHandler(f)
}

func (c *CompositionRoot) CreateSetAssetStateCommandHandler() commands.SetAssetStateCommandHandler {
	var f commands.AssetUoWFactory = FuncAssetUoWFactory(func() commands.AssetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAssetStateCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAssetCommandHandler() commands.DeleteAssetCommandHandler {
	var f commands.AssetUoWFactory = FuncAssetUoWFactory(func() commands.AssetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAssetCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAssignmentCommandHandler() commands.UpdateAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptAssignmentCommandHandler() commands.AcceptAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAssignmentCommandHandler() commands.DeleteAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateReturnRequestCommandHandler() commands.CreateReturnRequestCommandHandler {
	var f commands.ReturnRequestUoWFactory = FuncReturnRequestUoWFactory(func() commands.ReturnRequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReturnRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptReturnRequestCommandHandler() commands.AcceptReturnRequestCommandHandler {
	var f commands.ReturnRequestUoWFactory = FuncReturnRequestUoWFactory(func() commands.ReturnRequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptReturnRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelReturnRequestCommandHandler() commands.CancelReturnRequestCommandHandler {
	var f commands.ReturnRequestUoWFactory = FuncReturnRequestUoWFactory(func() commands.ReturnRequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelReturnRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateFindAssetsQueryHandler() queries.FindAssetsQueryHandler {
	return queries.NewFindAssetsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindAssignmentsQueryHandler() queries.FindAssignmentsQueryHandler {
	return queries.NewFindAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindReturnRequestsQueryHandler() queries.FindReturnRequestsQueryHandler {
	return queries.NewFindReturnRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAssignmentHistoryQueryHandler() queries.AssignmentHistoryQueryHandler {
	return queries.NewAssignmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateMyAssignmentsQueryHandler() queries.MyAssignmentsQueryHandler {
	return queries.NewMyAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAssetReportQueryHandler() queries.AssetReportQueryHandler {
	return queries.NewAssetReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFilterOptionsQueryHandler() queries.FilterOptionsQueryHandler {
	return queries.NewFilterOptionsQueryHandler(c.gormDB)
}

type FuncAssetUoWFactory func() commands.AssetUoW

func (f FuncAssetUoWFactory) Create() commands.AssetUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncReturnRequestUoWFactory func() commands.ReturnRequestUoW

func (f FuncReturnRequestUoWFactory) Create() commands.ReturnRequestUoW {
	return f()
}
