package cmd

import (
	"launderly/internal/adapters/out/postgres"
	"launderly/internal/core/application/usecases/commands"
	"launderly/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreatePickupCommandHandler() commands.CreatePickupCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePickupCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceRequestCommandHandler() commands.AdvanceRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateIntakeOrderCommandHandler() commands.IntakeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIntakeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitCountsCommandHandler() commands.SubmitCountsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitCountsCommandHandler(f)
}

func (c *CompositionRoot) CreateRaiseBypassCommandHandler() commands.RaiseBypassCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRaiseBypassCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveBypassCommandHandler() commands.ResolveBypassCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveBypassCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateScheduleDeliveriesCommandHandler() commands.ScheduleDeliveriesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleDeliveriesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRequestsQueryHandler() queries.GetRequestsQueryHandler {
	return queries.NewGetRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingBypassOrdersQueryHandler() queries.GetPendingBypassOrdersQueryHandler {
	return queries.NewGetPendingBypassOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
