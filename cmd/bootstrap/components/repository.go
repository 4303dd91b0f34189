package components

import (
	"caja-api/internal/infra/repository"
	"caja-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewMemberRepository,
			fx.As(new(usecase.MemberRepository)),
		),
		fx.Annotate(
			repository.NewCoworkingRepository,
			fx.As(new(usecase.CoworkingRepository)),
		),
		fx.Annotate(
			repository.NewCashSessionRepository,
			fx.As(new(usecase.CashSessionRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(usecase.ProductRepository)),
		),
		fx.Annotate(
			repository.NewExpenseRepository,
			fx.As(new(usecase.ExpenseRepository)),
		),
		fx.Annotate(
			repository.NewTransactionRepository,
			fx.As(new(usecase.TransactionRepository)),
		),
		fx.Annotate(
			repository.NewCategoryRepository,
			fx.As(new(usecase.CategoryRepository)),
		),
		fx.Annotate(
			repository.NewBudgetRepository,
			fx.As(new(usecase.BudgetRepository)),
		),
	),
)
