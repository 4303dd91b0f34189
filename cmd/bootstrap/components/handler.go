package components

import (
	"caja-api/internal/handler"
	"caja-api/internal/handler/api"
	"caja-api/internal/handler/middleware"
	"caja-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewCoworkingHandler,
		api.NewCashierHandler,
		api.NewOrderHandler,
		api.NewProductHandler,
		api.NewExpenseHandler,
		api.NewLedgerHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	coworking *api.CoworkingHandler,
	cashier *api.CashierHandler,
	order *api.OrderHandler,
	product *api.ProductHandler,
	expense *api.ExpenseHandler,
	ledger *api.LedgerHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Coworking: coworking,
		Cashier:   cashier,
		Order:     order,
		Product:   product,
		Expense:   expense,
		Ledger:    ledger,
	}
}
