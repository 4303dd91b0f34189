package components

import (
	"time"

	"caja-api/internal/domain/coworking"
	"caja-api/internal/pkg/clock"
	"caja-api/internal/pkg/config"
	"caja-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewCoworkingPricing,
		NewLocation,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewCoworkingUseCase,
		usecase.NewCashierUseCase,
		usecase.NewOrderUseCase,
		usecase.NewProductUseCase,
		usecase.NewExpenseUseCase,
		usecase.NewLedgerUseCase,
	),
)

func NewCoworkingPricing(cfg config.Config) (coworking.Pricing, error) {
	baseRate, err := cfg.Coworking.BaseRateDecimal()
	if err != nil {
		return coworking.Pricing{}, err
	}
	halfHourRate, err := cfg.Coworking.HalfHourRateDecimal()
	if err != nil {
		return coworking.Pricing{}, err
	}
	return coworking.Pricing{BaseRate: baseRate, HalfHourRate: halfHourRate}, nil
}

// NewLocation resolves the business timezone used for calendar-month reports.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Log.TimeZone)
}
