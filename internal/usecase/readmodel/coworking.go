package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CoworkingExtraRM struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}

type CoworkingSessionRM struct {
	ID         uuid.UUID
	ClientName string
	StartTime  time.Time
	EndTime    *time.Time
	Status     string
	Extras     []CoworkingExtraRM
	Total      decimal.Decimal
}

// CoworkingQuoteRM is the live estimate for an active session; nothing is
// persisted when it is produced.
type CoworkingQuoteRM struct {
	SessionID  uuid.UUID
	Minutes    int64
	TimeCost   decimal.Decimal
	ExtrasCost decimal.Decimal
	Total      decimal.Decimal
}
