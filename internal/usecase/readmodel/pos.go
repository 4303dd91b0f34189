package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRM struct {
	ID          uuid.UUID
	Name        string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Stock       int32
	Description string
	ImageURL    string
	Category    string
}

type OrderItemRM struct {
	ProductID *uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}

type OrderRM struct {
	ID            uuid.UUID
	Date          time.Time
	Items         []OrderItemRM
	Total         decimal.Decimal
	ClientName    *string
	ServiceType   string
	PaymentMethod string
}

type ExpenseRM struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        string
}
