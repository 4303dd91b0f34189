package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart            = errors.New("order requires at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be at least 1")
	ErrInvalidServiceType   = errors.New("invalid service type")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// LineItem captures name and unit price at checkout. ProductID is nil for
// synthetic lines such as the coworking time charge.
type LineItem struct {
	ProductID *uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type Order struct {
	id            uuid.UUID
	date          time.Time
	items         []LineItem
	total         decimal.Decimal
	clientName    *string
	serviceType   ServiceType
	paymentMethod PaymentMethod
	createdAt     time.Time
}

// NewOrder recomputes the total from its line items; a client-supplied total
// is never trusted.
func NewOrder(date time.Time, items []LineItem, clientName *string, serviceType ServiceType, paymentMethod PaymentMethod) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if !serviceType.IsValid() {
		return nil, ErrInvalidServiceType
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		total = total.Add(item.Subtotal())
	}

	return &Order{
		id:            uuid.New(),
		date:          date,
		items:         items,
		total:         total,
		clientName:    clientName,
		serviceType:   serviceType,
		paymentMethod: paymentMethod,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	date time.Time,
	items []LineItem,
	total decimal.Decimal,
	clientName *string,
	serviceType ServiceType,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) *Order {
	return &Order{
		id:            id,
		date:          date,
		items:         items,
		total:         total,
		clientName:    clientName,
		serviceType:   serviceType,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
	}
}

func (o *Order) IsCash() bool {
	return o.paymentMethod == PaymentCash
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) Date() time.Time              { return o.date }
func (o *Order) Items() []LineItem            { return o.items }
func (o *Order) Total() decimal.Decimal       { return o.total }
func (o *Order) ClientName() *string          { return o.clientName }
func (o *Order) ServiceType() ServiceType     { return o.serviceType }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
