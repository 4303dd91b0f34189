package usecase

import (
	"context"
	"errors"
	"time"

	"caja-api/internal/domain/order"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/clock"
	"caja-api/internal/pkg/errs"
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	List(ctx context.Context, from, to *time.Time) ([]*order.Order, error)
	CashTotals(ctx context.Context, from, to time.Time) (cashSales, cardSales decimal.Decimal, err error)
}

type CheckoutItem struct {
	ProductID uuid.UUID
	Quantity  int32
}

type CheckoutParams struct {
	Items         []CheckoutItem
	ClientName    *string
	ServiceType   string
	PaymentMethod string
}

type OrderUseCase interface {
	Checkout(ctx context.Context, params CheckoutParams) (*readmodel.OrderRM, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*readmodel.OrderRM, error)
	ListOrders(ctx context.Context, from, to *time.Time) ([]*readmodel.OrderRM, error)
}

type orderUseCaseImpl struct {
	orders   OrderRepository
	products ProductRepository
	clock    clock.Clock
}

func NewOrderUseCase(orders OrderRepository, products ProductRepository, clk clock.Clock) OrderUseCase {
	return &orderUseCaseImpl{
		orders:   orders,
		products: products,
		clock:    clk,
	}
}

// Checkout prices every line from the current catalog; client-supplied prices
// are never accepted.
func (u *orderUseCaseImpl) Checkout(ctx context.Context, params CheckoutParams) (*readmodel.OrderRM, error) {
	if len(params.Items) == 0 {
		return nil, order.ErrEmptyCart
	}

	items := make([]order.LineItem, len(params.Items))
	for i, item := range params.Items {
		p, err := u.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrProductNotFound)
			}
			return nil, errs.Wrap(err, "failed to find product")
		}

		productID := p.ID()
		items[i] = order.LineItem{
			ProductID: &productID,
			Name:      p.Name(),
			UnitPrice: p.Price(),
			Quantity:  item.Quantity,
		}
	}

	o, err := order.NewOrder(
		u.clock.Now(), items, params.ClientName,
		order.ServiceType(params.ServiceType),
		order.PaymentMethod(params.PaymentMethod),
	)
	if err != nil {
		return nil, err
	}

	if err := u.orders.Create(ctx, o); err != nil {
		return nil, errs.Wrap(err, "failed to create order")
	}
	return toOrderRM(o), nil
}

func (u *orderUseCaseImpl) GetOrder(ctx context.Context, id uuid.UUID) (*readmodel.OrderRM, error) {
	o, err := u.orders.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return toOrderRM(o), nil
}

func (u *orderUseCaseImpl) ListOrders(ctx context.Context, from, to *time.Time) ([]*readmodel.OrderRM, error) {
	orders, err := u.orders.List(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}

	result := make([]*readmodel.OrderRM, len(orders))
	for i, o := range orders {
		result[i] = toOrderRM(o)
	}
	return result, nil
}

func toOrderRM(o *order.Order) *readmodel.OrderRM {
	items := make([]readmodel.OrderItemRM, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = readmodel.OrderItemRM{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return &readmodel.OrderRM{
		ID:            o.ID(),
		Date:          o.Date(),
		Items:         items,
		Total:         o.Total(),
		ClientName:    o.ClientName(),
		ServiceType:   o.ServiceType().String(),
		PaymentMethod: o.PaymentMethod().String(),
	}
}
