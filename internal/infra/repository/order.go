package repository

import (
	"context"
	"time"

	"caja-api/internal/domain/order"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists the order header and its line items atomically.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertOrder(ctx, tx, o); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit order", err)
	}
	return nil
}

// insertOrder writes the order header and line items on the given executor;
// callers own the surrounding transaction.
func insertOrder(ctx context.Context, db execer, o *order.Order) error {
	_, err := db.Exec(ctx, `
		INSERT INTO orders (id, date, total, client_name, service_type, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID(), o.Date(), pgconv.DecimalToNumeric(o.Total()), o.ClientName(),
		o.ServiceType().String(), o.PaymentMethod().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, item := range o.Items() {
		_, err = db.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), o.ID(), item.ProductID, item.Name,
			pgconv.DecimalToNumeric(item.UnitPrice), item.Quantity,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return infra.WrapRepoErr("order item references unknown product", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	orders, err := r.query(ctx, `WHERE o.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return orders[0], nil
}

// List returns orders within the half-open interval [from, to), newest first.
// Nil bounds are unbounded.
func (r *OrderRepository) List(ctx context.Context, from, to *time.Time) ([]*order.Order, error) {
	return r.query(ctx,
		`WHERE ($1::timestamptz IS NULL OR o.date >= $1) AND ($2::timestamptz IS NULL OR o.date < $2)`,
		from, to,
	)
}

// CashTotals sums order totals per payment method over [from, to); used by the
// drawer report and by day-close reconciliation.
func (r *OrderRepository) CashTotals(ctx context.Context, from time.Time, to time.Time) (cashSales, cardSales decimal.Decimal, err error) {
	var cash, card pgtype.Numeric
	err = r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(total) FILTER (WHERE payment_method = 'efectivo'), 0),
			COALESCE(SUM(total) FILTER (WHERE payment_method = 'tarjeta'), 0)
		FROM orders
		WHERE date >= $1 AND date < $2`,
		from, to,
	).Scan(&cash, &card)
	if err != nil {
		return decimal.Zero, decimal.Zero, infra.WrapRepoErr("failed to sum sales", err)
	}

	cashSales, err = pgconv.DecimalFromNumeric(cash)
	if err != nil {
		return decimal.Zero, decimal.Zero, infra.WrapRepoErr("stored cash total is invalid", err)
	}
	cardSales, err = pgconv.DecimalFromNumeric(card)
	if err != nil {
		return decimal.Zero, decimal.Zero, infra.WrapRepoErr("stored card total is invalid", err)
	}
	return cashSales, cardSales, nil
}

func (r *OrderRepository) query(ctx context.Context, where string, args ...any) ([]*order.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.date, o.total, o.client_name, o.service_type, o.payment_method, o.created_at,
		       i.product_id, i.name, i.unit_price, i.quantity
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		`+where+`
		ORDER BY o.date DESC, o.id, i.id`,
		args...,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query orders", err)
	}
	defer rows.Close()

	type orderHeader struct {
		id            uuid.UUID
		date          time.Time
		total         pgtype.Numeric
		clientName    pgtype.Text
		serviceType   string
		paymentMethod string
		createdAt     pgtype.Timestamptz
	}

	var (
		result  []*order.Order
		current orderHeader
		items   []order.LineItem
	)

	flush := func() error {
		if current.id == uuid.Nil {
			return nil
		}
		total, err := pgconv.DecimalFromNumeric(current.total)
		if err != nil {
			return infra.WrapRepoErr("stored order total is invalid", err)
		}
		result = append(result, order.ReconstructOrder(
			current.id, current.date, items, total,
			pgconv.StringPtrFromPgtype(current.clientName),
			order.ServiceType(current.serviceType),
			order.PaymentMethod(current.paymentMethod),
			pgconv.TimeFromPgtype(current.createdAt),
		))
		items = nil
		return nil
	}

	for rows.Next() {
		var (
			h         orderHeader
			productID pgtype.UUID
			itemName  string
			unitPrice pgtype.Numeric
			quantity  int32
		)
		err := rows.Scan(&h.id, &h.date, &h.total, &h.clientName,
			&h.serviceType, &h.paymentMethod, &h.createdAt,
			&productID, &itemName, &unitPrice, &quantity)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}

		if h.id != current.id {
			if err := flush(); err != nil {
				return nil, err
			}
			current = h
		}

		price, err := pgconv.DecimalFromNumeric(unitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("stored unit price is invalid", err)
		}
		items = append(items, order.LineItem{
			ProductID: pgconv.UUIDPtrFromPgtype(productID),
			Name:      itemName,
			UnitPrice: price,
			Quantity:  quantity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return result, nil
}
