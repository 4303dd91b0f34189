package usecase

import (
	"context"
	"errors"
	"time"

	"caja-api/internal/domain/cashier"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/clock"
	"caja-api/internal/pkg/errs"
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCashSessionNotFound = errors.New("cash session not found")
	ErrSessionAlreadyOpen  = errors.New("a cash session is already open")
	ErrNoOpenSession       = errors.New("no open cash session")
)

type CashSessionRepository interface {
	Create(ctx context.Context, s *cashier.Session) error
	FindOpen(ctx context.Context) (*cashier.Session, error)
	FindByID(ctx context.Context, id uuid.UUID) (*cashier.Session, error)
	Close(ctx context.Context, s *cashier.Session) error
	List(ctx context.Context) ([]*cashier.Session, error)
}

type CashierUseCase interface {
	OpenDay(ctx context.Context, startAmount decimal.Decimal) (*readmodel.CashSessionRM, error)
	CloseDay(ctx context.Context, countedAmount decimal.Decimal) (*readmodel.CashCloseRM, error)
	CurrentReport(ctx context.Context) (*readmodel.DrawerReportRM, error)
	History(ctx context.Context) ([]*readmodel.CashSessionRM, error)
}

type cashierUseCaseImpl struct {
	sessions CashSessionRepository
	orders   OrderRepository
	expenses ExpenseRepository
	clock    clock.Clock
}

func NewCashierUseCase(
	sessions CashSessionRepository,
	orders OrderRepository,
	expenses ExpenseRepository,
	clk clock.Clock,
) CashierUseCase {
	return &cashierUseCaseImpl{
		sessions: sessions,
		orders:   orders,
		expenses: expenses,
		clock:    clk,
	}
}

func (u *cashierUseCaseImpl) OpenDay(ctx context.Context, startAmount decimal.Decimal) (*readmodel.CashSessionRM, error) {
	session, err := cashier.NewSession(startAmount, u.clock.Now())
	if err != nil {
		return nil, err
	}

	// The partial unique index on open sessions turns a concurrent second
	// open into a duplicate-key error instead of a racy read-then-insert.
	if err := u.sessions.Create(ctx, session); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrSessionAlreadyOpen)
		}
		return nil, errs.Wrap(err, "failed to open cash session")
	}
	rm := toCashSessionRM(session)
	return &rm, nil
}

func (u *cashierUseCaseImpl) CloseDay(ctx context.Context, countedAmount decimal.Decimal) (*readmodel.CashCloseRM, error) {
	session, err := u.findOpen(ctx)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	cashSales, cashExpenses, err := u.windowCashFlows(ctx, session.StartDate(), now)
	if err != nil {
		return nil, err
	}

	rec, err := session.Close(countedAmount, cashSales, cashExpenses, now)
	if err != nil {
		return nil, err
	}

	if err := u.sessions.Close(ctx, session); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoOpenSession)
		}
		return nil, errs.Wrap(err, "failed to close cash session")
	}

	return &readmodel.CashCloseRM{
		Session:      toCashSessionRM(session),
		CashSales:    cashSales,
		CashExpenses: cashExpenses,
		Expected:     rec.Expected,
		Difference:   rec.Difference,
		Verdict:      rec.Verdict.String(),
	}, nil
}

func (u *cashierUseCaseImpl) CurrentReport(ctx context.Context) (*readmodel.DrawerReportRM, error) {
	session, err := u.findOpen(ctx)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	cashSales, cardSales, err := u.orders.CashTotals(ctx, session.StartDate(), now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sum sales")
	}
	cashExpenses, err := u.expenses.SumAmounts(ctx, session.StartDate(), now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sum expenses")
	}

	return &readmodel.DrawerReportRM{
		Session:      toCashSessionRM(session),
		CashSales:    cashSales,
		CardSales:    cardSales,
		CashExpenses: cashExpenses,
		ExpectedCash: cashier.ExpectedAmount(session.StartAmount(), cashSales, cashExpenses),
	}, nil
}

func (u *cashierUseCaseImpl) History(ctx context.Context) ([]*readmodel.CashSessionRM, error) {
	sessions, err := u.sessions.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list cash sessions")
	}

	result := make([]*readmodel.CashSessionRM, len(sessions))
	for i, s := range sessions {
		rm := toCashSessionRM(s)
		result[i] = &rm
	}
	return result, nil
}

func (u *cashierUseCaseImpl) findOpen(ctx context.Context) (*cashier.Session, error) {
	session, err := u.sessions.FindOpen(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoOpenSession)
		}
		return nil, errs.Wrap(err, "failed to find open cash session")
	}
	return session, nil
}

func (u *cashierUseCaseImpl) windowCashFlows(ctx context.Context, from, to time.Time) (cashSales, cashExpenses decimal.Decimal, err error) {
	cashSales, _, err = u.orders.CashTotals(ctx, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, errs.Wrap(err, "failed to sum sales")
	}
	cashExpenses, err = u.expenses.SumAmounts(ctx, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, errs.Wrap(err, "failed to sum expenses")
	}
	return cashSales, cashExpenses, nil
}

func toCashSessionRM(s *cashier.Session) readmodel.CashSessionRM {
	return readmodel.CashSessionRM{
		ID:          s.ID(),
		StartDate:   s.StartDate(),
		StartAmount: s.StartAmount(),
		Status:      s.Status().String(),
		EndDate:     s.EndDate(),
		EndAmount:   s.EndAmount(),
	}
}
