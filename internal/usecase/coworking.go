package usecase

import (
	"context"
	"errors"
	"fmt"

	"caja-api/internal/domain/coworking"
	"caja-api/internal/domain/order"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/clock"
	"caja-api/internal/pkg/errs"
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCoworkingSessionNotFound = errors.New("coworking session not found")
	ErrSessionNotActive         = errors.New("coworking session is not active")
	ErrProductNotFound          = errors.New("product not found")
)

type CoworkingRepository interface {
	Create(ctx context.Context, s *coworking.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*coworking.Session, error)
	SaveExtras(ctx context.Context, s *coworking.Session) error
	// FinishWithOrder must persist the session's terminal state and the billed
	// order atomically.
	FinishWithOrder(ctx context.Context, s *coworking.Session, o *order.Order) error
	ListByStatus(ctx context.Context, status coworking.Status) ([]*coworking.Session, error)
}

type CoworkingUseCase interface {
	StartSession(ctx context.Context, clientName string) (*readmodel.CoworkingSessionRM, error)
	AddExtra(ctx context.Context, sessionID, productID uuid.UUID, quantity int32) (*readmodel.CoworkingSessionRM, error)
	RemoveExtra(ctx context.Context, sessionID, productID uuid.UUID) (*readmodel.CoworkingSessionRM, error)
	Quote(ctx context.Context, sessionID uuid.UUID) (*readmodel.CoworkingQuoteRM, error)
	FinishSession(ctx context.Context, sessionID uuid.UUID, paymentMethod string) (*readmodel.OrderRM, error)
	ListActive(ctx context.Context) ([]*readmodel.CoworkingSessionRM, error)
	ListFinished(ctx context.Context) ([]*readmodel.CoworkingSessionRM, error)
}

type coworkingUseCaseImpl struct {
	sessions CoworkingRepository
	products ProductRepository
	pricing  coworking.Pricing
	clock    clock.Clock
}

func NewCoworkingUseCase(
	sessions CoworkingRepository,
	products ProductRepository,
	pricing coworking.Pricing,
	clk clock.Clock,
) CoworkingUseCase {
	return &coworkingUseCaseImpl{
		sessions: sessions,
		products: products,
		pricing:  pricing,
		clock:    clk,
	}
}

func (u *coworkingUseCaseImpl) StartSession(ctx context.Context, clientName string) (*readmodel.CoworkingSessionRM, error) {
	session, err := coworking.NewSession(clientName, u.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, errs.Wrap(err, "failed to create coworking session")
	}
	return toCoworkingSessionRM(session), nil
}

func (u *coworkingUseCaseImpl) AddExtra(ctx context.Context, sessionID, productID uuid.UUID, quantity int32) (*readmodel.CoworkingSessionRM, error) {
	session, err := u.findActive(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	p, err := u.products.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, errs.Wrap(err, "failed to find product")
	}

	if err := session.AddExtra(p.ID(), p.Name(), p.Price(), quantity); err != nil {
		return nil, err
	}
	if err := u.sessions.SaveExtras(ctx, session); err != nil {
		return nil, errs.Wrap(err, "failed to save extras")
	}
	return toCoworkingSessionRM(session), nil
}

func (u *coworkingUseCaseImpl) RemoveExtra(ctx context.Context, sessionID, productID uuid.UUID) (*readmodel.CoworkingSessionRM, error) {
	session, err := u.findActive(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.RemoveExtra(productID); err != nil {
		return nil, err
	}
	if err := u.sessions.SaveExtras(ctx, session); err != nil {
		return nil, errs.Wrap(err, "failed to save extras")
	}
	return toCoworkingSessionRM(session), nil
}

func (u *coworkingUseCaseImpl) Quote(ctx context.Context, sessionID uuid.UUID) (*readmodel.CoworkingQuoteRM, error) {
	session, err := u.findActive(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	charge, extras := session.Quote(u.pricing, u.clock.Now())
	return &readmodel.CoworkingQuoteRM{
		SessionID:  session.ID(),
		Minutes:    charge.Minutes,
		TimeCost:   charge.Cost,
		ExtrasCost: extras,
		Total:      charge.Cost.Add(extras),
	}, nil
}

// FinishSession closes the session and records the charge as a regular sale so
// it shows up in daily totals and the cash drawer alongside counter orders.
func (u *coworkingUseCaseImpl) FinishSession(ctx context.Context, sessionID uuid.UUID, paymentMethod string) (*readmodel.OrderRM, error) {
	session, err := u.findActive(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	charge, err := session.Finish(u.pricing, now)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(session.Extras())+1)
	items = append(items, order.LineItem{
		Name:      fmt.Sprintf("Coworking: %s", session.ClientName()),
		UnitPrice: charge.Cost,
		Quantity:  1,
	})
	for _, e := range session.Extras() {
		productID := e.ProductID
		items = append(items, order.LineItem{
			ProductID: &productID,
			Name:      e.Name,
			UnitPrice: e.UnitPrice,
			Quantity:  e.Quantity,
		})
	}

	clientName := session.ClientName()
	o, err := order.NewOrder(now, items, &clientName, order.ServiceCoworking, order.PaymentMethod(paymentMethod))
	if err != nil {
		return nil, err
	}

	if err := u.sessions.FinishWithOrder(ctx, session, o); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSessionNotActive)
		}
		return nil, errs.Wrap(err, "failed to finish coworking session")
	}
	return toOrderRM(o), nil
}

func (u *coworkingUseCaseImpl) ListActive(ctx context.Context) ([]*readmodel.CoworkingSessionRM, error) {
	return u.listByStatus(ctx, coworking.StatusActive)
}

func (u *coworkingUseCaseImpl) ListFinished(ctx context.Context) ([]*readmodel.CoworkingSessionRM, error) {
	return u.listByStatus(ctx, coworking.StatusFinished)
}

func (u *coworkingUseCaseImpl) listByStatus(ctx context.Context, status coworking.Status) ([]*readmodel.CoworkingSessionRM, error) {
	sessions, err := u.sessions.ListByStatus(ctx, status)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list coworking sessions")
	}

	result := make([]*readmodel.CoworkingSessionRM, len(sessions))
	for i, s := range sessions {
		result[i] = toCoworkingSessionRM(s)
	}
	return result, nil
}

func (u *coworkingUseCaseImpl) findActive(ctx context.Context, sessionID uuid.UUID) (*coworking.Session, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCoworkingSessionNotFound)
		}
		return nil, errs.Wrap(err, "failed to find coworking session")
	}
	if !session.IsActive() {
		return nil, ErrSessionNotActive
	}
	return session, nil
}

func toCoworkingSessionRM(s *coworking.Session) *readmodel.CoworkingSessionRM {
	extras := make([]readmodel.CoworkingExtraRM, len(s.Extras()))
	for i, e := range s.Extras() {
		extras[i] = readmodel.CoworkingExtraRM{
			ProductID: e.ProductID,
			Name:      e.Name,
			UnitPrice: e.UnitPrice,
			Quantity:  e.Quantity,
		}
	}
	return &readmodel.CoworkingSessionRM{
		ID:         s.ID(),
		ClientName: s.ClientName(),
		StartTime:  s.StartTime(),
		EndTime:    s.EndTime(),
		Status:     s.Status().String(),
		Extras:     extras,
		Total:      s.Total(),
	}
}
