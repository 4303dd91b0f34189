//go:build unit

package usecase

import (
	"context"
	"testing"
	"time"

	"caja-api/internal/domain/coworking"
	"caja-api/internal/domain/order"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCoworkingRepository struct {
	mock.Mock
}

func (m *MockCoworkingRepository) Create(ctx context.Context, s *coworking.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockCoworkingRepository) FindByID(ctx context.Context, id uuid.UUID) (*coworking.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coworking.Session), args.Error(1)
}

func (m *MockCoworkingRepository) SaveExtras(ctx context.Context, s *coworking.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockCoworkingRepository) FinishWithOrder(ctx context.Context, s *coworking.Session, o *order.Order) error {
	args := m.Called(ctx, s, o)
	return args.Error(0)
}

func (m *MockCoworkingRepository) ListByStatus(ctx context.Context, status coworking.Status) ([]*coworking.Session, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*coworking.Session), args.Error(1)
}

func activeSessionWithCoffee(t *testing.T, start time.Time, productID uuid.UUID) *coworking.Session {
	t.Helper()
	session, err := coworking.NewSession("Ana", start)
	require.NoError(t, err)
	require.NoError(t, session.AddExtra(productID, "Cafe americano", decimal.NewFromInt(35), 2))
	return session
}

func TestFinishSession(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	productID := uuid.New()
	pricing := coworking.DefaultPricing()

	t.Run("persists the finished session and its sale in one call", func(t *testing.T) {
		session := activeSessionWithCoffee(t, start, productID)
		sessions := new(MockCoworkingRepository)
		sessions.On("FindByID", mock.Anything, session.ID()).Return(session, nil)
		sessions.On("FinishWithOrder", mock.Anything, session, mock.MatchedBy(func(o *order.Order) bool {
			// 45 min inside the first hour (58) plus two coffees (70)
			return o.Total().Equal(decimal.NewFromInt(128)) &&
				len(o.Items()) == 2 &&
				o.Items()[0].Name == "Coworking: Ana" &&
				o.Items()[0].ProductID == nil &&
				o.ServiceType() == order.ServiceCoworking
		})).Return(nil)

		uc := NewCoworkingUseCase(sessions, nil, pricing, clock.NewMockClock(start.Add(45*time.Minute)))

		rm, err := uc.FinishSession(context.Background(), session.ID(), "efectivo")
		require.NoError(t, err)
		assert.True(t, rm.Total.Equal(decimal.NewFromInt(128)))
		assert.Equal(t, "finished", session.Status().String())

		sessions.AssertExpectations(t)
		sessions.AssertNumberOfCalls(t, "FinishWithOrder", 1)
	})

	t.Run("persist failure surfaces without recording a sale separately", func(t *testing.T) {
		session := activeSessionWithCoffee(t, start, productID)
		sessions := new(MockCoworkingRepository)
		sessions.On("FindByID", mock.Anything, session.ID()).Return(session, nil)
		sessions.On("FinishWithOrder", mock.Anything, session, mock.Anything).
			Return(infra.WrapRepoErr("failed to commit coworking finish", assert.AnError))

		uc := NewCoworkingUseCase(sessions, nil, pricing, clock.NewMockClock(start.Add(45*time.Minute)))

		rm, err := uc.FinishSession(context.Background(), session.ID(), "efectivo")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrSessionNotActive)
		assert.Nil(t, rm)

		sessions.AssertExpectations(t)
	})

	t.Run("losing the finish race maps to session not active", func(t *testing.T) {
		session := activeSessionWithCoffee(t, start, productID)
		sessions := new(MockCoworkingRepository)
		sessions.On("FindByID", mock.Anything, session.ID()).Return(session, nil)
		sessions.On("FinishWithOrder", mock.Anything, session, mock.Anything).
			Return(infra.WrapRepoErr("active coworking session not found", nil, infra.KindNotFound))

		uc := NewCoworkingUseCase(sessions, nil, pricing, clock.NewMockClock(start.Add(45*time.Minute)))

		_, err := uc.FinishSession(context.Background(), session.ID(), "efectivo")
		assert.ErrorIs(t, err, ErrSessionNotActive)
	})

	t.Run("unknown session", func(t *testing.T) {
		sessions := new(MockCoworkingRepository)
		sessions.On("FindByID", mock.Anything, mock.Anything).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		uc := NewCoworkingUseCase(sessions, nil, pricing, clock.NewMockClock(start))

		_, err := uc.FinishSession(context.Background(), uuid.New(), "efectivo")
		assert.ErrorIs(t, err, ErrCoworkingSessionNotFound)
	})
}
