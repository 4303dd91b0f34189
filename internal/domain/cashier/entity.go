package cashier

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSessionClosed       = errors.New("cash session is already closed")
	ErrNegativeStartAmount = errors.New("start amount cannot be negative")
	ErrNegativeEndAmount   = errors.New("counted amount cannot be negative")
)

// Session is one cash-drawer operating window ("day"). At most one session may
// be open at a time; the repository enforces that with a partial unique index
// so concurrent open attempts cannot race past an application-level scan.
type Session struct {
	id          uuid.UUID
	startDate   time.Time
	startAmount decimal.Decimal
	status      Status
	endDate     *time.Time
	endAmount   *decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSession(startAmount decimal.Decimal, startDate time.Time) (*Session, error) {
	if startAmount.IsNegative() {
		return nil, ErrNegativeStartAmount
	}
	return &Session{
		id:          uuid.New(),
		startDate:   startDate,
		startAmount: startAmount,
		status:      StatusOpen,
	}, nil
}

func ReconstructSession(
	id uuid.UUID,
	startDate time.Time,
	startAmount decimal.Decimal,
	status Status,
	endDate *time.Time,
	endAmount *decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:          id,
		startDate:   startDate,
		startAmount: startAmount,
		status:      status,
		endDate:     endDate,
		endAmount:   endAmount,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Session) IsOpen() bool {
	return s.status == StatusOpen
}

// Close records the counted amount and reconciles it against the pre-filtered
// cash sales and expenses of the session window. Closed is terminal.
func (s *Session) Close(countedAmount, cashSales, cashExpenses decimal.Decimal, endDate time.Time) (Reconciliation, error) {
	if !s.IsOpen() {
		return Reconciliation{}, ErrSessionClosed
	}
	if countedAmount.IsNegative() {
		return Reconciliation{}, ErrNegativeEndAmount
	}

	rec := Reconcile(s.startAmount, cashSales, cashExpenses, countedAmount)
	s.endAmount = &countedAmount
	s.endDate = &endDate
	s.status = StatusClosed
	return rec, nil
}

func (s *Session) ID() uuid.UUID                { return s.id }
func (s *Session) StartDate() time.Time         { return s.startDate }
func (s *Session) StartAmount() decimal.Decimal { return s.startAmount }
func (s *Session) Status() Status               { return s.status }
func (s *Session) EndDate() *time.Time          { return s.endDate }
func (s *Session) EndAmount() *decimal.Decimal  { return s.endAmount }
func (s *Session) CreatedAt() time.Time         { return s.createdAt }
func (s *Session) UpdatedAt() time.Time         { return s.updatedAt }
