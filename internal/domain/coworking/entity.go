package coworking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSessionNotActive = errors.New("session is not active")
	ErrInvalidQuantity  = errors.New("extra quantity must be at least 1")
	ErrExtraNotFound    = errors.New("extra not found in session")
	ErrEmptyClientName  = errors.New("client name is required")
)

// Extra is a consumed line item. UnitPrice is captured at consumption time so
// later catalog edits do not change what the client owes.
type Extra struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int32
}

// Session tracks one billed occupancy interval. Once finished it is immutable
// history: end time, total and status are set exactly once.
type Session struct {
	id         uuid.UUID
	clientName string
	startTime  time.Time
	endTime    *time.Time
	status     Status
	extras     []Extra
	total      decimal.Decimal
	createdAt  time.Time
	updatedAt  time.Time
}

func NewSession(clientName string, startTime time.Time) (*Session, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, ErrEmptyClientName
	}
	return &Session{
		id:         uuid.New(),
		clientName: clientName,
		startTime:  startTime,
		status:     StatusActive,
		total:      decimal.Zero,
	}, nil
}

func ReconstructSession(
	id uuid.UUID,
	clientName string,
	startTime time.Time,
	endTime *time.Time,
	status Status,
	extras []Extra,
	total decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:         id,
		clientName: clientName,
		startTime:  startTime,
		endTime:    endTime,
		status:     status,
		extras:     extras,
		total:      total,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Session) IsActive() bool {
	return s.status == StatusActive
}

func (s *Session) AddExtra(productID uuid.UUID, name string, unitPrice decimal.Decimal, quantity int32) error {
	if !s.IsActive() {
		return ErrSessionNotActive
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i, e := range s.extras {
		if e.ProductID == productID {
			s.extras[i].Quantity += quantity
			return nil
		}
	}

	s.extras = append(s.extras, Extra{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
	return nil
}

func (s *Session) RemoveExtra(productID uuid.UUID) error {
	if !s.IsActive() {
		return ErrSessionNotActive
	}
	for i, e := range s.extras {
		if e.ProductID == productID {
			s.extras = append(s.extras[:i], s.extras[i+1:]...)
			return nil
		}
	}
	return ErrExtraNotFound
}

// Quote is the live estimate shown while the session runs. It never mutates
// the session, so calling it repeatedly with the same end time is idempotent.
func (s *Session) Quote(pricing Pricing, at time.Time) (TimeCharge, decimal.Decimal) {
	charge := pricing.CalculateTimeCharge(s.startTime, at)
	return charge, ExtrasTotal(s.extras)
}

// Finish closes the session: computes the final total from the time charge and
// the consumed extras, stamps the end time and flips the status.
func (s *Session) Finish(pricing Pricing, endTime time.Time) (TimeCharge, error) {
	if !s.IsActive() {
		return TimeCharge{}, ErrSessionNotActive
	}

	charge := pricing.CalculateTimeCharge(s.startTime, endTime)
	s.total = charge.Cost.Add(ExtrasTotal(s.extras))
	s.endTime = &endTime
	s.status = StatusFinished
	return charge, nil
}

func (s *Session) ID() uuid.UUID          { return s.id }
func (s *Session) ClientName() string     { return s.clientName }
func (s *Session) StartTime() time.Time   { return s.startTime }
func (s *Session) EndTime() *time.Time    { return s.endTime }
func (s *Session) Status() Status         { return s.status }
func (s *Session) Extras() []Extra        { return s.extras }
func (s *Session) Total() decimal.Decimal { return s.total }
func (s *Session) CreatedAt() time.Time   { return s.createdAt }
func (s *Session) UpdatedAt() time.Time   { return s.updatedAt }
