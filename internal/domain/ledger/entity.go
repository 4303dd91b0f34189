package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription  = errors.New("transaction description is required")
	ErrNonPositiveAmount = errors.New("transaction amount must be positive")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrEmptyCategoryName = errors.New("category name is required")
)

// Transaction is one household ledger entry, always tied to the member who
// recorded it and to a category.
type Transaction struct {
	id          uuid.UUID
	date        time.Time
	description string
	amount      decimal.Decimal
	txType      TransactionType
	categoryID  uuid.UUID
	memberID    uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTransaction(date time.Time, description string, amount decimal.Decimal, txType TransactionType, categoryID, memberID uuid.UUID) (*Transaction, error) {
	description = strings.TrimSpace(description)
	switch {
	case description == "":
		return nil, ErrEmptyDescription
	case !amount.IsPositive():
		return nil, ErrNonPositiveAmount
	case !txType.IsValid():
		return nil, ErrInvalidType
	}

	return &Transaction{
		id:          uuid.New(),
		date:        date,
		description: description,
		amount:      amount,
		txType:      txType,
		categoryID:  categoryID,
		memberID:    memberID,
	}, nil
}

func ReconstructTransaction(
	id uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	txType TransactionType,
	categoryID, memberID uuid.UUID,
	createdAt, updatedAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		date:        date,
		description: description,
		amount:      amount,
		txType:      txType,
		categoryID:  categoryID,
		memberID:    memberID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Transaction) ID() uuid.UUID            { return t.id }
func (t *Transaction) Date() time.Time          { return t.date }
func (t *Transaction) Description() string      { return t.description }
func (t *Transaction) Amount() decimal.Decimal  { return t.amount }
func (t *Transaction) Type() TransactionType    { return t.txType }
func (t *Transaction) CategoryID() uuid.UUID    { return t.categoryID }
func (t *Transaction) MemberID() uuid.UUID      { return t.memberID }
func (t *Transaction) CreatedAt() time.Time     { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time     { return t.updatedAt }

// Category groups ledger transactions; Icon is a display emoji.
type Category struct {
	id       uuid.UUID
	name     string
	catType  TransactionType
	icon     string
}

func NewCategory(name string, catType TransactionType, icon string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategoryName
	}
	if !catType.IsValid() {
		return nil, ErrInvalidType
	}
	return &Category{
		id:      uuid.New(),
		name:    name,
		catType: catType,
		icon:    icon,
	}, nil
}

func ReconstructCategory(id uuid.UUID, name string, catType TransactionType, icon string) *Category {
	return &Category{id: id, name: name, catType: catType, icon: icon}
}

func (c *Category) ID() uuid.UUID         { return c.id }
func (c *Category) Name() string          { return c.name }
func (c *Category) Type() TransactionType { return c.catType }
func (c *Category) Icon() string          { return c.icon }

// Budget is a monthly cap for one expense category. A non-positive amount
// removes the budget instead of storing a zero row.
type Budget struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}
