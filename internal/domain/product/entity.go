package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("product name is required")
	ErrNegativePrice   = errors.New("product price cannot be negative")
	ErrNegativeCost    = errors.New("product cost cannot be negative")
	ErrNegativeStock   = errors.New("product stock cannot be negative")
	ErrInvalidCategory = errors.New("invalid product category")
)

type Product struct {
	id          uuid.UUID
	name        string
	price       decimal.Decimal
	cost        decimal.Decimal
	stock       int32
	description string
	imageURL    string
	category    Category
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(name string, price, cost decimal.Decimal, stock int32, description, imageURL string, category Category) (*Product, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil, ErrEmptyName
	case price.IsNegative():
		return nil, ErrNegativePrice
	case cost.IsNegative():
		return nil, ErrNegativeCost
	case stock < 0:
		return nil, ErrNegativeStock
	case !category.IsValid():
		return nil, ErrInvalidCategory
	}

	return &Product{
		id:          uuid.New(),
		name:        name,
		price:       price,
		cost:        cost,
		stock:       stock,
		description: description,
		imageURL:    imageURL,
		category:    category,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name string,
	price, cost decimal.Decimal,
	stock int32,
	description, imageURL string,
	category Category,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		price:       price,
		cost:        cost,
		stock:       stock,
		description: description,
		imageURL:    imageURL,
		category:    category,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) ID() uuid.UUID          { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Cost() decimal.Decimal  { return p.cost }
func (p *Product) Stock() int32           { return p.stock }
func (p *Product) Description() string    { return p.description }
func (p *Product) ImageURL() string       { return p.imageURL }
func (p *Product) Category() Category     { return p.category }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }
