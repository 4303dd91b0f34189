//go:build unit || e2e

package builder

import (
	"caja-api/internal/domain/product"
	reqdto "caja-api/internal/handler/dto/request"
	"caja-api/internal/usecase"
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	Name        string
	Price       string
	Cost        string
	Stock       int32
	Description string
	ImageURL    string
	Category    string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Name:     "Cafe americano",
		Price:    "35",
		Cost:     "12",
		Stock:    100,
		Category: "cafeteria",
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProductBuilder) BuildDomain() (*product.Product, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return nil, err
	}
	cost, err := decimal.NewFromString(p.Cost)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(p.Name, price, cost, p.Stock, p.Description, p.ImageURL, product.Category(p.Category))
}

func (p *ProductBuilder) BuildReadModel() *readmodel.ProductRM {
	price, _ := decimal.NewFromString(p.Price)
	cost, _ := decimal.NewFromString(p.Cost)
	return &readmodel.ProductRM{
		ID:          uuid.New(),
		Name:        p.Name,
		Price:       price,
		Cost:        cost,
		Stock:       p.Stock,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
}

func (p *ProductBuilder) BuildRequestDTO() reqdto.ProductRequest {
	return reqdto.ProductRequest{
		Name:        p.Name,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
}

func (p *ProductBuilder) BuildParams() usecase.ProductParams {
	return usecase.ProductParams{
		Name:        p.Name,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
}

// Fluent builder methods
func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPrice(price string) *ProductBuilder {
	p.Price = price
	return p
}

func (p *ProductBuilder) WithStock(stock int32) *ProductBuilder {
	p.Stock = stock
	return p
}

func (p *ProductBuilder) WithCategory(category string) *ProductBuilder {
	p.Category = category
	return p
}
