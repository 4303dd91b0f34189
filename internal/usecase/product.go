package usecase

import (
	"context"

	"caja-api/internal/domain/product"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/errs"
	"caja-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product) error
	UpsertByName(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	List(ctx context.Context) ([]*product.Product, error)
}

type ProductParams struct {
	Name        string
	Price       string
	Cost        string
	Stock       int32
	Description string
	ImageURL    string
	Category    string
}

type ProductUseCase interface {
	CreateProduct(ctx context.Context, params ProductParams) (*readmodel.ProductRM, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params ProductParams) (*readmodel.ProductRM, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error)
	ListProducts(ctx context.Context) ([]*readmodel.ProductRM, error)
	ImportProducts(ctx context.Context, params []ProductParams) (int, error)
}

type productUseCaseImpl struct {
	products ProductRepository
}

func NewProductUseCase(products ProductRepository) ProductUseCase {
	return &productUseCaseImpl{products: products}
}

func (u *productUseCaseImpl) CreateProduct(ctx context.Context, params ProductParams) (*readmodel.ProductRM, error) {
	p, err := buildProduct(params)
	if err != nil {
		return nil, err
	}

	if err := u.products.Create(ctx, p); err != nil {
		return nil, errs.Wrap(err, "failed to create product")
	}
	return toProductRM(p), nil
}

func (u *productUseCaseImpl) UpdateProduct(ctx context.Context, id uuid.UUID, params ProductParams) (*readmodel.ProductRM, error) {
	existing, err := u.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, errs.Wrap(err, "failed to find product")
	}

	p, err := buildProduct(params)
	if err != nil {
		return nil, err
	}
	p = product.ReconstructProduct(
		existing.ID(), p.Name(), p.Price(), p.Cost(), p.Stock(),
		p.Description(), p.ImageURL(), p.Category(),
		existing.CreatedAt(), existing.UpdatedAt(),
	)

	if err := u.products.Update(ctx, p); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, errs.Wrap(err, "failed to update product")
	}
	return toProductRM(p), nil
}

func (u *productUseCaseImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := u.products.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrProductNotFound)
		}
		return errs.Wrap(err, "failed to delete product")
	}
	return nil
}

func (u *productUseCaseImpl) GetProduct(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, errs.Wrap(err, "failed to find product")
	}
	return toProductRM(p), nil
}

func (u *productUseCaseImpl) ListProducts(ctx context.Context) ([]*readmodel.ProductRM, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products")
	}

	result := make([]*readmodel.ProductRM, len(products))
	for i, p := range products {
		result[i] = toProductRM(p)
	}
	return result, nil
}

// ImportProducts bulk-loads a catalog snapshot, matching existing rows by
// case-insensitive name so re-imports update instead of duplicating. Rows are
// validated up front: a single bad row rejects the whole batch.
func (u *productUseCaseImpl) ImportProducts(ctx context.Context, params []ProductParams) (int, error) {
	products := make([]*product.Product, len(params))
	for i, row := range params {
		p, err := buildProduct(row)
		if err != nil {
			return 0, errs.Wrap(err, "invalid import row")
		}
		products[i] = p
	}

	for _, p := range products {
		if err := u.products.UpsertByName(ctx, p); err != nil {
			return 0, errs.Wrap(err, "failed to import product")
		}
	}
	return len(products), nil
}

func buildProduct(params ProductParams) (*product.Product, error) {
	price, err := decimalFromInput(params.Price)
	if err != nil {
		return nil, err
	}
	cost, err := decimalFromInput(params.Cost)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(
		params.Name, price, cost, params.Stock,
		params.Description, params.ImageURL,
		product.Category(params.Category),
	)
}

func toProductRM(p *product.Product) *readmodel.ProductRM {
	return &readmodel.ProductRM{
		ID:          p.ID(),
		Name:        p.Name(),
		Price:       p.Price(),
		Cost:        p.Cost(),
		Stock:       p.Stock(),
		Description: p.Description(),
		ImageURL:    p.ImageURL(),
		Category:    p.Category().String(),
	}
}
