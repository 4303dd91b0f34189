package repository

import (
	"context"

	"caja-api/internal/domain/product"
	"caja-api/internal/infra"
	"caja-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

type productRow struct {
	ID          uuid.UUID
	Name        string
	Price       pgtype.Numeric
	Cost        pgtype.Numeric
	Stock       int32
	Description string
	ImageURL    string
	Category    string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

const productColumns = `id, name, price, cost, stock, description, image_url, category, created_at, updated_at`

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, name, price, cost, stock, description, image_url, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID(), p.Name(), pgconv.DecimalToNumeric(p.Price()), pgconv.DecimalToNumeric(p.Cost()),
		p.Stock(), p.Description(), p.ImageURL(), p.Category().String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("product name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $2, price = $3, cost = $4, stock = $5, description = $6,
		    image_url = $7, category = $8, updated_at = now()
		WHERE id = $1`,
		p.ID(), p.Name(), pgconv.DecimalToNumeric(p.Price()), pgconv.DecimalToNumeric(p.Cost()),
		p.Stock(), p.Description(), p.ImageURL(), p.Category().String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("product name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

// UpsertByName backs bulk import: matching is case-insensitive on name, the
// incoming row wins on conflict.
func (r *ProductRepository) UpsertByName(ctx context.Context, p *product.Product) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, name, price, cost, stock, description, image_url, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (lower(name)) DO UPDATE
		SET price = EXCLUDED.price, cost = EXCLUDED.cost, stock = EXCLUDED.stock,
		    description = EXCLUDED.description, image_url = EXCLUDED.image_url,
		    category = EXCLUDED.category, updated_at = now()`,
		p.ID(), p.Name(), pgconv.DecimalToNumeric(p.Price()), pgconv.DecimalToNumeric(p.Cost()),
		p.Stock(), p.Description(), p.ImageURL(), p.Category().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert product", err)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("product is referenced by orders", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return r.scanProduct(row)
}

func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var result []*product.Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}
	return result, nil
}

func (r *ProductRepository) scanProduct(row pgx.Row) (*product.Product, error) {
	var pr productRow
	err := row.Scan(&pr.ID, &pr.Name, &pr.Price, &pr.Cost, &pr.Stock,
		&pr.Description, &pr.ImageURL, &pr.Category, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan product", err)
	}

	price, err := pgconv.DecimalFromNumeric(pr.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("stored price is invalid", err)
	}
	cost, err := pgconv.DecimalFromNumeric(pr.Cost)
	if err != nil {
		return nil, infra.WrapRepoErr("stored cost is invalid", err)
	}

	return product.ReconstructProduct(
		pr.ID, pr.Name, price, cost, pr.Stock, pr.Description, pr.ImageURL,
		product.Category(pr.Category),
		pgconv.TimeFromPgtype(pr.CreatedAt),
		pgconv.TimeFromPgtype(pr.UpdatedAt),
	), nil
}
