package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/linemk/siya-shop/internal/domain/models"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogStorage describes read access to the product catalog. The
// catalog is reference data: seeded by migration, never written by the
// application.
type CatalogStorage interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
}

type catalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) CatalogStorage {
	return &catalogRepository{db: db}
}

const productColumns = "id, name, price, image_url, description, category, option_name, option_values"

func (r *catalogRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *catalogRepository) ListProductsByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE category = $1 ORDER BY id", category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}
	var optionName sql.NullString
	var optionValues []string
	if err := row.Scan(
		&product.ID, &product.Name, &product.Price, &product.ImageURL,
		&product.Description, &product.Category, &optionName, pq.Array(&optionValues),
	); err != nil {
		return nil, err
	}
	if optionName.Valid {
		product.Options = &models.ProductOptions{
			Name:   optionName.String,
			Values: optionValues,
		}
	}
	return product, nil
}

func scanProducts(rows *sql.Rows) ([]*models.Product, error) {
	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
