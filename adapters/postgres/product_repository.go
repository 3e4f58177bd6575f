package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stocklens/domain/core"
	"stocklens/domain/inventory"
	"stocklens/ports"
)

// productRepository implements ProductCatalogPort
type productRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new product catalog repository
func NewProductRepository(db *sqlx.DB) *productRepository {
	return &productRepository{db: db}
}

var _ ports.ProductCatalogPort = (*productRepository)(nil)

// ListProducts returns a page of the product catalog
func (r *productRepository) ListProducts(ctx context.Context, limit, offset int) ([]inventory.Product, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT
		code,
		COALESCE(description, '') AS description,
		COALESCE(category, '') AS category,
		COALESCE(unit, 'ea') AS unit
	FROM products
	ORDER BY code
	LIMIT $1 OFFSET $2`

	var products []inventory.Product
	err := r.db.SelectContext(ctx, &products, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// GetProduct returns one catalog entry by code
func (r *productRepository) GetProduct(ctx context.Context, code core.ProductCode) (*inventory.Product, error) {
	query := `SELECT
		code,
		COALESCE(description, '') AS description,
		COALESCE(category, '') AS category,
		COALESCE(unit, 'ea') AS unit
	FROM products
	WHERE code = $1`

	var product inventory.Product
	err := r.db.GetContext(ctx, &product, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("product", code.String())
		}
		return nil, fmt.Errorf("failed to get product %s: %w", code, err)
	}

	return &product, nil
}

// ListLocations returns the locations that hold stock of a product
func (r *productRepository) ListLocations(ctx context.Context, code core.ProductCode) ([]core.LocationID, error) {
	query := `SELECT DISTINCT location_id
	FROM stock_snapshots
	WHERE product_code = $1 AND location_id IS NOT NULL
	ORDER BY location_id`

	var locations []core.LocationID
	err := r.db.SelectContext(ctx, &locations, query, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations for %s: %w", code, err)
	}

	return locations, nil
}
