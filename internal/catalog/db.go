package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"garment-orders/internal/models"
)

// DB is the authoritative product catalog. It backs the item builder and is
// the only price source for cart submissions.
type DB struct {
	Bun *bun.DB
}

// Open opens (or creates) the embedded catalog database.
func Open(dsn string) (*DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog db: %w", err)
	}
	return &DB{Bun: bun.NewDB(sqldb, sqlitedialect.New())}, nil
}

// GetProducts lists the whole catalog, name-sorted.
func (d *DB) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := d.Bun.NewSelect().
		Model(&products).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductByID fetches one catalog entry.
func (d *DB) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := d.Bun.NewSelect().
		Model(&product).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpsertProduct inserts or replaces a catalog entry.
func (d *DB) UpsertProduct(ctx context.Context, product models.Product) error {
	_, err := d.Bun.NewInsert().
		Model(&product).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("category = EXCLUDED.category").
		Set("unit_price = EXCLUDED.unit_price").
		Exec(ctx)
	return err
}

func (d *DB) Close() error {
	return d.Bun.Close()
}
