package catalog

import (
	"context"
	"fmt"

	"garment-orders/internal/models"
)

// Seed products: the two legacy garments plus the current supplier lines the
// item builder offers. Prices here are the trusted ones.
var seedProducts = []models.Product{
	{ID: "jhk-felpa-classic", Name: "Felpa Standard", Category: models.CategorySweatshirt, UnitPrice: 15},
	{ID: "jhk-felpa-zip", Name: "Felpa con Zip", Category: models.CategoryJacket, UnitPrice: 28},
	{ID: "payper-felpa-hooded", Name: "Felpa Cappuccio Payper", Category: models.CategorySweatshirt, UnitPrice: 18},
	{ID: "payper-giacca-softshell", Name: "Giacca Softshell Payper", Category: models.CategoryJacket, UnitPrice: 43},
}

// Migrate creates the products table if missing and seeds it. Existing rows
// are updated in place so price corrections take effect on restart.
func (d *DB) Migrate(ctx context.Context) error {
	_, err := d.Bun.NewCreateTable().
		Model((*models.Product)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create products table failed: %w", err)
	}

	for _, p := range seedProducts {
		if err := d.UpsertProduct(ctx, p); err != nil {
			return fmt.Errorf("seed product %s failed: %w", p.ID, err)
		}
	}
	return nil
}
