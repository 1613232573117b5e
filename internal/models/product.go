package models

import "github.com/uptrace/bun"

// Product is one entry of the authoritative garment catalog. Cart lines are
// repriced from here at submission time; client-sent prices are never stored.
type Product struct {
	bun.BaseModel `bun:"table:products"`

	ID        string  `bun:"id,pk" json:"id"`
	Name      string  `bun:"name,notnull" json:"name"`
	Category  string  `bun:"category,notnull" json:"category"`
	UnitPrice float64 `bun:"unit_price,notnull" json:"price"`
}
