package query

import (
	"strings"

	"garment-orders/internal/models"
)

// Normalized is the shape-agnostic view of one order: its unit lines plus the
// effective monetary value. Every consumer (search, filter, summaries,
// display) works on this instead of branching on the record shape.
type Normalized struct {
	Lines          []models.NormalizedLine
	EffectiveTotal float64
}

// BrandOf derives the brand of a cart line from its product identifier.
func BrandOf(productID string) string {
	if strings.Contains(strings.ToLower(productID), "payper") {
		return models.BrandPayper
	}
	return models.BrandJHK
}

// categoryOfLegacy maps the legacy garment type to a product category.
func categoryOfLegacy(sweatshirtType string) string {
	if sweatshirtType == models.SweatshirtZip {
		return models.CategoryJacket
	}
	return models.CategorySweatshirt
}

// Normalize resolves the dual record shape once. Cart orders yield one line
// per item with the brand derived from the product id; legacy orders yield a
// single synthetic line with the category inferred from the garment type and
// no brand. Pure function: partially populated legacy records degrade to
// empty facet values, never to an error.
func Normalize(o models.Order) Normalized {
	if o.IsCart() {
		lines := make([]models.NormalizedLine, 0, len(o.Request.Items))
		sum := 0.0
		for _, item := range o.Request.Items {
			lines = append(lines, models.NormalizedLine{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Size:        item.Size,
				Service:     item.Service,
				Category:    item.Category,
				Brand:       BrandOf(item.ProductID),
			})
			sum += item.UnitPrice * float64(item.Quantity)
		}
		total := o.Request.Total
		if total == 0 {
			total = sum
		}
		return Normalized{Lines: lines, EffectiveTotal: total}
	}

	line := models.NormalizedLine{
		Quantity:  1,
		UnitPrice: o.Request.Price,
		Size:      o.Request.Size,
		Service:   o.Request.Service,
		Category:  categoryOfLegacy(o.Request.SweatshirtType),
	}
	return Normalized{
		Lines:          []models.NormalizedLine{line},
		EffectiveTotal: o.Request.Price,
	}
}

// NormalizeAll maps Normalize over a record list, index-aligned with orders.
func NormalizeAll(orders []models.Order) []Normalized {
	out := make([]Normalized, len(orders))
	for i, o := range orders {
		out[i] = Normalize(o)
	}
	return out
}
