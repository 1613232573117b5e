package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"garment-orders/internal/models"
	"garment-orders/internal/order/query"
)

func legacyOrder(sweatshirtType string, price float64) models.Order {
	return models.Order{
		ID: "legacy1",
		Request: models.OrderRequest{
			Name:           "Maria Rossi",
			Phone:          "3331234567",
			SweatshirtType: sweatshirtType,
			Size:           "M",
			Service:        "Stampa",
			Price:          price,
		},
	}
}

func cartOrder(items ...models.OrderLine) models.Order {
	return models.Order{
		ID: "cart1",
		Request: models.OrderRequest{
			Name:  "Luca Bianchi",
			Phone: "3349876543",
			Items: items,
		},
	}
}

func TestNormalizeLegacyZipBecomesJacket(t *testing.T) {
	n := query.Normalize(legacyOrder(models.SweatshirtZip, 28))

	assert.Len(t, n.Lines, 1)
	assert.Equal(t, models.CategoryJacket, n.Lines[0].Category)
	assert.Equal(t, "", n.Lines[0].Brand, "legacy orders carry no brand signal")
	assert.Equal(t, 1, n.Lines[0].Quantity)
	assert.Equal(t, 28.0, n.EffectiveTotal)
}

func TestNormalizeLegacyDefaultBecomesSweatshirt(t *testing.T) {
	n := query.Normalize(legacyOrder(models.SweatshirtDefault, 15))

	assert.Len(t, n.Lines, 1)
	assert.Equal(t, models.CategorySweatshirt, n.Lines[0].Category)
	assert.Equal(t, 15.0, n.EffectiveTotal)
}

func TestNormalizeCartSumsLines(t *testing.T) {
	o := cartOrder(
		models.OrderLine{ProductID: "jhk-felpa-classic", ProductName: "Felpa Standard", Quantity: 2, UnitPrice: 15, Category: models.CategorySweatshirt},
		models.OrderLine{ProductID: "payper-giacca-softshell", ProductName: "Giacca Softshell Payper", Quantity: 1, UnitPrice: 43, Category: models.CategoryJacket},
	)

	n := query.Normalize(o)

	assert.Len(t, n.Lines, 2)
	assert.Equal(t, 73.0, n.EffectiveTotal, "no stored total, so the sum of lines")
	assert.Equal(t, models.BrandJHK, n.Lines[0].Brand)
	assert.Equal(t, models.BrandPayper, n.Lines[1].Brand)
}

func TestNormalizeCartPrefersStoredTotal(t *testing.T) {
	o := cartOrder(models.OrderLine{ProductID: "jhk-felpa-classic", Quantity: 2, UnitPrice: 15})
	o.Request.Total = 30

	n := query.Normalize(o)

	assert.Equal(t, 30.0, n.EffectiveTotal)
}

func TestNormalizeMalformedLegacyDegrades(t *testing.T) {
	// A bare legacy record with nothing but a name still normalizes.
	o := models.Order{Request: models.OrderRequest{Name: "X"}}

	n := query.Normalize(o)

	assert.Len(t, n.Lines, 1)
	assert.Equal(t, models.CategorySweatshirt, n.Lines[0].Category)
	assert.Equal(t, "", n.Lines[0].Size)
	assert.Equal(t, 0.0, n.EffectiveTotal)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	o := cartOrder(
		models.OrderLine{ProductID: "payper-felpa-hooded", ProductName: "Felpa Cappuccio Payper", Quantity: 3, UnitPrice: 18, Size: "L", Service: "Ricamo"},
	)

	first := query.Normalize(o)
	second := query.Normalize(o)

	assert.Equal(t, first, second)
}

func TestBrandOfIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, models.BrandPayper, query.BrandOf("PAYPER-giacca-1"))
	assert.Equal(t, models.BrandJHK, query.BrandOf("jhk-felpa-classic"))
	assert.Equal(t, models.BrandJHK, query.BrandOf("unknown-product"))
}
