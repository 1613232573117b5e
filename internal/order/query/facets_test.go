package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"garment-orders/internal/models"
	"garment-orders/internal/order/query"
)

func TestDiscoverFacetsCollectsDistinctSortedValues(t *testing.T) {
	orders := []models.Order{
		cartOrder(
			models.OrderLine{ProductID: "payper-giacca-softshell", Quantity: 1, UnitPrice: 43, Size: "XL", Service: "Stampa", Category: models.CategoryJacket},
			models.OrderLine{ProductID: "jhk-felpa-classic", Quantity: 2, UnitPrice: 15, Size: "M", Service: "Ricamo", Category: models.CategorySweatshirt},
		),
		legacyOrder(models.SweatshirtDefault, 15), // size M, service Stampa, no brand
	}

	facets := query.DiscoverFacets(query.NormalizeAll(orders))

	assert.Equal(t, []string{models.BrandJHK, models.BrandPayper}, facets.Brands)
	assert.Equal(t, []string{models.CategoryJacket, models.CategorySweatshirt}, facets.Categories)
	assert.Equal(t, []string{"M", "XL"}, facets.Sizes)
	assert.Equal(t, []string{"Ricamo", "Stampa"}, facets.Services)
}

func TestDiscoverFacetsSkipsEmptyValues(t *testing.T) {
	orders := []models.Order{
		{Request: models.OrderRequest{Name: "X"}}, // bare legacy record
	}

	facets := query.DiscoverFacets(query.NormalizeAll(orders))

	assert.Empty(t, facets.Brands)
	assert.Empty(t, facets.Sizes)
	assert.Empty(t, facets.Services)
	assert.Equal(t, []string{models.CategorySweatshirt}, facets.Categories)
}
