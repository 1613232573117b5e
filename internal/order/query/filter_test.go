package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"garment-orders/internal/models"
	"garment-orders/internal/order/query"
)

func twoSizeOrder() (models.Order, query.Normalized) {
	o := cartOrder(
		models.OrderLine{ProductID: "jhk-felpa-classic", Quantity: 1, UnitPrice: 15, Size: "M", Service: "Stampa"},
		models.OrderLine{ProductID: "jhk-felpa-classic", Quantity: 1, UnitPrice: 15, Size: "L", Service: "Stampa"},
	)
	return o, query.Normalize(o)
}

func TestFilterDisjunctiveWithinFacet(t *testing.T) {
	o, n := twoSizeOrder()

	assert.True(t, query.MatchSelection(o, n, query.Selection{
		query.FacetSize: {"M", "S"},
	}), "any line carrying a selected size is enough")

	assert.False(t, query.MatchSelection(o, n, query.Selection{
		query.FacetSize: {"S"},
	}))
}

func TestFilterConjunctiveAcrossFacets(t *testing.T) {
	o, n := twoSizeOrder()

	assert.False(t, query.MatchSelection(o, n, query.Selection{
		query.FacetSize:    {"M", "S"},
		query.FacetService: {"Ricamo"},
	}), "a facet with no matching line vetoes the order")
}

func TestFilterEmptySelectionMatchesAll(t *testing.T) {
	o, n := twoSizeOrder()

	assert.True(t, query.MatchSelection(o, n, query.Selection{}))
	assert.True(t, query.MatchSelection(o, n, query.Selection{query.FacetBrand: {}}))
	assert.False(t, query.Selection{query.FacetBrand: {}}.Active())
}

func TestFilterPaidFacetUsesOrderFlag(t *testing.T) {
	o, n := twoSizeOrder()
	o.Paid = true

	assert.True(t, query.MatchSelection(o, n, query.Selection{
		query.FacetPaid: {query.PaidStatusPaid},
	}))
	assert.False(t, query.MatchSelection(o, n, query.Selection{
		query.FacetPaid: {query.PaidStatusUnpaid},
	}))
	assert.True(t, query.MatchSelection(o, n, query.Selection{
		query.FacetPaid: {query.PaidStatusPaid, query.PaidStatusUnpaid},
	}))
}

func TestFilterUndeterminedBrandNeverMatches(t *testing.T) {
	o := legacyOrder(models.SweatshirtZip, 28)
	n := query.Normalize(o)

	assert.False(t, query.MatchSelection(o, n, query.Selection{
		query.FacetBrand: {models.BrandJHK, models.BrandPayper},
	}), "legacy orders are excluded by any active brand selection")
}
