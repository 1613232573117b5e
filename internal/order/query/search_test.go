package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"garment-orders/internal/models"
	"garment-orders/internal/order/query"
)

func TestMatchOrderIsCaseInsensitiveSubstring(t *testing.T) {
	o := legacyOrder(models.SweatshirtDefault, 15) // name "Maria Rossi"
	n := query.Normalize(o)

	assert.True(t, query.MatchOrder(o, n, query.NormalizeTerm("rossi")))
	assert.True(t, query.MatchOrder(o, n, query.NormalizeTerm("MARIA")))
	assert.True(t, query.MatchOrder(o, n, query.NormalizeTerm("  maria ")), "term is trimmed")

	mario := o
	mario.Request.Name = "Mario"
	assert.False(t, query.MatchOrder(mario, query.Normalize(mario), query.NormalizeTerm("mariax")))
}

func TestMatchOrderEmptyTermMatchesAll(t *testing.T) {
	o := legacyOrder(models.SweatshirtZip, 28)
	assert.True(t, query.MatchOrder(o, query.Normalize(o), ""))
}

func TestMatchOrderSearchesPhoneProductAndService(t *testing.T) {
	o := cartOrder(
		models.OrderLine{ProductID: "jhk-felpa-classic", ProductName: "Felpa Standard", Quantity: 1, UnitPrice: 15, Service: "Ricamo Petto"},
	)
	n := query.Normalize(o)

	assert.True(t, query.MatchOrder(o, n, "3349"), "phone substring")
	assert.True(t, query.MatchOrder(o, n, "felpa stand"), "product name substring")
	assert.True(t, query.MatchOrder(o, n, "ricamo"), "service substring")
	assert.False(t, query.MatchOrder(o, n, "zaino"))
}

func TestMatchContactIgnoresLines(t *testing.T) {
	o := cartOrder(
		models.OrderLine{ProductID: "jhk-felpa-classic", ProductName: "Felpa Standard", Quantity: 1, UnitPrice: 15},
	)

	assert.True(t, query.MatchContact(o, "luca"))
	assert.False(t, query.MatchContact(o, "felpa"), "payments search is name/phone only")
}
