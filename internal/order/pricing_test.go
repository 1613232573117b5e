package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"garment-orders/internal/models"
	"garment-orders/internal/order"
)

func TestLegacyPriceOriginalGeneration(t *testing.T) {
	assert.Equal(t, 15.0, order.LegacyPrice(models.SweatshirtDefault, order.ServiceBasic, order.PriceGenOriginal))
	assert.Equal(t, 28.0, order.LegacyPrice(models.SweatshirtZip, order.ServiceBasic, order.PriceGenOriginal))
	assert.Equal(t, 20.0, order.LegacyPrice(models.SweatshirtDefault, order.ServicePremium, order.PriceGenOriginal))
	assert.Equal(t, 33.0, order.LegacyPrice(models.SweatshirtZip, order.ServicePremium, order.PriceGenOriginal))
}

func TestLegacyPriceCurrentGenerationRepricesZip(t *testing.T) {
	assert.Equal(t, 15.0, order.LegacyPrice(models.SweatshirtDefault, order.ServiceBasic, order.PriceGenCurrent))
	assert.Equal(t, 43.0, order.LegacyPrice(models.SweatshirtZip, order.ServiceBasic, order.PriceGenCurrent))
	assert.Equal(t, 48.0, order.LegacyPrice(models.SweatshirtZip, order.ServicePremium, order.PriceGenCurrent))
}

func TestCartTotal(t *testing.T) {
	total := order.CartTotal([]models.OrderLine{
		{UnitPrice: 15, Quantity: 2},
		{UnitPrice: 43, Quantity: 1},
	})
	assert.Equal(t, 73.0, total)

	assert.Equal(t, 0.0, order.CartTotal(nil))
}
