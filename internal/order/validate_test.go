package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"garment-orders/internal/models"
	"garment-orders/internal/order"
)

func TestValidateLegacySubmit(t *testing.T) {
	req := models.SubmitRequest{
		Name:           "Maria Rossi",
		Phone:          "3331234567",
		SweatshirtType: models.SweatshirtZip,
		ServiceType:    order.ServicePremium,
	}
	assert.Nil(t, order.ValidateSubmit(req))
}

func TestValidateRejectsShortNameAndPhone(t *testing.T) {
	verr := order.ValidateSubmit(models.SubmitRequest{
		Name:           "M",
		Phone:          "333",
		SweatshirtType: models.SweatshirtDefault,
		ServiceType:    order.ServiceBasic,
	})

	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "phone")
}

func TestValidateLegacyNeedsGarmentAndService(t *testing.T) {
	verr := order.ValidateSubmit(models.SubmitRequest{
		Name:  "Maria Rossi",
		Phone: "3331234567",
	})

	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "sweatshirtType")
	assert.Contains(t, verr.Fields, "serviceType")
}

func TestValidateCartSubmit(t *testing.T) {
	req := models.SubmitRequest{
		Name:  "Luca Bianchi",
		Phone: "3349876543",
		Items: []models.SubmitItem{
			{ProductID: "jhk-felpa-classic", Quantity: 2, Size: "M"},
		},
	}
	assert.Nil(t, order.ValidateSubmit(req), "cart submissions do not need the legacy selectors")
}

func TestValidateCartRejectsBadItems(t *testing.T) {
	verr := order.ValidateSubmit(models.SubmitRequest{
		Name:  "Luca Bianchi",
		Phone: "3349876543",
		Items: []models.SubmitItem{
			{ProductID: "", Quantity: 0},
		},
	})

	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "items.0.productId")
	assert.Contains(t, verr.Fields, "items.0.quantity")
}
