package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"garment-orders/internal/models"
	"garment-orders/internal/order"
)

func sampleList() []models.Order {
	return []models.Order{
		{ID: "a", Request: models.OrderRequest{Name: "Maria", Price: 15}},
		{ID: "b", Request: models.OrderRequest{Name: "Luca", Price: 28}},
	}
}

func TestApplyPaidTouchesOnlyTarget(t *testing.T) {
	orders := sampleList()
	ts := time.Now().UTC()

	updated := order.ApplyPaid(orders, "b", ts)

	assert.False(t, updated[0].Paid)
	assert.True(t, updated[1].Paid)
	assert.Equal(t, ts, updated[1].PaidAt)
	assert.False(t, orders[1].Paid, "input slice is untouched")
}

func TestApplyTaken(t *testing.T) {
	ts := time.Now().UTC()

	updated := order.ApplyTaken(sampleList(), "a", ts)

	assert.True(t, updated[0].Taken)
	assert.Equal(t, ts, updated[0].TakenAt)
	assert.False(t, updated[1].Taken)
}

func TestApplyNotes(t *testing.T) {
	updated := order.ApplyNotes(sampleList(), "a", "ritiro venerdì")

	assert.Equal(t, "ritiro venerdì", updated[0].Request.Notes)
	assert.Equal(t, "", updated[1].Request.Notes)
}

func TestApplyUnknownIDIsNoop(t *testing.T) {
	orders := sampleList()

	updated := order.ApplyPaid(orders, "missing", time.Now())

	assert.Equal(t, orders, updated)
}
