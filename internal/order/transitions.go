package order

import (
	"time"

	"garment-orders/internal/models"
)

// Pure transition functions over an order slice. The in-memory session list
// (the redis-cached copy of the collection) is only ever advanced through
// these, so an optimistic local update after a successful write is a plain
// data transformation that tests can exercise without any I/O.

// ApplyPaid returns a new slice with the given order marked paid at ts.
func ApplyPaid(orders []models.Order, id string, ts time.Time) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		if o.ID == id {
			o.Paid = true
			o.PaidAt = ts
		}
		out[i] = o
	}
	return out
}

// ApplyTaken returns a new slice with the given order marked taken at ts.
func ApplyTaken(orders []models.Order, id string, ts time.Time) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		if o.ID == id {
			o.Taken = true
			o.TakenAt = ts
		}
		out[i] = o
	}
	return out
}

// ApplyNotes returns a new slice with the given order's notes replaced.
func ApplyNotes(orders []models.Order, id, notes string) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		if o.ID == id {
			o.Request.Notes = notes
		}
		out[i] = o
	}
	return out
}
