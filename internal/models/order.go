package models

import "time"

// Garment types carried by legacy single-item orders.
const (
	SweatshirtDefault = "default"
	SweatshirtZip     = "zip"
)

// Product categories used by cart orders and by legacy type inference.
const (
	CategorySweatshirt = "sweatshirt"
	CategoryJacket     = "jacket"
)

// Brands inferred from the product identifier of a cart line. Legacy orders
// carry no brand signal and stay undetermined (empty string).
const (
	BrandPayper = "PAYPER"
	BrandJHK    = "JHK"
)

// OrderLine is one purchasable unit inside a cart-shape order. Created at
// submission time, immutable afterwards.
type OrderLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"price"`
	Size        string  `json:"size,omitempty"`
	Service     string  `json:"service,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// OrderRequest is the customer-submitted part of a record. Two shapes coexist
// in the hosted collection with no migration: legacy orders use the flat
// SweatshirtType/Price fields, cart orders carry Items plus a stored Total.
// A record is cart-shaped iff Items is non-empty.
type OrderRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`

	// Legacy shape.
	SweatshirtType string  `json:"sweatshirtType,omitempty"`
	ServiceType    string  `json:"serviceType,omitempty"`
	Service        string  `json:"service,omitempty"`
	Size           string  `json:"size,omitempty"`
	Price          float64 `json:"price,omitempty"`

	// Cart shape.
	Items []OrderLine `json:"items,omitempty"`
	Total float64     `json:"total,omitempty"`
}

// Order is one record of the hosted collection. ID and the created/updated
// timestamps are assigned by the store.
type Order struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`

	Paid    bool      `json:"paid"`
	PaidAt  time.Time `json:"paid_at,omitzero"`
	Taken   bool      `json:"taken"`
	TakenAt time.Time `json:"taken_at,omitzero"`

	Request OrderRequest `json:"request"`
}

// IsCart reports whether the record carries the cart shape. Shape
// discrimination lives here and in the normalizer; everything downstream
// works on the normalized view.
func (o *Order) IsCart() bool {
	return len(o.Request.Items) > 0
}

// NormalizedLine is the shape-agnostic view of one unit line. Cart orders
// produce one per item, legacy orders exactly one synthetic line.
type NormalizedLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
	Size        string
	Service     string
	Category    string
	Brand       string
}

// SubmitItem is one line of an incoming cart submission. UnitPrice is a
// display hint only; the service reprices every line from the catalog.
type SubmitItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Service   string  `json:"service,omitempty"`
	UnitPrice float64 `json:"price,omitempty"`
}

// SubmitRequest is the order-form payload. Legacy submissions set
// SweatshirtType and ServiceType, cart submissions set Items.
type SubmitRequest struct {
	Name           string       `json:"name"`
	Phone          string       `json:"phone"`
	Notes          string       `json:"notes,omitempty"`
	SweatshirtType string       `json:"sweatshirtType,omitempty"`
	ServiceType    string       `json:"serviceType,omitempty"`
	Size           string       `json:"size,omitempty"`
	Service        string       `json:"service,omitempty"`
	Items          []SubmitItem `json:"items,omitempty"`
}

// OrderEvent is the envelope published to Kafka on every lifecycle change.
type OrderEvent struct {
	EventID string    `json:"event_id"`
	Type    string    `json:"type"`
	At      time.Time `json:"at"`
	Order   Order     `json:"order"`
}
