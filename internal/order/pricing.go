package order

import "garment-orders/internal/models"

// Service tiers offered with legacy submissions.
const (
	ServiceBasic   = "basic"
	ServicePremium = "premium"
)

// Legacy price generations. The zip garment was repriced between the two
// schema generations; which table applies is a deployment setting.
const (
	PriceGenOriginal = 1 // default 15, zip 28
	PriceGenCurrent  = 2 // default 15, zip 43
)

const premiumSurcharge = 5

// LegacyPrice computes the trusted price of a legacy single-garment order:
// base price by garment type plus the premium service surcharge. Client-sent
// prices are never consulted.
func LegacyPrice(sweatshirtType, serviceType string, generation int) float64 {
	price := 15.0
	if sweatshirtType == models.SweatshirtZip {
		if generation >= PriceGenCurrent {
			price = 43
		} else {
			price = 28
		}
	}
	if serviceType == ServicePremium {
		price += premiumSurcharge
	}
	return price
}

// CartTotal sums the already-repriced lines of a cart order.
func CartTotal(items []models.OrderLine) float64 {
	total := 0.0
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
