package query

import "garment-orders/internal/models"

// Facet is one independent filter dimension.
type Facet string

const (
	FacetBrand    Facet = "brand"
	FacetCategory Facet = "category"
	FacetSize     Facet = "size"
	FacetService  Facet = "service"
	FacetPaid     Facet = "paid"
)

// Paid-status facet values.
const (
	PaidStatusPaid   = "paid"
	PaidStatusUnpaid = "unpaid"
)

// Selection holds the active multi-select values per facet. A missing or
// empty slice means no constraint on that facet.
type Selection map[Facet][]string

// Active reports whether any facet carries a constraint.
func (s Selection) Active() bool {
	for _, values := range s {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

func lineValue(line models.NormalizedLine, facet Facet) string {
	switch facet {
	case FacetBrand:
		return line.Brand
	case FacetCategory:
		return line.Category
	case FacetSize:
		return line.Size
	case FacetService:
		return line.Service
	}
	return ""
}

// matchFacet is satisfied when at least one line carries a selected value.
// An empty line value (undetermined brand on legacy orders, missing size)
// never matches an active selection.
func matchFacet(lines []models.NormalizedLine, facet Facet, selected []string) bool {
	for _, line := range lines {
		v := lineValue(line, facet)
		if v == "" {
			continue
		}
		for _, want := range selected {
			if v == want {
				return true
			}
		}
	}
	return false
}

// MatchSelection applies the active filters: an order matches iff it matches
// every constrained facet (AND across facets), where line-based facets are
// satisfied by any line (OR within a facet) and the paid facet tests the
// order's own flag.
func MatchSelection(o models.Order, n Normalized, sel Selection) bool {
	for facet, selected := range sel {
		if len(selected) == 0 {
			continue
		}
		if facet == FacetPaid {
			if !matchPaid(o, selected) {
				return false
			}
			continue
		}
		if !matchFacet(n.Lines, facet, selected) {
			return false
		}
	}
	return true
}

func matchPaid(o models.Order, selected []string) bool {
	for _, want := range selected {
		if want == PaidStatusPaid && o.Paid {
			return true
		}
		if want == PaidStatusUnpaid && !o.Paid {
			return true
		}
	}
	return false
}
