package query

import (
	"strings"

	"garment-orders/internal/models"
)

// NormalizeTerm prepares a raw search input for matching.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// MatchOrder reports whether an order matches a normalized search term:
// case-insensitive substring over customer name, phone, any line's product
// name, or any line's service. An empty term matches everything.
func MatchOrder(o models.Order, n Normalized, term string) bool {
	if term == "" {
		return true
	}
	if contains(o.Request.Name, term) || contains(o.Request.Phone, term) {
		return true
	}
	for _, line := range n.Lines {
		if line.ProductName != "" && contains(line.ProductName, term) {
			return true
		}
		if line.Service != "" && contains(line.Service, term) {
			return true
		}
	}
	return false
}

// MatchContact is the payments-view variant: name and phone only.
func MatchContact(o models.Order, term string) bool {
	if term == "" {
		return true
	}
	return contains(o.Request.Name, term) || contains(o.Request.Phone, term)
}
