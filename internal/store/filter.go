package store

import (
	"fmt"
	"strings"
)

// Filter expression helpers for the store's query language: `~` is the
// contains operator, `=` equality; predicates reach one level into
// array-valued sub-fields (request.items.*). The pushed-down expressions
// built here must select the same records the local engine would keep.

func escape(v string) string {
	return strings.ReplaceAll(v, `"`, ``)
}

// Contains builds a substring predicate on a field.
func Contains(field, value string) string {
	return fmt.Sprintf(`%s ~ "%s"`, field, escape(value))
}

// Equals builds an equality predicate on a field.
func Equals(field, value string) string {
	return fmt.Sprintf(`%s = "%s"`, field, escape(value))
}

// Or joins predicates disjunctively, parenthesized.
func Or(parts ...string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " || ") + ")"
}

// And joins predicates conjunctively.
func And(parts ...string) string {
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			joined = append(joined, p)
		}
	}
	return strings.Join(joined, " && ")
}

// SearchExpression is the remote counterpart of the free-text search: name,
// phone, cart product names and services, plus the legacy service field.
func SearchExpression(term string) string {
	if term == "" {
		return ""
	}
	return Or(
		Contains("request.name", term),
		Contains("request.phone", term),
		Contains("request.items.productName", term),
		Contains("request.items.service", term),
		Contains("request.service", term),
	)
}

// CategoryExpression filters cart orders by item category.
func CategoryExpression(category string) string {
	if category == "" {
		return ""
	}
	return "(" + Contains("request.items.category", category) + ")"
}
