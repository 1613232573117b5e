package query

import "sort"

// Facets are the selectable filter options discovered from the full order
// list. They drive the filter dropdowns and deliberately ignore the current
// search/filter state so options never shrink while the user narrows down.
type Facets struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
	Sizes      []string `json:"sizes"`
	Services   []string `json:"services"`
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// DiscoverFacets collects the distinct non-empty values per facet across all
// normalized lines of all orders.
func DiscoverFacets(normalized []Normalized) Facets {
	brands := map[string]struct{}{}
	categories := map[string]struct{}{}
	sizes := map[string]struct{}{}
	services := map[string]struct{}{}

	for _, n := range normalized {
		for _, line := range n.Lines {
			add(brands, line.Brand)
			add(categories, line.Category)
			add(sizes, line.Size)
			add(services, line.Service)
		}
	}

	return Facets{
		Brands:     sortedKeys(brands),
		Categories: sortedKeys(categories),
		Sizes:      sortedKeys(sizes),
		Services:   sortedKeys(services),
	}
}

func add(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}
