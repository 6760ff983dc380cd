package normalize

import "strings"

// Column-role synonym lists. Per role, the first header containing a synonym
// (case-insensitive substring, synonym-major order) wins; a bound role is
// never reconsidered. "amount" appears under quantity, rate and total on
// purpose: the role iteration order below is the fixed, deterministic
// tie-break for such overlaps, not a best-match search.
var (
	descriptionSynonyms = []string{"description", "item", "service", "product", "details"}
	quantitySynonyms    = []string{"quantity", "qty", "amount", "units"}
	rateSynonyms        = []string{"rate", "price", "unit_price", "cost", "amount"}
	totalSynonyms       = []string{"total", "line_total", "amount"}
)

// ColumnBinding maps canonical line-item roles to column indexes.
// An unbound role is -1; that is never an error.
type ColumnBinding struct {
	Description int
	Quantity    int
	Rate        int
	Total       int
}

// MapColumns binds each canonical role to at most one column of the given
// header labels. Pure function: holds no state across calls and is stable
// under any reordering that preserves label text.
func MapColumns(headers []string) ColumnBinding {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(h)
	}

	bind := func(synonyms []string) int {
		for _, syn := range synonyms {
			for i, h := range lower {
				if strings.Contains(h, syn) {
					return i
				}
			}
		}
		return -1
	}

	return ColumnBinding{
		Description: bind(descriptionSynonyms),
		Quantity:    bind(quantitySynonyms),
		Rate:        bind(rateSynonyms),
		Total:       bind(totalSynonyms),
	}
}
