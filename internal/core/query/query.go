// Package query is the catalog query engine shared by the storefront and the
// admin console: pure functions over a listing snapshot, no state and no
// side effects.
package query

import (
	"sort"
	"strings"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
)

// Sort keys accepted by FilterSort. Anything else falls back to SortFeatured.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortDiscount  = "discount"
)

// FilterAll is the sentinel meaning "no filter" for category and deal type.
const FilterAll = "all"

// Query is the combination of search term, filters, and sort key applied to
// the catalog. Zero values mean "no restriction".
type Query struct {
	SearchTerm string
	Category   string
	DealType   string
	SortKey    string
}

// FilterSort returns the listings matching every active filter of q, ordered
// by q's sort key. All sorts are stable so that repeated renders over
// unchanged input are deterministic. The input slice is never mutated.
func FilterSort(listings []domain.Listing, q Query) []domain.Listing {
	term := strings.ToLower(q.SearchTerm)

	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if !matchesTerm(l, term) {
			continue
		}
		if !matchesFilter(l.Category, q.Category) {
			continue
		}
		if !matchesFilter(l.DealType, q.DealType) {
			continue
		}
		out = append(out, l)
	}

	switch q.SortKey {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FinalPrice < out[j].FinalPrice
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FinalPrice > out[j].FinalPrice
		})
	case SortDiscount:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DiscountPercentage > out[j].DiscountPercentage
		})
	default: // SortFeatured: featured first, ties by discount descending.
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Featured != out[j].Featured {
				return out[i].Featured
			}
			return out[i].DiscountPercentage > out[j].DiscountPercentage
		})
	}

	return out
}

// SummarizeByCategory groups the listings by category and computes the
// per-group aggregates. Groups are ordered by descending count; equal counts
// keep first-encounter order. Only categories present in the input are
// emitted, so an empty catalog yields an empty summary, never an error.
func SummarizeByCategory(listings []domain.Listing) []domain.CategorySummary {
	index := make(map[string]int, len(listings))
	summaries := make([]domain.CategorySummary, 0)
	discountTotals := make([]int, 0)

	for _, l := range listings {
		i, ok := index[l.Category]
		if !ok {
			i = len(summaries)
			index[l.Category] = i
			summaries = append(summaries, domain.CategorySummary{Name: l.Category})
			discountTotals = append(discountTotals, 0)
		}
		summaries[i].Count++
		summaries[i].TotalSavings += l.Savings()
		discountTotals[i] += l.DiscountPercentage
	}

	for i := range summaries {
		summaries[i].AvgDiscountPercentage = float64(discountTotals[i]) / float64(summaries[i].Count)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Count > summaries[j].Count
	})

	return summaries
}

// matchesTerm reports a case-insensitive substring match of term against
// title, brand, or description. term must already be lowercased.
func matchesTerm(l domain.Listing, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Brand), term) ||
		strings.Contains(strings.ToLower(l.Description), term)
}

// matchesFilter treats the empty string and the "all" sentinel (any case) as
// no filter; otherwise the match is exact.
func matchesFilter(value, filter string) bool {
	if filter == "" || strings.EqualFold(filter, FilterAll) {
		return true
	}
	return value == filter
}
