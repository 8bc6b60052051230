package ticker

import (
	"sort"
	"strings"
)

// FilterOption classifies snapshots by the sign of their 24h percent change.
type FilterOption string

const (
	FilterAll     FilterOption = "all"
	FilterGainers FilterOption = "gainers"
	FilterLosers  FilterOption = "losers"
)

// SortOption selects the sort key.
type SortOption string

const (
	SortByName   SortOption = "name"
	SortByPrice  SortOption = "price"
	SortByChange SortOption = "change"
	SortByVolume SortOption = "volume"
)

// SortDirection flips the natural order of the chosen key.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Filter narrows cryptos by a search term and a gainer/loser classification.
// The search is a trimmed, case-insensitive substring match on the symbol;
// an empty term matches everything. Gainers have a strictly positive percent
// change, losers a strictly negative one, so the two classes are disjoint.
// Non-numeric percent fields compare as 0 and land in neither class.
func Filter(cryptos []Snapshot, searchTerm string, filterBy FilterOption) []Snapshot {
	filtered := cryptos

	if search := strings.ToLower(strings.TrimSpace(searchTerm)); search != "" {
		matched := make([]Snapshot, 0, len(filtered))
		for _, c := range filtered {
			if strings.Contains(strings.ToLower(strings.TrimSpace(c.Symbol)), search) {
				matched = append(matched, c)
			}
		}
		filtered = matched
	}

	switch filterBy {
	case FilterGainers:
		filtered = filterByChange(filtered, func(pct float64) bool { return pct > 0 })
	case FilterLosers:
		filtered = filterByChange(filtered, func(pct float64) bool { return pct < 0 })
	}

	return filtered
}

func filterByChange(cryptos []Snapshot, keep func(float64) bool) []Snapshot {
	out := make([]Snapshot, 0, len(cryptos))
	for _, c := range cryptos {
		if keep(parseNum(c.PriceChangePercent)) {
			out = append(out, c)
		}
	}
	return out
}

// Sort orders cryptos by the given key without mutating the input. The sort
// is stable, so equal keys keep their original relative order.
//
// Numeric keys (price, change, volume) order naturally descending; name
// orders naturally ascending. The direction flag yields the natural order or
// its element-for-element reverse.
func Sort(cryptos []Snapshot, sortBy SortOption, direction SortDirection) []Snapshot {
	sorted := make([]Snapshot, len(cryptos))
	copy(sorted, cryptos)

	switch sortBy {
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Symbol < sorted[j].Symbol
		})
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return parseNum(sorted[i].Price) > parseNum(sorted[j].Price)
		})
	case SortByChange:
		sort.SliceStable(sorted, func(i, j int) bool {
			return parseNum(sorted[i].PriceChangePercent) > parseNum(sorted[j].PriceChangePercent)
		})
	case SortByVolume:
		sort.SliceStable(sorted, func(i, j int) bool {
			return parseNum(sorted[i].Volume) > parseNum(sorted[j].Volume)
		})
	default:
		return sorted
	}

	// Name's natural order is ascending; the numeric keys' is descending.
	reversed := direction == SortAsc
	if sortBy == SortByName {
		reversed = direction == SortDesc
	}
	if !reversed {
		return sorted
	}
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted
}
