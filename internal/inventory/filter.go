package inventory

import (
	"sort"
	"strings"

	"janoubco-monitor/internal/models"
)

// FilterOptions are conjunctive: every non-empty field must match for a row
// to pass.
type FilterOptions struct {
	Status   models.Status // "" means all statuses
	Category string        // "" means all categories
	Search   string        // case-insensitive substring on the name
}

func Filter(rows []models.Product, opt FilterOptions) []models.Product {
	search := strings.ToLower(opt.Search)

	out := make([]models.Product, 0, len(rows))
	for _, p := range rows {
		if opt.Status != "" && p.Status() != opt.Status {
			continue
		}
		if opt.Category != "" && (p.Category == nil || *p.Category != opt.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

type SortKey string

const (
	SortLastCheckedDesc SortKey = "last_checked_desc"
	SortPriceAsc        SortKey = "price_asc"
	SortPriceDesc       SortKey = "price_desc"
	SortNameAsc         SortKey = "name_asc"
	SortNameDesc        SortKey = "name_desc"
)

// Sort orders a copy of the snapshot by a single key. NULL timestamps and
// prices sort last in either direction.
func Sort(rows []models.Product, key SortKey) []models.Product {
	out := make([]models.Product, len(rows))
	copy(out, rows)

	switch key {
	case SortLastCheckedDesc:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].LastUpdated, out[j].LastUpdated
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.After(*b)
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].CurrentPrice, out[j].CurrentPrice
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return *a < *b
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].CurrentPrice, out[j].CurrentPrice
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return *a > *b
		})
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name > out[j].Name
		})
	}

	return out
}
