package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"janoubco-monitor/internal/models"
)

func names(rows []models.Product) []string {
	out := make([]string, len(rows))
	for i, p := range rows {
		out[i] = p.Name
	}
	return out
}

func TestFilter_Conjunctive(t *testing.T) {
	rows := []models.Product{
		{Name: "A", Category: sptr("X")},
		{Name: "B", IsHidden: true, Category: sptr("X")},
	}

	filtered := Filter(rows, FilterOptions{Status: models.StatusAvailable, Category: "X"})
	require.Equal(t, []string{"A"}, names(filtered))

	// stacking a name search for "B" on top empties the result
	filtered = Filter(rows, FilterOptions{Status: models.StatusAvailable, Category: "X", Search: "B"})
	require.Empty(t, filtered)
}

func TestFilter_NoOptionsPassesEverything(t *testing.T) {
	rows := []models.Product{{Name: "A"}, {Name: "B", IsDeleted: true}}
	require.Len(t, Filter(rows, FilterOptions{}), 2)
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	rows := []models.Product{
		{Name: "iPhone 15 Pro"},
		{Name: "Galaxy S24"},
	}
	require.Equal(t, []string{"iPhone 15 Pro"}, names(Filter(rows, FilterOptions{Search: "IPHONE"})))
	require.Empty(t, Filter(rows, FilterOptions{Search: "pixel"}))
}

func TestFilter_NullCategoryNeverMatches(t *testing.T) {
	rows := []models.Product{{Name: "A", Category: nil}}
	require.Empty(t, Filter(rows, FilterOptions{Category: "X"}))
}

func TestSort_PriceNullsLast(t *testing.T) {
	rows := []models.Product{
		{Name: "nil-price"},
		{Name: "cheap", CurrentPrice: fptr(10)},
		{Name: "mid", CurrentPrice: fptr(50)},
		{Name: "dear", CurrentPrice: fptr(90)},
	}

	asc := Sort(rows, SortPriceAsc)
	require.Equal(t, []string{"cheap", "mid", "dear", "nil-price"}, names(asc))

	desc := Sort(rows, SortPriceDesc)
	require.Equal(t, []string{"dear", "mid", "cheap", "nil-price"}, names(desc))

	// input order untouched
	require.Equal(t, "nil-price", rows[0].Name)
}

func TestSort_LastCheckedDescNullsLast(t *testing.T) {
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	rows := []models.Product{
		{Name: "never-checked"},
		{Name: "old", LastUpdated: &old},
		{Name: "recent", LastUpdated: &recent},
	}

	sorted := Sort(rows, SortLastCheckedDesc)
	require.Equal(t, []string{"recent", "old", "never-checked"}, names(sorted))
}

func TestSort_Name(t *testing.T) {
	rows := []models.Product{{Name: "b"}, {Name: "A"}, {Name: "C"}}

	require.Equal(t, []string{"A", "C", "b"}, names(Sort(rows, SortNameAsc)))
	require.Equal(t, []string{"b", "C", "A"}, names(Sort(rows, SortNameDesc)))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	rows := []models.Product{{Name: "B"}, {Name: "A"}}
	require.Equal(t, []string{"B", "A"}, names(Sort(rows, SortKey("bogus"))))
}
