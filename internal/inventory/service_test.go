package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"janoubco-monitor/internal/models"
)

type fakeSource struct {
	rows  []models.Product
	err   error
	calls int
}

func (f *fakeSource) fetch(ctx context.Context) ([]models.Product, error) {
	f.calls++
	return f.rows, f.err
}

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func newTestService(src *fakeSource) (*Service, *time.Time) {
	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := &Service{
		src: src,
		ttl: cacheTTL,
		now: func() time.Time { return current },
	}
	return svc, &current
}

func TestProducts_CachedWithinWindow(t *testing.T) {
	src := &fakeSource{rows: []models.Product{{ID: 1, Name: "A"}}}
	svc, clock := newTestService(src)
	ctx := context.Background()

	first, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// mutate the underlying store; the cache must hide it
	src.rows = []models.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	*clock = clock.Add(299 * time.Second)

	second, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second, "snapshot must be identical inside the window")
	require.Equal(t, 1, src.calls)

	// after expiry the next call re-queries
	*clock = clock.Add(2 * time.Second)
	third, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, third, 2)
	require.Equal(t, 2, src.calls)
}

func TestProducts_QueryFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	svc, _ := newTestService(src)

	rows, err := svc.Products(context.Background())
	require.Error(t, err)
	require.Empty(t, rows, "empty snapshot plus error means data unavailable")

	// a failure is not cached; the next call tries again
	src.err = nil
	src.rows = []models.Product{{ID: 1, Name: "A"}}
	rows, err = svc.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 2, src.calls)
}

func TestStatistics_EmptySnapshot(t *testing.T) {
	require.Equal(t, models.Stats{}, Statistics(nil))
}

func TestStatistics_Counts(t *testing.T) {
	rows := []models.Product{
		{Category: sptr("إلكترونيات")},
		{IsOutOfStock: true, Category: sptr("إلكترونيات")},
		{IsHidden: true, Category: sptr("ملابس")},
		{IsDeleted: true, IsOutOfStock: true},
		{},
	}

	stats := Statistics(rows)
	require.Equal(t, models.Stats{
		Total:      5,
		Available:  2,
		OutOfStock: 1,
		Hidden:     1,
		Deleted:    1,
		Categories: 2,
	}, stats)
}

func TestCategories_SortedDistinct(t *testing.T) {
	rows := []models.Product{
		{Category: sptr("ملابس")},
		{Category: sptr("إلكترونيات")},
		{Category: sptr("ملابس")},
		{Category: nil},
	}
	require.Equal(t, []string{"إلكترونيات", "ملابس"}, Categories(rows))
	require.Empty(t, Categories(nil))
}

func TestServiceStatisticsAndCategories_UseCache(t *testing.T) {
	src := &fakeSource{rows: []models.Product{{Name: "A", Category: sptr("X")}}}
	svc, _ := newTestService(src)
	ctx := context.Background()

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Total)

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"X"}, cats)

	require.Equal(t, 1, src.calls, "derived views share one snapshot")
}
