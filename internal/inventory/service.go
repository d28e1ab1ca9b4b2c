package inventory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"janoubco-monitor/internal/models"
)

// cacheTTL is how long a fetched snapshot is served without re-querying.
// Writes to the products table are not visible until the entry expires;
// that staleness window is accepted for this dashboard.
const cacheTTL = 300 * time.Second

var productColumns = []string{
	"id", "product_id", "name", "url",
	"current_price", "old_price", "discount_percentage",
	"category", "image_url", "last_updated",
	"is_deleted", "is_out_of_stock", "is_hidden",
	"last_deep_check", "created_at",
}

type source interface {
	fetch(ctx context.Context) ([]models.Product, error)
}

type gormSource struct {
	db *gorm.DB
}

func (g gormSource) fetch(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := g.db.WithContext(ctx).
		Select(productColumns).
		Order("last_updated DESC NULLS LAST").
		Find(&rows).Error
	return rows, err
}

// Service reads the products table and serves a cached snapshot of it, plus
// the statistics and category list derived from that snapshot.
type Service struct {
	src source
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	cached   []models.Product
	cachedAt time.Time
	hasCache bool
}

func New(db *gorm.DB) *Service {
	return &Service{src: gormSource{db: db}, ttl: cacheTTL, now: time.Now}
}

// Products returns the current snapshot, re-querying only when the cached one
// has expired. On query failure it returns an empty snapshot together with
// the error; callers must treat that pair as "data unavailable", not as an
// empty inventory.
func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasCache && s.now().Sub(s.cachedAt) < s.ttl {
		return s.cached, nil
	}

	rows, err := s.src.fetch(ctx)
	if err != nil {
		log.Error().Err(err).Msg("products query failed")
		return nil, err
	}

	s.cached = rows
	s.cachedAt = s.now()
	s.hasCache = true
	return rows, nil
}

// Statistics aggregates a snapshot into the dashboard counters. An empty
// snapshot yields all zeros.
func Statistics(rows []models.Product) models.Stats {
	stats := models.Stats{Total: len(rows)}
	cats := map[string]struct{}{}

	for _, p := range rows {
		switch p.Status() {
		case models.StatusAvailable:
			stats.Available++
		case models.StatusOutOfStock:
			stats.OutOfStock++
		case models.StatusHidden:
			stats.Hidden++
		case models.StatusDeleted:
			stats.Deleted++
		}
		if p.Category != nil {
			cats[*p.Category] = struct{}{}
		}
	}

	stats.Categories = len(cats)
	return stats
}

// Categories returns the sorted distinct category names of a snapshot,
// NULL categories skipped.
func Categories(rows []models.Product) []string {
	seen := map[string]struct{}{}
	for _, p := range rows {
		if p.Category != nil {
			seen[*p.Category] = struct{}{}
		}
	}

	list := make([]string, 0, len(seen))
	for c := range seen {
		list = append(list, c)
	}
	sort.Strings(list)
	return list
}

func (s *Service) Statistics(ctx context.Context) (models.Stats, error) {
	rows, err := s.Products(ctx)
	return Statistics(rows), err
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.Products(ctx)
	return Categories(rows), err
}
