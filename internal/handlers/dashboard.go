package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"janoubco-monitor/internal/inventory"
	"janoubco-monitor/internal/models"
)

var statusFilters = []models.Status{
	models.StatusAvailable,
	models.StatusOutOfStock,
	models.StatusHidden,
	models.StatusDeleted,
}

var sortKeys = []struct {
	Key   inventory.SortKey
	Label string
}{
	{inventory.SortLastCheckedDesc, "آخر فحص (الأحدث)"},
	{inventory.SortPriceDesc, "السعر (الأعلى)"},
	{inventory.SortPriceAsc, "السعر (الأقل)"},
	{inventory.SortNameAsc, "الاسم (أ-ي)"},
	{inventory.SortNameDesc, "الاسم (ي-أ)"},
}

func filterFromQuery(c *gin.Context) (inventory.FilterOptions, inventory.SortKey) {
	opt := inventory.FilterOptions{
		Status:   models.Status(c.Query("status")),
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}
	key := inventory.SortKey(c.Query("sort"))
	if key == "" {
		key = inventory.SortLastCheckedDesc
	}
	return opt, key
}

func (h *Handlers) Dashboard(c *gin.Context) {
	rows, err := h.Inventory.Products(c.Request.Context())

	var dbError string
	if err != nil {
		// empty snapshot + banner, the page itself still renders
		dbError = "خطأ في الاتصال بقاعدة البيانات"
	}

	opt, sortKey := filterFromQuery(c)
	filtered := inventory.Sort(inventory.Filter(rows, opt), sortKey)

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"dbError":        dbError,
		"stats":          inventory.Statistics(rows),
		"categories":     inventory.Categories(rows),
		"products":       filtered,
		"statusFilters":  statusFilters,
		"sortKeys":       sortKeys,
		"activeStatus":   string(opt.Status),
		"activeCategory": opt.Category,
		"activeSearch":   opt.Search,
		"activeSort":     string(sortKey),
	})
}
