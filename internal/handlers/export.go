package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"janoubco-monitor/internal/inventory"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export downloads the currently filtered snapshot as a spreadsheet. The
// filter parameters mirror the dashboard query so the file matches what the
// operator sees.
func (h *Handlers) Export(c *gin.Context) {
	rows, err := h.Inventory.Products(c.Request.Context())
	if err != nil {
		c.String(http.StatusServiceUnavailable, "البيانات غير متاحة حالياً")
		return
	}

	opt, sortKey := filterFromQuery(c)
	filtered := inventory.Sort(inventory.Filter(rows, opt), sortKey)

	data, err := inventory.Export(filtered)
	if err != nil {
		c.String(http.StatusInternalServerError, "خطأ في التصدير")
		return
	}

	filename := fmt.Sprintf("products_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
