package inventory

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"janoubco-monitor/internal/models"
)

const exportSheet = "Products"

// exportColumns fixes the worksheet column order and the Arabic header row.
var exportColumns = []struct {
	header string
	value  func(p models.Product) any
}{
	{"رقم المنتج", func(p models.Product) any { return p.ProductID }},
	{"اسم المنتج", func(p models.Product) any { return p.Name }},
	{"السعر الحالي", func(p models.Product) any { return floatCell(p.CurrentPrice) }},
	{"السعر القديم", func(p models.Product) any { return floatCell(p.OldPrice) }},
	{"نسبة الخصم", func(p models.Product) any { return floatCell(p.DiscountPercentage) }},
	{"القسم", func(p models.Product) any {
		if p.Category == nil {
			return ""
		}
		return *p.Category
	}},
	{"الحالة", func(p models.Product) any { return p.Status().Label() }},
	{"الرابط", func(p models.Product) any { return p.URL }},
	{"آخر تحديث", func(p models.Product) any {
		if p.LastUpdated == nil {
			return ""
		}
		return p.LastUpdated.Format("2006-01-02 15:04:05")
	}},
}

func floatCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

// Export encodes a snapshot as a single-worksheet spreadsheet for download.
func Export(rows []models.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	for col, c := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, c.header); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
	}

	for i, p := range rows {
		for col, c := range exportColumns {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("export: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, c.value(p)); err != nil {
				return nil, fmt.Errorf("export: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return buf.Bytes(), nil
}
