package models

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusAvailable  Status = "available"
	StatusOutOfStock Status = "out_of_stock"
	StatusHidden     Status = "hidden"
	StatusDeleted    Status = "deleted"
)

func (s Status) Label() string {
	switch s {
	case StatusAvailable:
		return "متوفر"
	case StatusOutOfStock:
		return "نافد"
	case StatusHidden:
		return "مخفي"
	case StatusDeleted:
		return "محذوف"
	}
	return string(s)
}

// Product is one row of the external products table. The table is owned by
// the scraper side; this application only ever reads it.
type Product struct {
	ID                 int64      `gorm:"column:id"`
	ProductID          string     `gorm:"column:product_id"`
	Name               string     `gorm:"column:name"`
	URL                string     `gorm:"column:url"`
	CurrentPrice       *float64   `gorm:"column:current_price"`
	OldPrice           *float64   `gorm:"column:old_price"`
	DiscountPercentage *float64   `gorm:"column:discount_percentage"`
	Category           *string    `gorm:"column:category"`
	ImageURL           string     `gorm:"column:image_url"`
	LastUpdated        *time.Time `gorm:"column:last_updated"`
	IsDeleted          bool       `gorm:"column:is_deleted"`
	IsOutOfStock       bool       `gorm:"column:is_out_of_stock"`
	IsHidden           bool       `gorm:"column:is_hidden"`
	LastDeepCheck      *time.Time `gorm:"column:last_deep_check"`
	CreatedAt          *time.Time `gorm:"column:created_at"`
}

func (Product) TableName() string { return "products" }

// Status resolves the three flags to exactly one label,
// precedence deleted > out_of_stock > hidden > available.
func (p Product) Status() Status {
	switch {
	case p.IsDeleted:
		return StatusDeleted
	case p.IsOutOfStock:
		return StatusOutOfStock
	case p.IsHidden:
		return StatusHidden
	}
	return StatusAvailable
}

// PriceLabel formats the current price for display.
func (p Product) PriceLabel() string {
	if p.CurrentPrice == nil {
		return "غير متاح"
	}
	return fmt.Sprintf("%.2f ريال", *p.CurrentPrice)
}

// Stats is the aggregate snapshot shown on the dashboard cards.
type Stats struct {
	Total      int
	Available  int
	OutOfStock int
	Hidden     int
	Deleted    int
	Categories int
}
