package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/gorm"
)

var (
	// ErrInvalidDiscount is returned when a discounted price exceeds the base price.
	ErrInvalidDiscount = errors.New("discounted price must not exceed price")
	ErrInvalidPrice    = errors.New("price must be positive")
)

// Product represents a piece of furniture in the catalog.
type Product struct {
	ID              string            `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name            string            `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Description     string            `json:"description" validate:"omitempty,max=500"`
	Price           decimal.Decimal   `json:"price" gorm:"type:numeric(14,2)"`
	DiscountedPrice *decimal.Decimal  `json:"discounted_price,omitempty" gorm:"type:numeric(14,2)"`
	Image           string            `json:"image"`
	Images          []string          `json:"images" gorm:"serializer:json"`
	Category        string            `json:"category" gorm:"index;type:varchar(64)" validate:"required"`
	Tags            []string          `json:"tags" gorm:"serializer:json"`
	Sizes           []string          `json:"sizes" gorm:"serializer:json"`
	Colors          []string          `json:"colors" gorm:"serializer:json"`
	IsNew           bool              `json:"is_new"`
	Rating          float64           `json:"rating" validate:"gte=0,lte=5"`
	Reviews         int               `json:"reviews" validate:"gte=0"`
	Stock           int               `json:"stock" validate:"gte=0"`
	SKU             string            `json:"sku" gorm:"type:varchar(32)"`
	Specifications  map[string]string `json:"specifications" gorm:"serializer:json"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	DeletedAt       gorm.DeletedAt    `json:"-" gorm:"index"`

	ImagePublicID string `json:"-" gorm:"type:varchar(255)"` // media id used to destroy the uploaded image
}

// HasDiscount reports whether the product carries a usable discounted price.
func (p Product) HasDiscount() bool {
	return p.DiscountedPrice != nil && !p.DiscountedPrice.IsZero()
}

// EffectivePrice is the discounted price when present, otherwise the base price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.HasDiscount() {
		return *p.DiscountedPrice
	}
	return p.Price
}

// DiscountPercent returns the rounded discount as a whole percentage, or 0.
func (p Product) DiscountPercent() int64 {
	if !p.HasDiscount() || p.Price.IsZero() {
		return 0
	}
	off := p.Price.Sub(*p.DiscountedPrice).Div(p.Price).Mul(decimal.NewFromInt(100))
	return off.Round(0).IntPart()
}

// Validate checks the price rules the catalog relies on.
func (p Product) Validate() error {
	if !p.Price.IsPositive() {
		return fmt.Errorf("product %s: %w", p.ID, ErrInvalidPrice)
	}
	if p.DiscountedPrice != nil {
		if p.DiscountedPrice.IsNegative() || p.DiscountedPrice.GreaterThan(p.Price) {
			return fmt.Errorf("product %s: %w", p.ID, ErrInvalidDiscount)
		}
	}
	return nil
}

// Category is one of the fixed catalog sections.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

var priceFormatter = message.NewPrinter(language.Indonesian)

// FormatPrice renders an amount in rupiah with Indonesian digit grouping, e.g. "Rp 2.000.000".
func FormatPrice(amount decimal.Decimal) string {
	return priceFormatter.Sprintf("Rp %d", amount.Round(0).IntPart())
}
