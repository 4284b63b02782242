package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unspecified stands in for an absent size or color in a LineKey.
const Unspecified = "<none>"

// LineKey identifies a cart line. Two lines of the same product with a different size or
// color are distinct.
type LineKey struct {
	ProductID string
	Size      string
	Color     string
}

// NewLineKey builds a key, replacing empty size/color with Unspecified.
func NewLineKey(productID, size, color string) LineKey {
	return LineKey{
		ProductID: productID,
		Size:      variantOrUnspecified(size),
		Color:     variantOrUnspecified(color),
	}
}

func variantOrUnspecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return Unspecified
	}
	return v
}

// CartLine is a single cart entry. Prices are captured when the line is first added and are
// not re-read from the catalog afterwards.
type CartLine struct {
	ProductID       string           `json:"id"`
	Name            string           `json:"name"`
	Price           decimal.Decimal  `json:"price"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
	Image           string           `json:"image"`
	Quantity        int              `json:"quantity"`
	Size            string           `json:"size,omitempty"`
	Color           string           `json:"color,omitempty"`
}

// Key returns the identity key of the line.
func (l CartLine) Key() LineKey {
	return NewLineKey(l.ProductID, l.Size, l.Color)
}

// UnitPrice is the captured discounted price when present, else the captured base price.
func (l CartLine) UnitPrice() decimal.Decimal {
	if l.DiscountedPrice != nil && !l.DiscountedPrice.IsZero() {
		return *l.DiscountedPrice
	}
	return l.Price
}

// LineTotal is UnitPrice times Quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineFromProduct captures a product snapshot as a cart line.
func LineFromProduct(p Product, quantity int, size, color string) CartLine {
	line := CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
	}
	if p.HasDiscount() {
		d := *p.DiscountedPrice
		line.DiscountedPrice = &d
	}
	return line
}

// CartSummary is the read model returned to clients.
type CartSummary struct {
	Items    []CartLine      `json:"items"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
}
