package handlers

import (
	"furniro/internal/models"
)

// productView adds display fields to a product.
type productView struct {
	models.Product
	DiscountPercent          int64  `json:"discount_percent,omitempty"`
	FormattedPrice           string `json:"formatted_price"`
	FormattedDiscountedPrice string `json:"formatted_discounted_price,omitempty"`
}

func viewProduct(p models.Product) productView {
	v := productView{
		Product:         p,
		DiscountPercent: p.DiscountPercent(),
		FormattedPrice:  models.FormatPrice(p.Price),
	}
	if p.HasDiscount() {
		v.FormattedDiscountedPrice = models.FormatPrice(*p.DiscountedPrice)
	}
	return v
}

func viewProducts(ps []models.Product) []productView {
	out := make([]productView, 0, len(ps))
	for _, p := range ps {
		out = append(out, viewProduct(p))
	}
	return out
}

type pageView struct {
	Items         []productView         `json:"items"`
	Pagination    models.Pagination     `json:"pagination"`
	Filters       models.FilterCriteria `json:"filters"`
	Sort          models.SortKey        `json:"sort"`
	FilteredCount int                   `json:"filtered_count"`
}

func viewPage(p models.ProductPage) pageView {
	return pageView{
		Items:         viewProducts(p.Items),
		Pagination:    p.Pagination,
		Filters:       p.Filters,
		Sort:          p.Sort,
		FilteredCount: p.FilteredCount,
	}
}

type cartView struct {
	models.CartSummary
	FormattedSubtotal string `json:"formatted_subtotal"`
	FormattedTotal    string `json:"formatted_total"`
}

func viewCart(s models.CartSummary) cartView {
	if s.Items == nil {
		s.Items = []models.CartLine{}
	}
	return cartView{
		CartSummary:       s,
		FormattedSubtotal: models.FormatPrice(s.Subtotal),
		FormattedTotal:    models.FormatPrice(s.Total),
	}
}
