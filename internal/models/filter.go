package models

import "github.com/shopspring/decimal"

// SortKey selects the order of the filtered product list.
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)

// ParseSortKey maps a client value onto a known key; unknown values yield SortDefault.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortDefault, SortPriceLow, SortPriceHigh, SortName:
		return SortKey(s), true
	case "":
		return SortDefault, true
	}
	return SortDefault, false
}

// FilterCriteria narrows the visible product list. Zero values mean no constraint.
type FilterCriteria struct {
	Category    string           `json:"category,omitempty"`
	MinPrice    *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice    *decimal.Decimal `json:"max_price,omitempty"`
	Colors      []string         `json:"colors,omitempty"`
	Sizes       []string         `json:"sizes,omitempty"`
	SearchQuery string           `json:"search_query,omitempty"`
}

// Clone returns a deep copy.
func (f FilterCriteria) Clone() FilterCriteria {
	out := f
	if f.MinPrice != nil {
		v := *f.MinPrice
		out.MinPrice = &v
	}
	if f.MaxPrice != nil {
		v := *f.MaxPrice
		out.MaxPrice = &v
	}
	out.Colors = append([]string(nil), f.Colors...)
	out.Sizes = append([]string(nil), f.Sizes...)
	return out
}

// FilterPatch is a partial update of FilterCriteria. A nil field leaves the dimension
// unchanged; a non-nil field replaces it. Price bounds are cleared with an invalid
// decimal.NullDecimal, the other dimensions with their zero value.
type FilterPatch struct {
	Category    *string
	MinPrice    *decimal.NullDecimal
	MaxPrice    *decimal.NullDecimal
	Colors      *[]string
	Sizes       *[]string
	SearchQuery *string
}

// Apply merges the patch into criteria.
func (p FilterPatch) Apply(f FilterCriteria) FilterCriteria {
	out := f.Clone()
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.MinPrice != nil {
		out.MinPrice = boundFrom(*p.MinPrice)
	}
	if p.MaxPrice != nil {
		out.MaxPrice = boundFrom(*p.MaxPrice)
	}
	if p.Colors != nil {
		out.Colors = append([]string(nil), (*p.Colors)...)
	}
	if p.Sizes != nil {
		out.Sizes = append([]string(nil), (*p.Sizes)...)
	}
	if p.SearchQuery != nil {
		out.SearchQuery = *p.SearchQuery
	}
	return out
}

func boundFrom(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	v := n.Decimal
	return &v
}

// Pagination is the 1-based paging state of the catalog view.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	ItemsPerPage int `json:"items_per_page"`
	TotalPages   int `json:"total_pages"`
}

// ProductPage is one page of the filtered catalog.
type ProductPage struct {
	Items         []Product      `json:"items"`
	Pagination    Pagination     `json:"pagination"`
	Filters       FilterCriteria `json:"filters"`
	Sort          SortKey        `json:"sort"`
	FilteredCount int            `json:"filtered_count"`
}
