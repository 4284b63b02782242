package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"furniro/internal/models"
)

// FilterPanel turns discrete control changes into catalog filter updates. Each method
// recomputes one dimension from the current criteria and patches only that dimension.
type FilterPanel struct {
	catalog *Catalog
}

// NewFilterPanel binds a panel to catalog.
func NewFilterPanel(catalog *Catalog) *FilterPanel {
	return &FilterPanel{catalog: catalog}
}

// ToggleCategory selects category, or clears the category when it is already selected.
func (p *FilterPanel) ToggleCategory(category string) {
	p.catalog.UpdateFilters(func(f models.FilterCriteria) models.FilterPatch {
		next := category
		if strings.EqualFold(f.Category, category) {
			next = ""
		}
		return models.FilterPatch{Category: &next}
	})
}

// ToggleColor adds color to the color set, or removes it when present.
func (p *FilterPanel) ToggleColor(color string) {
	p.catalog.UpdateFilters(func(f models.FilterCriteria) models.FilterPatch {
		next := toggle(f.Colors, color)
		return models.FilterPatch{Colors: &next}
	})
}

// ToggleSize adds size to the size set, or removes it when present.
func (p *FilterPanel) ToggleSize(size string) {
	p.catalog.UpdateFilters(func(f models.FilterCriteria) models.FilterPatch {
		next := toggle(f.Sizes, size)
		return models.FilterPatch{Sizes: &next}
	})
}

func toggle(set []string, v string) []string {
	i := slices.IndexFunc(set, func(s string) bool { return strings.EqualFold(s, v) })
	if i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), v)
}

// SetPriceRange sets both price bounds. Reversed bounds are swapped.
func (p *FilterPanel) SetPriceRange(lo, hi decimal.Decimal) {
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}
	p.catalog.SetFilters(models.FilterPatch{
		MinPrice: &decimal.NullDecimal{Decimal: lo, Valid: true},
		MaxPrice: &decimal.NullDecimal{Decimal: hi, Valid: true},
	})
}

// ClearPriceRange removes both price bounds.
func (p *FilterPanel) ClearPriceRange() {
	p.catalog.SetFilters(models.FilterPatch{
		MinPrice: &decimal.NullDecimal{},
		MaxPrice: &decimal.NullDecimal{},
	})
}

// Search sets the free-text query.
func (p *FilterPanel) Search(query string) {
	p.catalog.SearchProducts(query)
}

// Reset clears every dimension.
func (p *FilterPanel) Reset() {
	p.catalog.ClearFilters()
}

// SheetSelection is what a FilterSheet has staged.
type SheetSelection struct {
	MinPrice decimal.Decimal `json:"min_price"`
	MaxPrice decimal.Decimal `json:"max_price"`
	Category string          `json:"category,omitempty"`
}

// FilterSheet stages a price range and a category locally; nothing reaches the catalog
// until Apply.
type FilterSheet struct {
	mu      sync.Mutex
	catalog *Catalog
	staged  SheetSelection
}

// NewFilterSheet creates a sheet whose price range starts at [0, maxPrice].
func NewFilterSheet(catalog *Catalog, maxPrice decimal.Decimal) *FilterSheet {
	return &FilterSheet{
		catalog: catalog,
		staged:  SheetSelection{MinPrice: decimal.Zero, MaxPrice: maxPrice},
	}
}

// StagePriceRange records a price range without applying it.
func (s *FilterSheet) StagePriceRange(lo, hi decimal.Decimal) {
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged.MinPrice = lo
	s.staged.MaxPrice = hi
}

// StageCategory selects category, or deselects it when it is already staged.
func (s *FilterSheet) StageCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.EqualFold(s.staged.Category, category) {
		s.staged.Category = ""
		return
	}
	s.staged.Category = category
}

// Staged returns the pending selection.
func (s *FilterSheet) Staged() SheetSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.staged
}

// Apply pushes the staged selection to the catalog in a single update.
func (s *FilterSheet) Apply() {
	sel := s.Staged()
	s.catalog.SetFilters(models.FilterPatch{
		Category: &sel.Category,
		MinPrice: &decimal.NullDecimal{Decimal: sel.MinPrice, Valid: true},
		MaxPrice: &decimal.NullDecimal{Decimal: sel.MaxPrice, Valid: true},
	})
}
