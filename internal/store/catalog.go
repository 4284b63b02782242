package store

import (
	"slices"
	"sort"
	"strings"
	"sync"

	"furniro/internal/models"
)

const (
	// DefaultItemsPerPage is the shop grid size.
	DefaultItemsPerPage = 12
	relatedLimit        = 4
)

// Catalog holds the product list and a filtered, sorted and paginated view of it.
type Catalog struct {
	mu         sync.RWMutex
	products   []models.Product
	filtered   []models.Product
	filters    models.FilterCriteria
	sortKey    models.SortKey
	pagination models.Pagination

	notifier
}

// NewCatalog creates a catalog over products with no active filters.
func NewCatalog(products []models.Product, itemsPerPage int) *Catalog {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	c := &Catalog{
		products: slices.Clone(products),
		sortKey:  models.SortDefault,
		pagination: models.Pagination{
			CurrentPage:  1,
			ItemsPerPage: itemsPerPage,
		},
	}
	c.recompute()
	return c
}

// SetProducts replaces the product list and recomputes the view.
func (c *Catalog) SetProducts(products []models.Product) {
	c.mu.Lock()
	c.products = slices.Clone(products)
	c.recompute()
	c.mu.Unlock()
	c.notify()
}

// SetFilters merges patch into the current criteria and goes back to the first page.
func (c *Catalog) SetFilters(patch models.FilterPatch) {
	c.mu.Lock()
	c.filters = patch.Apply(c.filters)
	c.pagination.CurrentPage = 1
	c.recompute()
	c.mu.Unlock()
	c.notify()
}

// UpdateFilters is SetFilters with a patch computed from the current criteria while the
// catalog is locked, so concurrent toggles do not overwrite each other.
func (c *Catalog) UpdateFilters(next func(models.FilterCriteria) models.FilterPatch) {
	c.mu.Lock()
	c.filters = next(c.filters.Clone()).Apply(c.filters)
	c.pagination.CurrentPage = 1
	c.recompute()
	c.mu.Unlock()
	c.notify()
}

// ClearFilters drops every filter dimension.
func (c *Catalog) ClearFilters() {
	c.mu.Lock()
	c.filters = models.FilterCriteria{}
	c.pagination.CurrentPage = 1
	c.recompute()
	c.mu.Unlock()
	c.notify()
}

// SearchProducts is SetFilters with only the search query.
func (c *Catalog) SearchProducts(query string) {
	c.SetFilters(models.FilterPatch{SearchQuery: &query})
}

// Recompute re-applies the filters to the product list.
func (c *Catalog) Recompute() {
	c.mu.Lock()
	c.recompute()
	c.mu.Unlock()
	c.notify()
}

// SetCurrentPage moves to page n. The value is not bounds-checked; a page past the end
// simply has no items.
func (c *Catalog) SetCurrentPage(n int) {
	c.mu.Lock()
	c.pagination.CurrentPage = n
	c.mu.Unlock()
	c.notify()
}

// SetItemsPerPage changes the page size and goes back to the first page.
func (c *Catalog) SetItemsPerPage(n int) {
	if n < 1 {
		n = 1
	}
	c.mu.Lock()
	c.pagination.ItemsPerPage = n
	c.pagination.CurrentPage = 1
	c.recompute()
	c.mu.Unlock()
	c.notify()
}

// SetSort changes the order of the filtered list. The current page is kept.
func (c *Catalog) SetSort(key models.SortKey) {
	c.mu.Lock()
	c.sortKey = key
	c.recompute()
	c.mu.Unlock()
	c.notify()
}

// recompute must be called with c.mu held for writing.
func (c *Catalog) recompute() {
	f := c.filters
	filtered := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if matches(p, f) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, c.sortKey)
	c.filtered = filtered

	per := c.pagination.ItemsPerPage
	total := (len(filtered) + per - 1) / per
	if total < 1 {
		total = 1
	}
	c.pagination.TotalPages = total
	if c.pagination.CurrentPage > total {
		c.pagination.CurrentPage = total
	}
}

func matches(p models.Product, f models.FilterCriteria) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	price := p.EffectivePrice()
	if f.MinPrice != nil && price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(p.Colors, f.Colors) {
		return false
	}
	if len(f.Sizes) > 0 && !intersects(p.Sizes, f.Sizes) {
		return false
	}
	if f.SearchQuery != "" && !containsQuery(p, strings.ToLower(f.SearchQuery)) {
		return false
	}
	return true
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func containsQuery(p models.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func sortProducts(ps []models.Product, key models.SortKey) {
	var less func(a, b models.Product) bool
	switch key {
	case models.SortPriceLow:
		less = func(a, b models.Product) bool { return a.EffectivePrice().LessThan(b.EffectivePrice()) }
	case models.SortPriceHigh:
		less = func(a, b models.Product) bool { return a.EffectivePrice().GreaterThan(b.EffectivePrice()) }
	case models.SortName:
		less = func(a, b models.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	default:
		return
	}
	sort.SliceStable(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
}

// CurrentPageItems returns the products on the current page.
func (c *Catalog) CurrentPageItems() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pageItems()
}

func (c *Catalog) pageItems() []models.Product {
	per := c.pagination.ItemsPerPage
	start := (c.pagination.CurrentPage - 1) * per
	if start < 0 || start >= len(c.filtered) {
		return []models.Product{}
	}
	end := min(start+per, len(c.filtered))
	return slices.Clone(c.filtered[start:end])
}

// Page returns the current page together with the state that produced it.
func (c *Catalog) Page() models.ProductPage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.ProductPage{
		Items:         c.pageItems(),
		Pagination:    c.pagination,
		Filters:       c.filters.Clone(),
		Sort:          c.sortKey,
		FilteredCount: len(c.filtered),
	}
}

// Filtered returns the whole filtered list.
func (c *Catalog) Filtered() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.filtered)
}

// Filters returns a copy of the active criteria.
func (c *Catalog) Filters() models.FilterCriteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filters.Clone()
}

// Pagination returns the paging state.
func (c *Catalog) Pagination() models.Pagination {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pagination
}

// Sort returns the active sort key.
func (c *Catalog) Sort() models.SortKey {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sortKey
}

// Product looks a product up by id in the unfiltered list.
func (c *Catalog) Product(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Related returns up to limit other products of the same category. limit <= 0 means 4.
func (c *Catalog) Related(id string, limit int) []models.Product {
	if limit <= 0 {
		limit = relatedLimit
	}
	p, ok := c.Product(id)
	if !ok {
		return []models.Product{}
	}
	return c.collect(limit, func(o models.Product) bool {
		return o.ID != id && strings.EqualFold(o.Category, p.Category)
	})
}

// ByCategory returns every product of the category.
func (c *Catalog) ByCategory(category string) []models.Product {
	return c.collect(0, func(p models.Product) bool { return strings.EqualFold(p.Category, category) })
}

// NewArrivals returns products flagged as new.
func (c *Catalog) NewArrivals() []models.Product {
	return c.collect(0, func(p models.Product) bool { return p.IsNew })
}

// OnSale returns discounted products.
func (c *Catalog) OnSale() []models.Product {
	return c.collect(0, models.Product.HasDiscount)
}

func (c *Catalog) collect(limit int, keep func(models.Product) bool) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []models.Product{}
	for _, p := range c.products {
		if !keep(p) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
