package store

import (
	"slices"
	"sync"

	"furniro/internal/models"
)

// Wishlist is a set of product snapshots, unique by id, persisted under WishlistNamespace.
type Wishlist struct {
	mu      sync.RWMutex
	items   []models.Product
	storage StateStorage

	notifier
}

// NewWishlist creates a wishlist and restores any entries saved in storage.
func NewWishlist(storage StateStorage) *Wishlist {
	w := &Wishlist{storage: storage}
	var items []models.Product
	hydrate(storage, WishlistNamespace, &items)
	for _, p := range items {
		if w.indexOf(p.ID) < 0 {
			w.items = append(w.items, p)
		}
	}
	return w
}

// AddItem appends product unless an entry with the same id exists.
func (w *Wishlist) AddItem(product models.Product) {
	w.mu.Lock()
	if w.indexOf(product.ID) >= 0 {
		w.mu.Unlock()
		return
	}
	w.items = append(w.items, product)
	w.save()
	w.mu.Unlock()
	w.notify()
}

// RemoveItem removes the entry with id, if any.
func (w *Wishlist) RemoveItem(id string) {
	w.mu.Lock()
	w.items = slices.DeleteFunc(w.items, func(p models.Product) bool { return p.ID == id })
	w.save()
	w.mu.Unlock()
	w.notify()
}

// Toggle adds product when absent and removes it when present. It reports whether the
// product is in the wishlist afterwards.
func (w *Wishlist) Toggle(product models.Product) bool {
	w.mu.Lock()
	added := true
	if i := w.indexOf(product.ID); i >= 0 {
		w.items = slices.Delete(w.items, i, i+1)
		added = false
	} else {
		w.items = append(w.items, product)
	}
	w.save()
	w.mu.Unlock()
	w.notify()
	return added
}

// IsInWishlist reports whether a product with id is present.
func (w *Wishlist) IsInWishlist(id string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.indexOf(id) >= 0
}

// Clear empties the wishlist.
func (w *Wishlist) Clear() {
	w.mu.Lock()
	w.items = nil
	w.save()
	w.mu.Unlock()
	w.notify()
}

// Items returns a copy of the entries in insertion order.
func (w *Wishlist) Items() []models.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]models.Product, len(w.items))
	copy(out, w.items)
	return out
}

// Len is the number of entries.
func (w *Wishlist) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

func (w *Wishlist) indexOf(id string) int {
	return slices.IndexFunc(w.items, func(p models.Product) bool { return p.ID == id })
}

func (w *Wishlist) save() {
	items := w.items
	if items == nil {
		items = []models.Product{}
	}
	persist(w.storage, WishlistNamespace, items)
}
