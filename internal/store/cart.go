package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"furniro/internal/models"
)

// Cart holds the lines of one client's cart. Every mutation is persisted to its StateStorage
// under CartNamespace.
type Cart struct {
	mu      sync.RWMutex
	lines   []models.CartLine
	storage StateStorage

	notifier
}

// NewCart creates a cart and restores any lines previously saved in storage. storage may be
// nil for a cart that is never persisted.
func NewCart(storage StateStorage) *Cart {
	c := &Cart{storage: storage}
	var lines []models.CartLine
	hydrate(storage, CartNamespace, &lines)
	for _, l := range lines {
		if l.Quantity < 1 {
			l.Quantity = 1
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// AddItem merges line into the cart. A line with the same key gets its quantity increased,
// anything else is appended with the prices it carries.
func (c *Cart) AddItem(line models.CartLine) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	key := line.Key()

	c.mu.Lock()
	merged := false
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.lines = append(c.lines, line)
	}
	c.save()
	c.mu.Unlock()
	c.notify()
}

// RemoveItem removes every line of productID, whatever its size or color.
func (c *Cart) RemoveItem(productID string) {
	c.mutate(func(lines []models.CartLine) []models.CartLine {
		return slices.DeleteFunc(lines, func(l models.CartLine) bool { return l.ProductID == productID })
	})
}

// RemoveLine removes the single line identified by key.
func (c *Cart) RemoveLine(key models.LineKey) {
	key = models.NewLineKey(key.ProductID, unspecifiedToEmpty(key.Size), unspecifiedToEmpty(key.Color))
	c.mutate(func(lines []models.CartLine) []models.CartLine {
		return slices.DeleteFunc(lines, func(l models.CartLine) bool { return sameLine(l.Key(), key) })
	})
}

// sameLine matches variants regardless of case, as AddToCart does.
func sameLine(a, b models.LineKey) bool {
	return a.ProductID == b.ProductID &&
		strings.EqualFold(a.Size, b.Size) &&
		strings.EqualFold(a.Color, b.Color)
}

func unspecifiedToEmpty(v string) string {
	if v == models.Unspecified {
		return ""
	}
	return v
}

// UpdateQuantity sets the quantity of every line of productID. Values below 1 become 1.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c.mutate(func(lines []models.CartLine) []models.CartLine {
		for i := range lines {
			if lines[i].ProductID == productID {
				lines[i].Quantity = quantity
			}
		}
		return lines
	})
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mutate(func([]models.CartLine) []models.CartLine { return nil })
}

func (c *Cart) mutate(fn func([]models.CartLine) []models.CartLine) {
	c.mu.Lock()
	c.lines = fn(c.lines)
	c.save()
	c.mu.Unlock()
	c.notify()
}

// save must be called with c.mu held.
func (c *Cart) save() {
	lines := c.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	persist(c.storage, CartNamespace, lines)
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return subtotal(c.lines)
}

func subtotal(lines []models.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// Total equals Subtotal; the storefront charges neither tax nor shipping.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal()
}

// Count is the number of units in the cart.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Summary returns lines and totals read under one lock.
func (c *Cart) Summary() models.CartSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]models.CartLine, len(c.lines))
	copy(items, c.lines)
	n := 0
	for _, l := range items {
		n += l.Quantity
	}
	sum := subtotal(items)
	return models.CartSummary{Items: items, Count: n, Subtotal: sum, Total: sum}
}
