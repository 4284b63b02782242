package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"furniro/internal/metrics"
	"furniro/internal/models"
	"furniro/internal/repositories"
	"furniro/internal/store"

	"github.com/shopspring/decimal"
)

// Session is the storefront state of one client.
type Session struct {
	ClientID string
	Catalog  *store.Catalog
	Cart     *store.Cart
	Wishlist *store.Wishlist
	Panel    *store.FilterPanel
	Sheet    *store.FilterSheet

	lastSeen time.Time
}

// clientStorage scopes a StateRepository to one client.
type clientStorage struct {
	repo     repositories.StateRepository
	clientID string
}

func (c clientStorage) Load(namespace string) ([]byte, error) {
	return c.repo.Load(c.clientID, namespace)
}

func (c clientStorage) Save(namespace string, data []byte) error {
	return c.repo.Save(c.clientID, namespace, data)
}

// ShopOptions tunes a ShopService.
type ShopOptions struct {
	ItemsPerPage int
	MaxPrice     decimal.Decimal
	Metrics      *metrics.Metrics
}

// ShopService keeps a Session per client and resolves product ids for cart and wishlist
// operations.
type ShopService struct {
	products *ProductService
	states   repositories.StateRepository
	metrics  *metrics.Metrics
	maxPrice decimal.Decimal
	now      func() time.Time

	mu           sync.Mutex
	sessions     map[string]*Session
	itemsPerPage int
	snapshot     []models.Product
	shared       *store.Catalog
}

// NewShopService creates a ShopService whose catalogs follow every product change.
func NewShopService(products *ProductService, states repositories.StateRepository, opts ShopOptions) *ShopService {
	if opts.ItemsPerPage < 1 {
		opts.ItemsPerPage = store.DefaultItemsPerPage
	}
	s := &ShopService{
		products:     products,
		states:       states,
		metrics:      opts.Metrics,
		maxPrice:     opts.MaxPrice,
		now:          time.Now,
		sessions:     make(map[string]*Session),
		itemsPerPage: opts.ItemsPerPage,
	}

	list, err := products.GetAllProducts()
	if err != nil {
		log.Printf("Failed to load products for shop: %v", err)
	}
	s.snapshot = list
	s.shared = store.NewCatalog(list, opts.ItemsPerPage)
	products.Subscribe(s.refresh)
	return s
}

func (s *ShopService) refresh(products []models.Product) {
	s.mu.Lock()
	s.snapshot = products
	catalogs := make([]*store.Catalog, 0, len(s.sessions)+1)
	catalogs = append(catalogs, s.shared)
	for _, sess := range s.sessions {
		catalogs = append(catalogs, sess.Catalog)
	}
	s.mu.Unlock()

	for _, c := range catalogs {
		c.SetProducts(products)
	}
}

// Catalog is the unfiltered catalog shared by every client.
func (s *ShopService) Catalog() *store.Catalog {
	return s.shared
}

// SetDefaultItemsPerPage changes the page size of sessions created from now on.
func (s *ShopService) SetDefaultItemsPerPage(n int) {
	if n < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemsPerPage = n
}

// Session returns the session of clientID, creating and hydrating it on first use.
// Hydration reads the state repository and runs without holding the service lock.
func (s *ShopService) Session(clientID string) *Session {
	s.mu.Lock()
	if sess, ok := s.sessions[clientID]; ok {
		sess.lastSeen = s.now()
		s.mu.Unlock()
		return sess
	}
	snapshot, perPage := s.snapshot, s.itemsPerPage
	s.mu.Unlock()

	fresh := s.newSession(clientID, snapshot, perPage)

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[clientID]; ok {
		// another request for the same client won the race
		sess.lastSeen = s.now()
		return sess
	}
	if !sameSnapshot(snapshot, s.snapshot) {
		fresh.Catalog.SetProducts(s.snapshot)
	}
	fresh.lastSeen = s.now()
	s.sessions[clientID] = fresh
	s.gauge()
	return fresh
}

func (s *ShopService) newSession(clientID string, products []models.Product, perPage int) *Session {
	storage := clientStorage{repo: s.states, clientID: clientID}
	catalog := store.NewCatalog(products, perPage)
	return &Session{
		ClientID: clientID,
		Catalog:  catalog,
		Cart:     store.NewCart(storage),
		Wishlist: store.NewWishlist(storage),
		Panel:    store.NewFilterPanel(catalog),
		Sheet:    store.NewFilterSheet(catalog, s.maxPrice),
	}
}

// sameSnapshot reports whether refresh has not replaced the product list in between.
func sameSnapshot(a, b []models.Product) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}

// EvictIdle drops sessions unused for longer than maxIdle and returns how many went.
// Their cart and wishlist stay persisted and come back on the next request.
func (s *ShopService) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	n := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	s.gauge()
	return n
}

// ForgetSession drops the session of clientID together with its stored cart and wishlist.
func (s *ShopService) ForgetSession(clientID string) error {
	s.mu.Lock()
	delete(s.sessions, clientID)
	s.gauge()
	s.mu.Unlock()

	if err := s.states.Delete(clientID); err != nil {
		return fmt.Errorf("failed to delete state of client %s: %w", clientID, err)
	}
	return nil
}

// SessionCount is the number of sessions held in memory.
func (s *ShopService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// gauge must be called with s.mu held.
func (s *ShopService) gauge() {
	if s.metrics != nil {
		s.metrics.ActiveSessions.Set(float64(len(s.sessions)))
	}
}

func (s *ShopService) countCart(op string) {
	if s.metrics != nil {
		s.metrics.CartMutations.WithLabelValues(op).Inc()
	}
}

func (s *ShopService) countWishlist(op string) {
	if s.metrics != nil {
		s.metrics.WishlistToggle.WithLabelValues(op).Inc()
	}
}

// AddToCart adds quantity units of a product variant at the product's current prices.
// size and color may be empty; when given they must be offered by the product.
func (s *ShopService) AddToCart(clientID, productID string, quantity int, size, color string) (models.CartSummary, error) {
	product, err := s.products.GetProductByID(productID)
	if err != nil {
		return models.CartSummary{}, err
	}
	if size, err = pickVariant(product.Sizes, size, "size"); err != nil {
		return models.CartSummary{}, err
	}
	if color, err = pickVariant(product.Colors, color, "color"); err != nil {
		return models.CartSummary{}, err
	}

	cart := s.Session(clientID).Cart
	cart.AddItem(models.LineFromProduct(*product, quantity, size, color))
	s.countCart("add")
	return cart.Summary(), nil
}

// pickVariant returns the product's own spelling of v.
func pickVariant(offered []string, v, kind string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", nil
	}
	for _, o := range offered {
		if strings.EqualFold(o, v) {
			return o, nil
		}
	}
	return "", fmt.Errorf("%s %q: %w", kind, v, ErrInvalidVariant)
}

// CartSummary returns the cart of clientID.
func (s *ShopService) CartSummary(clientID string) models.CartSummary {
	return s.Session(clientID).Cart.Summary()
}

// RemoveFromCart removes every line of productID.
func (s *ShopService) RemoveFromCart(clientID, productID string) models.CartSummary {
	cart := s.Session(clientID).Cart
	cart.RemoveItem(productID)
	s.countCart("remove")
	return cart.Summary()
}

// RemoveCartLine removes one variant line.
func (s *ShopService) RemoveCartLine(clientID string, key models.LineKey) models.CartSummary {
	cart := s.Session(clientID).Cart
	cart.RemoveLine(key)
	s.countCart("remove_line")
	return cart.Summary()
}

// UpdateCartQuantity sets the quantity of every line of productID.
func (s *ShopService) UpdateCartQuantity(clientID, productID string, quantity int) models.CartSummary {
	cart := s.Session(clientID).Cart
	cart.UpdateQuantity(productID, quantity)
	s.countCart("update")
	return cart.Summary()
}

// ClearCart empties the cart of clientID.
func (s *ShopService) ClearCart(clientID string) {
	s.Session(clientID).Cart.Clear()
	s.countCart("clear")
}

// Wishlist returns the wishlist of clientID.
func (s *ShopService) Wishlist(clientID string) []models.Product {
	return s.Session(clientID).Wishlist.Items()
}

// AddToWishlist stores a snapshot of the product.
func (s *ShopService) AddToWishlist(clientID, productID string) ([]models.Product, error) {
	product, err := s.products.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	w := s.Session(clientID).Wishlist
	w.AddItem(*product)
	s.countWishlist("add")
	return w.Items(), nil
}

// ToggleWishlist adds the product when absent and removes it otherwise.
func (s *ShopService) ToggleWishlist(clientID, productID string) (bool, error) {
	w := s.Session(clientID).Wishlist
	if w.IsInWishlist(productID) {
		w.RemoveItem(productID)
		s.countWishlist("remove")
		return false, nil
	}
	product, err := s.products.GetProductByID(productID)
	if err != nil {
		return false, err
	}
	added := w.Toggle(*product)
	if added {
		s.countWishlist("add")
	}
	return added, nil
}

// InWishlist reports whether productID is in the wishlist of clientID.
func (s *ShopService) InWishlist(clientID, productID string) bool {
	return s.Session(clientID).Wishlist.IsInWishlist(productID)
}

// RemoveFromWishlist removes productID.
func (s *ShopService) RemoveFromWishlist(clientID, productID string) []models.Product {
	w := s.Session(clientID).Wishlist
	w.RemoveItem(productID)
	s.countWishlist("remove")
	return w.Items()
}

// ClearWishlist empties the wishlist of clientID.
func (s *ShopService) ClearWishlist(clientID string) {
	s.Session(clientID).Wishlist.Clear()
	s.countWishlist("clear")
}
