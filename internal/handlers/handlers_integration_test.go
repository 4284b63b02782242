package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"furniro/config"
	"furniro/internal/app"
	"furniro/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@furniro.test"
	adminPassword = "adminpass"
)

// setupApp builds the full storefront over a private in-memory SQLite database.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		DBDriver:       config.DriverSQLite,
		JWTSecret:      "test_jwt_secret",
		JWTTTL:         time.Hour,
		ItemsPerPage:   12,
		FilterMaxPrice: 10_000_000,
		SeedProducts:   true,
		AdminEmail:     adminEmail,
		AdminPassword:  adminPassword,
	}
	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a.Fiber
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type client struct {
	t     *testing.T
	app   *fiber.App
	id    string
	token string
}

func newClient(t *testing.T, app *fiber.App, id string) *client {
	return &client{t: t, app: app, id: id}
}

func (c *client) do(method, path string, body any) *http.Response {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if c.id != "" {
		req.Header.Set(middleware.ClientIDHeader, c.id)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (c *client) login(email, password string) {
	c.t.Helper()
	resp := c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": email, "password": password})
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
	c.token = decode[map[string]any](c.t, resp)["token"].(string)
}

func (c *client) register(name, email, password string) {
	c.t.Helper()
	resp := c.do(http.MethodPost, "/api/v1/auth/register", map[string]string{"name": name, "email": email, "password": password})
	require.Equal(c.t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	c.login(email, password)
}

func dec(t *testing.T, v any) decimal.Decimal {
	t.Helper()
	s, ok := v.(string)
	require.True(t, ok, "expected decimal string, got %v", v)
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

type page struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
	Pagination struct {
		CurrentPage  int `json:"current_page"`
		ItemsPerPage int `json:"items_per_page"`
		TotalPages   int `json:"total_pages"`
	} `json:"pagination"`
	FilteredCount int `json:"filtered_count"`
}

func (p page) ids() []string {
	out := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, it.ID)
	}
	return out
}

func TestAuthRegisterAndLogin(t *testing.T) {
	c := newClient(t, setupApp(t), "")

	body := map[string]string{"name": "Budi", "email": "budi@example.com", "password": "password123"}
	resp := c.do(http.MethodPost, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	registered := decode[map[string]any](t, resp)
	assert.Equal(t, "User registered successfully", registered["message"])
	user := registered["user"].(map[string]any)
	assert.NotContains(t, user, "password")
	assert.Equal(t, "USER", user["role"])

	resp = c.do(http.MethodPost, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodPost, "/api/v1/auth/register", map[string]string{"name": "X", "email": "nope", "password": "1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	invalid := decode[map[string]any](t, resp)
	assert.Equal(t, "Validation failed", invalid["message"])
	assert.Contains(t, invalid["errors"], "Email")

	resp = c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "budi@example.com", "password": "wrongpass"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	c.login("budi@example.com", "password123")
	assert.NotEmpty(t, c.token)
}

func TestCatalogEndpoints(t *testing.T) {
	c := newClient(t, setupApp(t), "")

	resp := c.do(http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]map[string]any](t, resp), 5)

	resp = c.do(http.MethodGet, "/api/v1/products/lolito", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	lolito := decode[map[string]any](t, resp)
	assert.Equal(t, 29.0, lolito["discount_percent"])
	assert.Equal(t, "Rp 7.000.000", lolito["formatted_price"])
	assert.Equal(t, "Rp 5.000.000", lolito["formatted_discounted_price"])
	assert.True(t, decimal.NewFromInt(5_000_000).Equal(dec(t, lolito["discounted_price"])))

	resp = c.do(http.MethodGet, "/api/v1/products/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodGet, "/api/v1/products/leviosa/related", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	related := decode[[]map[string]any](t, resp)
	require.Len(t, related, 2)
	for _, p := range related {
		assert.Equal(t, "dining", p["category"])
		assert.NotEqual(t, "leviosa", p["id"])
	}

	resp = c.do(http.MethodGet, "/api/v1/products?sale=true", nil)
	assert.Len(t, decode[[]map[string]any](t, resp), 2)

	resp = c.do(http.MethodGet, "/api/v1/products?category=Living", nil)
	assert.Len(t, decode[[]map[string]any](t, resp), 2)

	resp = c.do(http.MethodGet, "/api/v1/categories", nil)
	assert.Len(t, decode[[]map[string]any](t, resp), 3)
}

func TestShopView(t *testing.T) {
	c := newClient(t, setupApp(t), "shopper-1")

	resp := c.do(http.MethodPut, "/api/v1/shop/page-size", map[string]int{"items_per_page": 2})
	p := decode[page](t, resp)
	assert.Equal(t, 3, p.Pagination.TotalPages)
	assert.Len(t, p.Items, 2)

	resp = c.do(http.MethodPut, "/api/v1/shop/page", map[string]int{"page": 3})
	p = decode[page](t, resp)
	assert.Equal(t, 3, p.Pagination.CurrentPage)
	assert.Len(t, p.Items, 1)

	resp = c.do(http.MethodPatch, "/api/v1/shop/filters", map[string]any{"category": "Dining"})
	p = decode[page](t, resp)
	assert.Equal(t, 1, p.Pagination.CurrentPage)
	assert.Equal(t, 3, p.FilteredCount)

	resp = c.do(http.MethodPut, "/api/v1/shop/filters/price", map[string]string{"min_price": "2000000", "max_price": "400000"})
	p = decode[page](t, resp)
	assert.ElementsMatch(t, []string{"syltherine", "respira"}, p.ids())

	resp = c.do(http.MethodPatch, "/api/v1/shop/filters", map[string]any{"max_price": nil, "search_query": "cafe"})
	p = decode[page](t, resp)
	assert.ElementsMatch(t, []string{"syltherine", "leviosa"}, p.ids())

	resp = c.do(http.MethodDelete, "/api/v1/shop/filters", nil)
	p = decode[page](t, resp)
	assert.Equal(t, 5, p.FilteredCount)

	resp = c.do(http.MethodPost, "/api/v1/shop/filters/toggle", map[string]string{"dimension": "color", "value": "white"})
	p = decode[page](t, resp)
	assert.ElementsMatch(t, []string{"syltherine", "leviosa"}, p.ids())

	resp = c.do(http.MethodPost, "/api/v1/shop/filters/toggle", map[string]string{"dimension": "color", "value": "white"})
	p = decode[page](t, resp)
	assert.Equal(t, 5, p.FilteredCount)

	resp = c.do(http.MethodPost, "/api/v1/shop/filters/toggle", map[string]string{"dimension": "material", "value": "oak"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodPut, "/api/v1/shop/sort", map[string]string{"sort": "price-low"})
	p = decode[page](t, resp)
	assert.Equal(t, []string{"asgaard-sofa", "respira"}, p.ids())

	resp = c.do(http.MethodPut, "/api/v1/shop/sort", map[string]string{"sort": "cheapest"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodGet, "/api/v1/shop/search?q=SOFA", nil)
	p = decode[page](t, resp)
	assert.Equal(t, 2, p.FilteredCount)
}

func TestShopFilterSheet(t *testing.T) {
	c := newClient(t, setupApp(t), "sheet-user")

	resp := c.do(http.MethodPut, "/api/v1/shop/sheet", map[string]any{"category": "living", "min_price": "1000000", "max_price": "6000000"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	staged := decode[map[string]any](t, resp)
	assert.Equal(t, "living", staged["category"])

	resp = c.do(http.MethodGet, "/api/v1/shop", nil)
	assert.Equal(t, 5, decode[page](t, resp).FilteredCount)

	resp = c.do(http.MethodPost, "/api/v1/shop/sheet/apply", nil)
	p := decode[page](t, resp)
	assert.Equal(t, []string{"lolito"}, p.ids())

	resp = c.do(http.MethodPut, "/api/v1/shop/sheet", map[string]any{"min_price": "1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCartFlow(t *testing.T) {
	a := setupApp(t)
	c := newClient(t, a, "cart-user")

	resp := c.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "syltherine", "quantity": 2, "color": "white"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cart := decode[map[string]any](t, resp)
	assert.True(t, decimal.NewFromInt(4_000_000).Equal(dec(t, cart["subtotal"])))
	assert.Equal(t, "Rp 4.000.000", cart["formatted_subtotal"])

	resp = c.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "syltherine", "color": "black"})
	cart = decode[map[string]any](t, resp)
	assert.Equal(t, 3.0, cart["count"])
	assert.Len(t, cart["items"], 2)

	resp = c.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "syltherine", "size": "XL"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "missing"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodDelete, "/api/v1/cart/lines", map[string]string{"product_id": "syltherine", "color": "black"})
	cart = decode[map[string]any](t, resp)
	assert.Equal(t, 2.0, cart["count"])

	resp = c.do(http.MethodPatch, "/api/v1/cart/items/syltherine", map[string]int{"quantity": 0})
	cart = decode[map[string]any](t, resp)
	assert.Equal(t, 1.0, cart["count"])

	other := newClient(t, a, "someone-else")
	resp = other.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Empty(t, decode[map[string]any](t, resp)["items"])

	resp = c.do(http.MethodDelete, "/api/v1/cart/items/syltherine", nil)
	assert.Empty(t, decode[map[string]any](t, resp)["items"])

	resp = c.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "respira"})
	resp.Body.Close()
	resp = c.do(http.MethodDelete, "/api/v1/cart", nil)
	assert.Equal(t, 0.0, decode[map[string]any](t, resp)["count"])
}

func TestClientIDIsIssued(t *testing.T) {
	c := newClient(t, setupApp(t), "")

	resp := c.do(http.MethodGet, "/api/v1/cart", nil)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(middleware.ClientIDHeader))
}

func TestWishlistFlow(t *testing.T) {
	c := newClient(t, setupApp(t), "wish-user")

	resp := c.do(http.MethodPost, "/api/v1/wishlist/items/leviosa/toggle", nil)
	assert.Equal(t, true, decode[map[string]any](t, resp)["in_wishlist"])

	resp = c.do(http.MethodGet, "/api/v1/wishlist/items/leviosa", nil)
	assert.Equal(t, true, decode[map[string]any](t, resp)["in_wishlist"])

	resp = c.do(http.MethodPost, "/api/v1/wishlist/items", map[string]string{"product_id": "leviosa"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Len(t, decode[[]map[string]any](t, resp), 1)

	resp = c.do(http.MethodPost, "/api/v1/wishlist/items", map[string]string{"product_id": "missing"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodPost, "/api/v1/wishlist/items", map[string]string{"product_id": "respira"})
	resp.Body.Close()
	resp = c.do(http.MethodDelete, "/api/v1/wishlist/items/leviosa", nil)
	list := decode[[]map[string]any](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "respira", list[0]["id"])

	resp = c.do(http.MethodDelete, "/api/v1/wishlist", nil)
	assert.Empty(t, decode[[]map[string]any](t, resp))
}

func billingBody() map[string]string {
	return map[string]string{
		"first_name": "Siti",
		"last_name":  "Rahma",
		"country":    "Indonesia",
		"street":     "Jl. Merdeka 1",
		"city":       "Bandung",
		"province":   "Jawa Barat",
		"zip":        "40111",
		"phone":      "08123456789",
		"email":      "siti@example.com",
	}
}

func TestCheckoutFlow(t *testing.T) {
	a := setupApp(t)
	c := newClient(t, a, "checkout-user")

	resp := c.do(http.MethodPost, "/api/v1/checkout", billingBody())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	c.register("Siti", "siti@example.com", "password123")

	resp = c.do(http.MethodPost, "/api/v1/checkout", billingBody())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[map[string]any](t, resp)["error"], "cart is empty")

	resp = c.do(http.MethodPost, "/api/v1/checkout", map[string]string{"first_name": "Siti"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "lolito", "quantity": 2, "size": "XL"})
	resp.Body.Close()

	resp = c.do(http.MethodPost, "/api/v1/checkout", billingBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	placed := decode[map[string]any](t, resp)
	assert.Equal(t, "Rp 10.000.000", placed["formatted_total"])
	order := placed["order"].(map[string]any)
	assert.Equal(t, "pending", order["status"])

	resp = c.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Empty(t, decode[map[string]any](t, resp)["items"])

	resp = c.do(http.MethodGet, "/api/v1/products/lolito", nil)
	assert.Equal(t, 3.0, decode[map[string]any](t, resp)["stock"])

	resp = c.do(http.MethodGet, "/api/v1/orders/mine", nil)
	mine := decode[[]map[string]any](t, resp)
	require.Len(t, mine, 1)
	assert.Len(t, mine[0]["items"], 1)

	resp = c.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "lolito", "quantity": 9})
	resp.Body.Close()
	resp = c.do(http.MethodPost, "/api/v1/checkout", billingBody())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAdminEndpoints(t *testing.T) {
	a := setupApp(t)

	customer := newClient(t, a, "customer")
	customer.register("Budi", "budi@example.com", "password123")
	resp := customer.do(http.MethodGet, "/api/v1/admin/dashboard", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	admin := newClient(t, a, "admin")
	admin.login(adminEmail, adminPassword)

	resp = admin.do(http.MethodPost, "/api/v1/admin/products", map[string]any{
		"name": "Oslo Chair", "category": "Dining", "price": "150000", "stock": 3, "colors": []string{"oak"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	id := created["id"].(string)
	assert.Contains(t, id, "oslo-chair-")
	assert.Equal(t, "dining", created["category"])

	resp = admin.do(http.MethodGet, "/api/v1/shop", nil)
	assert.Equal(t, 6, decode[page](t, resp).FilteredCount)

	resp = admin.do(http.MethodPost, "/api/v1/admin/products", map[string]any{
		"name": "Bad Deal", "category": "dining", "price": "100", "discounted_price": "200",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = admin.do(http.MethodPost, "/api/v1/admin/products", map[string]any{"name": "X"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = admin.do(http.MethodPut, "/api/v1/admin/products/"+id, map[string]any{
		"name": "Oslo Chair", "category": "dining", "price": "175000", "stock": 3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Rp 175.000", decode[map[string]any](t, resp)["formatted_price"])

	resp = admin.do(http.MethodPut, "/api/v1/admin/products/missing", map[string]any{
		"name": "Nothing", "category": "dining", "price": "1",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = uploadImage(t, a, admin.token, id)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()

	resp = admin.do(http.MethodDelete, "/api/v1/admin/products/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	resp = admin.do(http.MethodGet, "/api/v1/products/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = customer.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "respira", "quantity": 2})
	resp.Body.Close()
	resp = customer.do(http.MethodPost, "/api/v1/checkout", billingBody())
	order := decode[map[string]any](t, resp)["order"].(map[string]any)
	orderID := order["id"].(string)

	resp = admin.do(http.MethodGet, "/api/v1/admin/orders", nil)
	assert.Len(t, decode[[]map[string]any](t, resp), 1)

	resp = admin.do(http.MethodGet, "/api/v1/admin/orders/"+orderID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = admin.do(http.MethodPatch, "/api/v1/admin/orders/"+orderID+"/status", map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = admin.do(http.MethodPatch, "/api/v1/admin/orders/"+orderID+"/status", map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = admin.do(http.MethodPatch, "/api/v1/admin/orders/missing/status", map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = admin.do(http.MethodGet, "/api/v1/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[map[string]any](t, resp)
	assert.Equal(t, 1.0, stats["total_orders"])
	assert.Equal(t, 1.0, stats["total_customers"])
	assert.Equal(t, "Rp 1.000.000", stats["formatted_total"])
}

func uploadImage(t *testing.T, a *fiber.App, token, id string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "chair.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products/"+id+"/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHealthAndMetrics(t *testing.T) {
	c := newClient(t, setupApp(t), "")

	resp := c.do(http.MethodGet, "/health", nil)
	health := decode[map[string]any](t, resp)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "disabled", health["rabbitmq"])

	resp = c.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "furniro_http_requests_total")
}

func TestForgetSession(t *testing.T) {
	c := newClient(t, setupApp(t), "forgetful")

	resp := c.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "respira"})
	resp.Body.Close()
	resp = c.do(http.MethodPost, "/api/v1/wishlist/items", map[string]string{"product_id": "lolito"})
	resp.Body.Close()

	resp = c.do(http.MethodDelete, "/api/v1/session", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Empty(t, decode[map[string]any](t, resp)["items"])
	resp = c.do(http.MethodGet, "/api/v1/wishlist", nil)
	assert.Empty(t, decode[[]map[string]any](t, resp))
}

func TestRemoveCartLineIgnoresVariantCase(t *testing.T) {
	c := newClient(t, setupApp(t), "case-user")

	resp := c.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": "syltherine", "size": "standard", "color": "WHITE"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodDelete, "/api/v1/cart/lines", map[string]string{"product_id": "syltherine", "size": "standard", "color": "WHITE"})
	assert.Empty(t, decode[map[string]any](t, resp)["items"])
}
