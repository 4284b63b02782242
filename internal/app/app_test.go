package app

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"furniro/config"
	"furniro/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func memoryConfig() *config.Config {
	return &config.Config{
		DBDriver:           config.DriverMemory,
		JWTSecret:          "test_jwt_secret",
		JWTTTL:             time.Hour,
		ItemsPerPage:       12,
		FilterMaxPrice:     10_000_000,
		SessionIdleTimeout: time.Minute,
		SeedProducts:       true,
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, a.Close()) })
	return a
}

func get(t *testing.T, a *App, path, clientID string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if clientID != "" {
		req.Header.Set(middleware.ClientIDHeader, clientID)
	}
	resp, err := a.Fiber.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestNewWithMemoryDriver(t *testing.T) {
	a := newTestApp(t, memoryConfig())

	products, err := a.Products.GetAllProducts()
	require.NoError(t, err)
	assert.Len(t, products, 5)
	assert.Len(t, a.Shop.Catalog().Filtered(), 5)

	resp := get(t, a, "/health", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var health map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "disabled", health["rabbitmq"])
}

func TestNewWithoutSeed(t *testing.T) {
	cfg := memoryConfig()
	cfg.SeedProducts = false
	a := newTestApp(t, cfg)

	products, err := a.Products.GetAllProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestNewSeedsAdmin(t *testing.T) {
	cfg := memoryConfig()
	cfg.AdminEmail = "admin@furniro.test"
	cfg.AdminPassword = "adminpass"
	a := newTestApp(t, cfg)

	token, user, err := a.Auth.LoginUser("admin@furniro.test", "adminpass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ADMIN", string(user.Role))
}

func TestSessionStateSurvivesEviction(t *testing.T) {
	a := newTestApp(t, memoryConfig())

	_, err := a.Shop.AddToCart("client-a", "respira", 2, "", "")
	require.NoError(t, err)
	_, err = a.Shop.ToggleWishlist("client-a", "lolito")
	require.NoError(t, err)
	require.Equal(t, 1, a.Shop.SessionCount())

	assert.Equal(t, 1, a.Shop.EvictIdle(-time.Second))
	assert.Zero(t, a.Shop.SessionCount())

	assert.Equal(t, 2, a.Shop.CartSummary("client-a").Count)
	assert.True(t, a.Shop.InWishlist("client-a", "lolito"))
}

func TestDefaultPageSizeAppliesToNewSessions(t *testing.T) {
	a := newTestApp(t, memoryConfig())

	before := a.Shop.Session("early").Catalog.Pagination()
	a.Shop.SetDefaultItemsPerPage(2)
	after := a.Shop.Session("late").Catalog.Pagination()

	assert.Equal(t, 12, before.ItemsPerPage)
	assert.Equal(t, 2, after.ItemsPerPage)
	assert.Equal(t, 3, after.TotalPages)
	assert.Equal(t, 12, a.Shop.Session("early").Catalog.Pagination().ItemsPerPage)
}

func TestClientSessionHeader(t *testing.T) {
	a := newTestApp(t, memoryConfig())

	resp := get(t, a, "/api/v1/shop", "")
	resp.Body.Close()
	issued := resp.Header.Get(middleware.ClientIDHeader)
	require.NotEmpty(t, issued)

	resp = get(t, a, "/api/v1/shop", issued)
	resp.Body.Close()
	assert.Equal(t, issued, resp.Header.Get(middleware.ClientIDHeader))
	assert.Equal(t, 1, a.Shop.SessionCount())
}

func TestMetricsEndpoint(t *testing.T) {
	a := newTestApp(t, memoryConfig())

	get(t, a, "/api/v1/products", "").Body.Close()
	resp := get(t, a, "/metrics", "")
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `route="/api/v1/products"`), text)
	assert.Contains(t, text, "go_goroutines")
}

func TestStartStopsWithContext(t *testing.T) {
	a := newTestApp(t, memoryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, a.Start(ctx))
	cancel()
}

func TestRestartAfterDeletingSeededProduct(t *testing.T) {
	cfg := memoryConfig()
	cfg.DBDriver = config.DriverSQLite
	cfg.DBDSN = filepath.Join(t.TempDir(), "furniro.db")

	first, err := New(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, first.Products.DeleteProduct(context.Background(), "syltherine"))
	require.NoError(t, first.Close())

	second := newTestApp(t, cfg)
	products, err := second.Products.GetAllProducts()
	require.NoError(t, err)
	assert.Len(t, products, 4)
	_, err = second.Products.GetProductByID("syltherine")
	assert.Error(t, err)
}
