package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"furniro/internal/middleware"
	"furniro/internal/models"
	"furniro/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ShopHandler serves the per-client catalog view: filters, sheet, paging and sort.
type ShopHandler struct {
	shop     *services.ShopService
	validate *validator.Validate
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(shop *services.ShopService) *ShopHandler {
	return &ShopHandler{shop: shop, validate: validator.New()}
}

// RegisterRoutes registers the shop view routes. They expect middleware.ClientSession.
func (h *ShopHandler) RegisterRoutes(router fiber.Router) {
	shop := router.Group("/shop")
	shop.Get("/", h.HandleGetPage)
	shop.Get("/search", h.HandleSearch)
	shop.Patch("/filters", h.HandlePatchFilters)
	shop.Delete("/filters", h.HandleResetFilters)
	shop.Post("/filters/toggle", h.HandleToggleFilter)
	shop.Put("/filters/price", h.HandleSetPriceRange)
	shop.Delete("/filters/price", h.HandleClearPriceRange)
	shop.Get("/sheet", h.HandleGetSheet)
	shop.Put("/sheet", h.HandleStageSheet)
	shop.Post("/sheet/apply", h.HandleApplySheet)
	shop.Put("/page", h.HandleSetPage)
	shop.Put("/page-size", h.HandleSetPageSize)
	shop.Put("/sort", h.HandleSetSort)
	router.Delete("/session", h.HandleForgetSession)
}

func (h *ShopHandler) session(c *fiber.Ctx) *services.Session {
	return h.shop.Session(middleware.ClientID(c))
}

func (h *ShopHandler) page(c *fiber.Ctx) error {
	return c.JSON(viewPage(h.session(c).Catalog.Page()))
}

// HandleGetPage returns the current page of the filtered catalog.
func (h *ShopHandler) HandleGetPage(c *fiber.Ctx) error {
	return h.page(c)
}

// HandleSearch sets the search query from ?q=.
func (h *ShopHandler) HandleSearch(c *fiber.Ctx) error {
	h.session(c).Panel.Search(c.Query("q"))
	return h.page(c)
}

// optionalPrice tells an absent JSON field apart from an explicit null.
type optionalPrice struct {
	Set   bool
	Value decimal.NullDecimal
}

func (o *optionalPrice) UnmarshalJSON(b []byte) error {
	o.Set = true
	return o.Value.UnmarshalJSON(b)
}

// FilterRequest is a partial filter update. Omitted fields keep their value; a null price
// bound clears it.
type FilterRequest struct {
	Category    *string       `json:"category"`
	MinPrice    optionalPrice `json:"min_price"`
	MaxPrice    optionalPrice `json:"max_price"`
	Colors      *[]string     `json:"colors"`
	Sizes       *[]string     `json:"sizes"`
	SearchQuery *string       `json:"search_query"`
}

func (r FilterRequest) patch() models.FilterPatch {
	p := models.FilterPatch{
		Category:    r.Category,
		Colors:      r.Colors,
		Sizes:       r.Sizes,
		SearchQuery: r.SearchQuery,
	}
	if r.MinPrice.Set {
		p.MinPrice = &r.MinPrice.Value
	}
	if r.MaxPrice.Set {
		p.MaxPrice = &r.MaxPrice.Value
	}
	return p
}

// HandlePatchFilters merges the given dimensions into the filters and returns page 1.
func (h *ShopHandler) HandlePatchFilters(c *fiber.Ctx) error {
	var req FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	h.session(c).Catalog.SetFilters(req.patch())
	return h.page(c)
}

// HandleResetFilters clears every filter dimension.
func (h *ShopHandler) HandleResetFilters(c *fiber.Ctx) error {
	h.session(c).Panel.Reset()
	return h.page(c)
}

// ToggleRequest flips one value of a filter dimension.
type ToggleRequest struct {
	Dimension string `json:"dimension" validate:"required,oneof=category color size"`
	Value     string `json:"value" validate:"required"`
}

// HandleToggleFilter toggles a category, color or size.
func (h *ShopHandler) HandleToggleFilter(c *fiber.Ctx) error {
	var req ToggleRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}
	panel := h.session(c).Panel
	switch req.Dimension {
	case "category":
		panel.ToggleCategory(req.Value)
	case "color":
		panel.ToggleColor(req.Value)
	case "size":
		panel.ToggleSize(req.Value)
	}
	return h.page(c)
}

// PriceRangeRequest carries both bounds of a price range.
type PriceRangeRequest struct {
	MinPrice *decimal.Decimal `json:"min_price" validate:"required"`
	MaxPrice *decimal.Decimal `json:"max_price" validate:"required"`
}

func (r PriceRangeRequest) check() error {
	if r.MinPrice.IsNegative() || r.MaxPrice.IsNegative() {
		return errors.New("price bounds must not be negative")
	}
	return nil
}

// HandleSetPriceRange sets both price bounds.
func (h *ShopHandler) HandleSetPriceRange(c *fiber.Ctx) error {
	var req PriceRangeRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}
	if err := req.check(); err != nil {
		return badRequest(c, "Invalid price range", err)
	}
	h.session(c).Panel.SetPriceRange(*req.MinPrice, *req.MaxPrice)
	return h.page(c)
}

// HandleClearPriceRange removes both price bounds.
func (h *ShopHandler) HandleClearPriceRange(c *fiber.Ctx) error {
	h.session(c).Panel.ClearPriceRange()
	return h.page(c)
}

// HandleGetSheet returns the staged sheet selection.
func (h *ShopHandler) HandleGetSheet(c *fiber.Ctx) error {
	return c.JSON(h.session(c).Sheet.Staged())
}

// SheetRequest stages a price range and/or toggles the staged category.
type SheetRequest struct {
	MinPrice *decimal.Decimal `json:"min_price" validate:"required_with=MaxPrice"`
	MaxPrice *decimal.Decimal `json:"max_price" validate:"required_with=MinPrice"`
	Category *string          `json:"category"`
}

// HandleStageSheet records a selection without touching the catalog.
func (h *ShopHandler) HandleStageSheet(c *fiber.Ctx) error {
	var req SheetRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}
	sheet := h.session(c).Sheet
	if req.MinPrice != nil && req.MaxPrice != nil {
		pr := PriceRangeRequest{MinPrice: req.MinPrice, MaxPrice: req.MaxPrice}
		if err := pr.check(); err != nil {
			return badRequest(c, "Invalid price range", err)
		}
		sheet.StagePriceRange(*req.MinPrice, *req.MaxPrice)
	}
	if req.Category != nil {
		sheet.StageCategory(strings.TrimSpace(*req.Category))
	}
	return c.JSON(sheet.Staged())
}

// HandleApplySheet pushes the staged selection to the catalog.
func (h *ShopHandler) HandleApplySheet(c *fiber.Ctx) error {
	h.session(c).Sheet.Apply()
	return h.page(c)
}

// PageRequest selects a page.
type PageRequest struct {
	Page int `json:"page"`
}

// HandleSetPage moves to a page. Out-of-range pages are accepted and come back empty.
func (h *ShopHandler) HandleSetPage(c *fiber.Ctx) error {
	var req PageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	h.session(c).Catalog.SetCurrentPage(req.Page)
	return h.page(c)
}

// PageSizeRequest changes the page size.
type PageSizeRequest struct {
	ItemsPerPage int `json:"items_per_page" validate:"required,min=1,max=100"`
}

// HandleSetPageSize changes the page size and returns page 1.
func (h *ShopHandler) HandleSetPageSize(c *fiber.Ctx) error {
	var req PageSizeRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}
	h.session(c).Catalog.SetItemsPerPage(req.ItemsPerPage)
	return h.page(c)
}

// SortRequest selects the order of the list.
type SortRequest struct {
	Sort string `json:"sort"`
}

// HandleSetSort changes the sort key.
func (h *ShopHandler) HandleSetSort(c *fiber.Ctx) error {
	var req SortRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	key, ok := models.ParseSortKey(req.Sort)
	if !ok {
		return badRequest(c, fmt.Sprintf("Unknown sort %q", req.Sort), nil)
	}
	h.session(c).Catalog.SetSort(key)
	return h.page(c)
}

// HandleForgetSession discards the caller's filters, cart and wishlist, stored copies included.
func (h *ShopHandler) HandleForgetSession(c *fiber.Ctx) error {
	if err := h.shop.ForgetSession(middleware.ClientID(c)); err != nil {
		log.Printf("Error forgetting session: %v", err)
		return fail(c, "Could not reset session", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
