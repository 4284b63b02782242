package handlers

import (
	"log"

	"furniro/internal/middleware"
	"furniro/internal/models"
	"furniro/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler serves the cart of the calling client.
type CartHandler struct {
	shop     *services.ShopService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(shop *services.ShopService) *CartHandler {
	return &CartHandler{shop: shop, validate: validator.New()}
}

// RegisterRoutes registers the cart routes. They expect middleware.ClientSession.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart")
	cart.Get("/", h.HandleGetCart)
	cart.Delete("/", h.HandleClearCart)
	cart.Post("/items", h.HandleAddItem)
	cart.Patch("/items/:productId", h.HandleUpdateQuantity)
	cart.Delete("/items/:productId", h.HandleRemoveItem)
	cart.Delete("/lines", h.HandleRemoveLine)
}

// HandleGetCart returns the cart lines and totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(viewCart(h.shop.CartSummary(middleware.ClientID(c))))
}

// AddItemRequest adds a product variant to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=99"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// HandleAddItem adds a product at its current price. Quantity defaults to 1.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}
	summary, err := h.shop.AddToCart(middleware.ClientID(c), req.ProductID, req.Quantity, req.Size, req.Color)
	if err != nil {
		log.Printf("Error adding %s to cart: %v", req.ProductID, err)
		return fail(c, "Could not add item to cart", err)
	}
	return c.Status(fiber.StatusCreated).JSON(viewCart(summary))
}

// QuantityRequest sets the quantity of a product's lines.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity sets the quantity of every line of the product; values below 1 become 1.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req QuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	return c.JSON(viewCart(h.shop.UpdateCartQuantity(middleware.ClientID(c), c.Params("productId"), req.Quantity)))
}

// HandleRemoveItem removes every line of the product.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	return c.JSON(viewCart(h.shop.RemoveFromCart(middleware.ClientID(c), c.Params("productId"))))
}

// RemoveLineRequest identifies a single cart line.
type RemoveLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// HandleRemoveLine removes one size/color variant of a product.
func (h *CartHandler) HandleRemoveLine(c *fiber.Ctx) error {
	var req RemoveLineRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}
	key := models.NewLineKey(req.ProductID, req.Size, req.Color)
	return c.JSON(viewCart(h.shop.RemoveCartLine(middleware.ClientID(c), key)))
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	h.shop.ClearCart(middleware.ClientID(c))
	return c.JSON(viewCart(h.shop.CartSummary(middleware.ClientID(c))))
}
