package handlers

import (
	"furniro/internal/middleware"
	"furniro/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler serves the wishlist of the calling client.
type WishlistHandler struct {
	shop     *services.ShopService
	validate *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(shop *services.ShopService) *WishlistHandler {
	return &WishlistHandler{shop: shop, validate: validator.New()}
}

// RegisterRoutes registers the wishlist routes. They expect middleware.ClientSession.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	w := router.Group("/wishlist")
	w.Get("/", h.HandleGetWishlist)
	w.Delete("/", h.HandleClearWishlist)
	w.Post("/items", h.HandleAddItem)
	w.Get("/items/:id", h.HandleIsInWishlist)
	w.Post("/items/:id/toggle", h.HandleToggle)
	w.Delete("/items/:id", h.HandleRemoveItem)
}

// HandleGetWishlist lists the wishlist.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	return c.JSON(viewProducts(h.shop.Wishlist(middleware.ClientID(c))))
}

// WishlistItemRequest names a product.
type WishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// HandleAddItem adds a product. Adding a present product changes nothing.
func (h *WishlistHandler) HandleAddItem(c *fiber.Ctx) error {
	var req WishlistItemRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}
	items, err := h.shop.AddToWishlist(middleware.ClientID(c), req.ProductID)
	if err != nil {
		return fail(c, "Could not add item to wishlist", err)
	}
	return c.Status(fiber.StatusCreated).JSON(viewProducts(items))
}

// HandleIsInWishlist reports membership of a product.
func (h *WishlistHandler) HandleIsInWishlist(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"product_id":  c.Params("id"),
		"in_wishlist": h.shop.InWishlist(middleware.ClientID(c), c.Params("id")),
	})
}

// HandleToggle adds the product when absent and removes it otherwise.
func (h *WishlistHandler) HandleToggle(c *fiber.Ctx) error {
	added, err := h.shop.ToggleWishlist(middleware.ClientID(c), c.Params("id"))
	if err != nil {
		return fail(c, "Could not update wishlist", err)
	}
	return c.JSON(fiber.Map{
		"product_id":  c.Params("id"),
		"in_wishlist": added,
	})
}

// HandleRemoveItem removes a product.
func (h *WishlistHandler) HandleRemoveItem(c *fiber.Ctx) error {
	return c.JSON(viewProducts(h.shop.RemoveFromWishlist(middleware.ClientID(c), c.Params("id"))))
}

// HandleClearWishlist empties the wishlist.
func (h *WishlistHandler) HandleClearWishlist(c *fiber.Ctx) error {
	h.shop.ClearWishlist(middleware.ClientID(c))
	return c.JSON(viewProducts(nil))
}
