package handlers

import (
	"log"

	"furniro/internal/models"
	"furniro/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler serves the public catalog and the admin product endpoints.
type ProductHandler struct {
	service  *services.ProductService
	shop     *services.ShopService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, shop *services.ShopService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		shop:     shop,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
	router.Get("/products/:id/related", h.HandleGetRelated)
	router.Get("/categories", h.HandleGetCategories)
}

// RegisterAdminRoutes registers the product management routes.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/products", h.HandleCreateProduct)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
	router.Post("/products/:id/image", h.HandleUploadImage)
}

// HandleGetProducts lists products. ?category=, ?new=true and ?sale=true narrow the list.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	catalog := h.shop.Catalog()
	var products []models.Product
	switch {
	case c.Query("category") != "":
		products = catalog.ByCategory(c.Query("category"))
	case c.QueryBool("new"):
		products = catalog.NewArrivals()
	case c.QueryBool("sale"):
		products = catalog.OnSale()
	default:
		all, err := h.service.GetAllProducts()
		if err != nil {
			log.Printf("Error getting all products: %v", err)
			return fail(c, "Could not retrieve products", err)
		}
		products = all
	}
	return c.JSON(viewProducts(products))
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetProductByID(id)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", id, err)
		return fail(c, "Could not retrieve product", err)
	}
	return c.JSON(viewProduct(*product))
}

// HandleGetRelated lists products of the same category. ?limit= defaults to 4.
func (h *ProductHandler) HandleGetRelated(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.service.GetProductByID(id); err != nil {
		return fail(c, "Could not retrieve product", err)
	}
	return c.JSON(viewProducts(h.shop.Catalog().Related(id, c.QueryInt("limit"))))
}

// HandleGetCategories lists the catalog sections.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if ok, err := parseAndValidate(c, h.validate, &product); !ok {
		return err
	}
	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return fail(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(viewProduct(product))
}

// HandleUpdateProduct replaces an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	existing, err := h.service.GetProductByID(id)
	if err != nil {
		return fail(c, "Could not update product", err)
	}

	var product models.Product
	if ok, err := parseAndValidate(c, h.validate, &product); !ok {
		return err
	}
	product.ID = id
	product.ImagePublicID = existing.ImagePublicID
	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return fail(c, "Could not update product", err)
	}
	return c.JSON(viewProduct(product))
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return fail(c, "Could not delete product", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleUploadImage stores the multipart "image" file as the product's main image.
func (h *ProductHandler) HandleUploadImage(c *fiber.Ctx) error {
	id := c.Params("id")
	fh, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "Image file is required", err)
	}
	file, err := fh.Open()
	if err != nil {
		return badRequest(c, "Could not read image", err)
	}
	defer file.Close()

	product, err := h.service.AttachImage(c.UserContext(), id, file)
	if err != nil {
		log.Printf("Error uploading image for product %s (%s, %d bytes): %v", id, fh.Filename, fh.Size, err)
		return fail(c, "Could not upload image", err)
	}
	return c.JSON(viewProduct(*product))
}
