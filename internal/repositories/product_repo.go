package repositories

import (
	"furniro/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	// Exists reports whether id is taken, deleted products included.
	Exists(id string) (bool, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// AdjustStock adds delta to the stock of a product, refusing to go below zero.
	AdjustStock(id string, delta int) error
}
