package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"furniro/internal/models"
	"furniro/internal/repositories"
	"furniro/internal/seed"
	"furniro/pkg/media"

	"github.com/google/uuid"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	uploader media.Uploader

	mu        sync.Mutex
	listeners []func([]models.Product)
}

// NewProductService creates a new ProductService. A nil uploader disables image uploads.
func NewProductService(repo repositories.ProductRepository, uploader media.Uploader) *ProductService {
	if uploader == nil {
		uploader = media.Noop{}
	}
	return &ProductService{
		repo:     repo,
		uploader: uploader,
	}
}

// Subscribe registers fn to receive the full product list after every change.
func (s *ProductService) Subscribe(fn func([]models.Product)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *ProductService) changed() {
	products, err := s.repo.GetAll()
	if err != nil {
		log.Printf("Failed to reload products after change: %v", err)
		return
	}
	s.mu.Lock()
	ls := make([]func([]models.Product), len(s.listeners))
	copy(ls, s.listeners)
	s.mu.Unlock()
	for _, fn := range ls {
		fn(products)
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Categories returns the fixed catalog sections.
func (s *ProductService) Categories() []models.Category {
	out := make([]models.Category, len(seed.Categories))
	copy(out, seed.Categories)
	return out
}

// CreateProduct validates and stores a new product. A missing ID is derived from the name.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if product.ID == "" {
		product.ID = slug(product.Name) + "-" + uuid.New().String()[:8]
	}
	product.Category = strings.ToLower(product.Category)
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.changed()
	return nil
}

// UpdateProduct validates and replaces an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	product.Category = strings.ToLower(product.Category)
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.changed()
	return nil
}

// DeleteProduct deletes a product and its uploaded image.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if err := s.uploader.Destroy(ctx, product.ImagePublicID); err != nil {
		log.Printf("Failed to remove image of product %s: %v", id, err)
	}
	s.changed()
	return nil
}

// AttachImage uploads file and makes it the main image of the product. The previous upload,
// if any, is removed.
func (s *ProductService) AttachImage(ctx context.Context, id string, file io.Reader) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	img, err := s.uploader.Upload(ctx, file, product.ID)
	if err != nil {
		return nil, err
	}

	previous := product.ImagePublicID
	product.Image = img.URL
	product.ImagePublicID = img.PublicID
	if len(product.Images) == 0 || product.Images[0] != img.URL {
		product.Images = append([]string{img.URL}, product.Images...)
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	if previous != "" && previous != img.PublicID {
		if err := s.uploader.Destroy(ctx, previous); err != nil {
			log.Printf("Failed to remove old image %s: %v", previous, err)
		}
	}
	s.changed()
	return product, nil
}

// AdjustStock adds delta to the stock of a product. Stock never drops below zero.
func (s *ProductService) AdjustStock(id string, delta int) error {
	if err := s.repo.AdjustStock(id, delta); err != nil {
		return fmt.Errorf("failed to adjust stock of %s: %w", id, err)
	}
	s.changed()
	return nil
}

// Seed stores every product that does not exist yet. Products an admin deleted stay deleted.
func (s *ProductService) Seed(products []models.Product) error {
	for i := range products {
		p := &products[i]
		exists, err := s.repo.Exists(p.ID)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
		if exists {
			continue
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid seed product: %w", err)
		}
		if err := s.repo.Create(p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
		log.Printf("Seeded product: %s (ID: %s)", p.Name, p.ID)
	}
	s.changed()
	return nil
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
