package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"furniro/internal/metrics"
	"furniro/internal/models"
	"furniro/internal/repositories"

	"github.com/google/uuid"
)

// OrderPublisher delivers order.placed events to the broker.
type OrderPublisher interface {
	PublishOrderPlaced(event any) error
}

// OrderService handles checkout and the order lifecycle.
type OrderService struct {
	orderRepo repositories.OrderRepository
	products  *ProductService
	shop      *ShopService
	publisher OrderPublisher
	metrics   *metrics.Metrics
}

// NewOrderService creates a new OrderService. With a nil publisher stock is adjusted during
// checkout instead of by the order.placed consumer.
func NewOrderService(orderRepo repositories.OrderRepository, products *ProductService, shop *ShopService, publisher OrderPublisher, m *metrics.Metrics) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		products:  products,
		shop:      shop,
		publisher: publisher,
		metrics:   m,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// ListForUser retrieves the orders placed by userID.
func (s *OrderService) ListForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// Checkout turns the cart of clientID into an order of userID at the prices captured in the
// cart, then empties the cart.
func (s *OrderService) Checkout(userID, clientID string, billing models.BillingDetails) (*models.Order, error) {
	cart := s.shop.Session(clientID).Cart
	summary := cart.Summary()
	if len(summary.Items) == 0 {
		return nil, ErrEmptyCart
	}

	wanted := make(map[string]int)
	for _, line := range summary.Items {
		wanted[line.ProductID] += line.Quantity
	}
	for id, qty := range wanted {
		product, err := s.products.GetProductByID(id)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", id, err)
		}
		if product.Stock < qty {
			return nil, fmt.Errorf("%s (requested: %d, available: %d): %w",
				product.Name, qty, product.Stock, repositories.ErrInsufficientStock)
		}
	}

	items := make([]models.OrderItem, 0, len(summary.Items))
	for _, line := range summary.Items {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Size:      line.Size,
			Color:     line.Color,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice(),
		})
	}

	now := time.Now()
	order := &models.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		ClientID:  clientID,
		Items:     items,
		Billing:   billing,
		Subtotal:  summary.Subtotal,
		Total:     summary.Total,
		Status:    models.OrderPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publish(order)
	cart.Clear()

	if s.metrics != nil {
		s.metrics.OrdersPlaced.Inc()
		s.metrics.OrderRevenue.Add(order.Total.InexactFloat64())
	}
	log.Printf("Order %s placed by user %s: %d items, total %s", order.ID, userID, len(items), models.FormatPrice(order.Total))
	return order, nil
}

func (s *OrderService) publish(order *models.Order) {
	event := models.OrderPlacedEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
		Total:   order.Total,
		Items:   order.Items,
	}
	if s.publisher != nil {
		err := s.publisher.PublishOrderPlaced(event)
		if err == nil {
			log.Printf("Successfully published order placed event for order %s", order.ID)
			return
		}
		log.Printf("Warning: Failed to publish order placed event for order %s: %v", order.ID, err)
	}
	s.reserveStock(event)
}

// HandleOrderPlaced consumes an order.placed message body and takes the ordered units out of
// stock.
func (s *OrderService) HandleOrderPlaced(body []byte) error {
	var event models.OrderPlacedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode order placed event: %w", err)
	}
	if event.OrderID == "" {
		return errors.New("order placed event without order id")
	}
	s.reserveStock(event)
	return nil
}

func (s *OrderService) reserveStock(event models.OrderPlacedEvent) {
	for _, item := range event.Items {
		if err := s.products.AdjustStock(item.ProductID, -item.Quantity); err != nil {
			log.Printf("Order %s: %v", event.OrderID, err)
		}
	}
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if !models.ValidOrderStatuses[status] {
		return fmt.Errorf("%q: %w", status, ErrInvalidStatus)
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}
