package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// ValidOrderStatuses lists every status an order may hold.
var ValidOrderStatuses = map[string]bool{
	OrderPending:    true,
	OrderProcessing: true,
	OrderShipped:    true,
	OrderDelivered:  true,
	OrderCancelled:  true,
}

// OrderItem represents a single line within an order.
type OrderItem struct {
	ID        uint            `json:"-" gorm:"primaryKey"`
	OrderID   string          `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:numeric(14,2)"` // price captured in the cart
}

// BillingDetails is the checkout form.
type BillingDetails struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Company    string `json:"company,omitempty"`
	Country    string `json:"country" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	Province   string `json:"province" validate:"required"`
	ZIP        string `json:"zip" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Additional string `json:"additional,omitempty" validate:"max=1000"`
}

// Order represents a customer order.
type Order struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string          `json:"user_id" gorm:"index;type:varchar(36)"`
	ClientID  string          `json:"-" gorm:"type:varchar(64)"`
	Items     []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Billing   BillingDetails  `json:"billing" gorm:"embedded;embeddedPrefix:billing_"`
	Subtotal  decimal.Decimal `json:"subtotal" gorm:"type:numeric(14,2)"`
	Total     decimal.Decimal `json:"total" gorm:"type:numeric(14,2)"`
	Status    string          `json:"status" gorm:"index;type:varchar(16)"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderPlacedEvent is published once an order has been stored.
type OrderPlacedEvent struct {
	OrderID string          `json:"order_id"`
	UserID  string          `json:"user_id"`
	Status  string          `json:"status"`
	Total   decimal.Decimal `json:"total"`
	Items   []OrderItem     `json:"items"`
}

// ProductSales aggregates units sold per product.
type ProductSales struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Sold      int             `json:"sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	FormattedTotal string          `json:"formatted_total"`
	TotalOrders    int             `json:"total_orders"`
	TotalCustomers int64           `json:"total_customers"`
	TotalProducts  int             `json:"total_products"`
	OrdersByStatus map[string]int  `json:"orders_by_status"`
	RecentOrders   []Order         `json:"recent_orders"`
	TopProducts    []ProductSales  `json:"top_products"`
}
