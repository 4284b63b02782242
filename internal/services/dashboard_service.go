package services

import (
	"sort"

	"furniro/internal/models"
	"furniro/internal/repositories"

	"github.com/shopspring/decimal"
)

const dashboardListSize = 5

// DashboardService aggregates the admin overview.
type DashboardService struct {
	orders   repositories.OrderRepository
	users    repositories.UserRepository
	products repositories.ProductRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(orders repositories.OrderRepository, users repositories.UserRepository, products repositories.ProductRepository) *DashboardService {
	return &DashboardService{orders: orders, users: users, products: products}
}

// Stats computes the dashboard. Cancelled orders count toward OrdersByStatus only.
func (s *DashboardService) Stats() (*models.DashboardStats, error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}
	customers, err := s.users.CountByRole(models.RoleUser)
	if err != nil {
		return nil, err
	}
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalRevenue:   decimal.Zero,
		TotalOrders:    len(orders),
		TotalCustomers: customers,
		TotalProducts:  len(products),
		OrdersByStatus: make(map[string]int),
		RecentOrders:   []models.Order{},
		TopProducts:    []models.ProductSales{},
	}

	sales := make(map[string]*models.ProductSales)
	for _, o := range orders {
		stats.OrdersByStatus[o.Status]++
		if o.Status == models.OrderCancelled {
			continue
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		for _, it := range o.Items {
			ps, ok := sales[it.ProductID]
			if !ok {
				ps = &models.ProductSales{ProductID: it.ProductID, Name: it.Name, Revenue: decimal.Zero}
				sales[it.ProductID] = ps
			}
			ps.Sold += it.Quantity
			ps.Revenue = ps.Revenue.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}
	stats.FormattedTotal = models.FormatPrice(stats.TotalRevenue)

	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	stats.RecentOrders = append(stats.RecentOrders, orders[:min(dashboardListSize, len(orders))]...)

	for _, ps := range sales {
		stats.TopProducts = append(stats.TopProducts, *ps)
	}
	sort.Slice(stats.TopProducts, func(i, j int) bool {
		a, b := stats.TopProducts[i], stats.TopProducts[j]
		if a.Sold != b.Sold {
			return a.Sold > b.Sold
		}
		return a.ProductID < b.ProductID
	})
	stats.TopProducts = stats.TopProducts[:min(dashboardListSize, len(stats.TopProducts))]
	return stats, nil
}
