// internal/domain/analytics/service.go
package analytics

import (
	"sort"

	"github.com/your-org/dryfruits-storefront/internal/domain/catalog"
	"github.com/your-org/dryfruits-storefront/internal/domain/customer"
	"github.com/your-org/dryfruits-storefront/internal/domain/order"
)

const (
	topProductsLimit  = 5
	recentOrdersLimit = 5
)

// Dashboard represents the admin overview, derived on read
type Dashboard struct {
	// Product metrics
	TotalProducts int `json:"totalProducts"`
	OutOfStock    int `json:"outOfStock"`
	LowStock      int `json:"lowStock"`

	// Order metrics
	TotalOrders       int                       `json:"totalOrders"`
	PendingOrders     int                       `json:"pendingOrders"`
	StatusHistogram   map[order.OrderStatus]int `json:"statusHistogram"`
	TotalRevenue      int64                     `json:"totalRevenue"`
	AverageOrderValue float64                   `json:"averageOrderValue"`

	// Customer metrics
	TotalCustomers int `json:"totalCustomers"`

	TopProducts  []ProductSalesData `json:"topProducts"`
	RecentOrders []RecentOrderData  `json:"recentOrders"`
	LowStockList []LowStockData     `json:"lowStockList"`
}

// ProductSalesData is units and revenue sold for one product
type ProductSalesData struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	TotalSold   int    `json:"totalSold"`
	Revenue     int64  `json:"revenue"`
	OrderCount  int    `json:"orderCount"`
}

// RecentOrderData summarises one of the latest orders
type RecentOrderData struct {
	OrderID      string            `json:"orderId"`
	CustomerName string            `json:"customerName"`
	Total        int64             `json:"total"`
	Status       order.OrderStatus `json:"status"`
}

// LowStockData is a product that needs restocking soon
type LowStockData struct {
	ProductID    int    `json:"productId"`
	ProductName  string `json:"productName"`
	CurrentStock int    `json:"currentStock"`
}

// BuildDashboard computes the dashboard from store snapshots. Orders are
// expected newest first. Revenue counts every order total regardless
// of status.
func BuildDashboard(products []catalog.Product, orders []order.Order, customers []customer.Customer, lowStockThreshold int) Dashboard {
	d := Dashboard{
		TotalProducts:   len(products),
		TotalOrders:     len(orders),
		TotalCustomers:  len(customers),
		StatusHistogram: make(map[order.OrderStatus]int, len(order.OrderStatuses)),
		TopProducts:     []ProductSalesData{},
		RecentOrders:    []RecentOrderData{},
		LowStockList:    []LowStockData{},
	}

	for _, s := range order.OrderStatuses {
		d.StatusHistogram[s] = 0
	}

	for _, p := range products {
		if !p.InStock {
			d.OutOfStock++
		}
		if p.IsLowStock(lowStockThreshold) {
			d.LowStock++
			d.LowStockList = append(d.LowStockList, LowStockData{
				ProductID:    p.ID,
				ProductName:  p.Name,
				CurrentStock: p.Stock,
			})
		}
	}

	sales := make(map[int]*ProductSalesData)
	for i, o := range orders {
		d.TotalRevenue += o.Total
		d.StatusHistogram[o.Status]++
		if o.Status == order.OrderStatusPending {
			d.PendingOrders++
		}

		if i < recentOrdersLimit {
			d.RecentOrders = append(d.RecentOrders, RecentOrderData{
				OrderID:      o.ID,
				CustomerName: o.CustomerName,
				Total:        o.Total,
				Status:       o.Status,
			})
		}

		for _, item := range o.Items {
			row, ok := sales[item.ProductID]
			if !ok {
				row = &ProductSalesData{ProductID: item.ProductID, ProductName: item.Name}
				sales[item.ProductID] = row
			}
			row.TotalSold += item.Quantity
			row.Revenue += item.UnitPrice * int64(item.Quantity)
			row.OrderCount++
		}
	}

	if len(orders) > 0 {
		d.AverageOrderValue = float64(d.TotalRevenue) / float64(len(orders))
	}

	d.TopProducts = topProducts(sales)

	return d
}

func topProducts(sales map[int]*ProductSalesData) []ProductSalesData {
	rows := make([]ProductSalesData, 0, len(sales))
	for _, row := range sales {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalSold != rows[j].TotalSold {
			return rows[i].TotalSold > rows[j].TotalSold
		}
		return rows[i].ProductID < rows[j].ProductID
	})

	if len(rows) > topProductsLimit {
		rows = rows[:topProductsLimit]
	}
	return rows
}
