package store

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zenerp/backend/internal/domain/catalog"
	"github.com/zenerp/backend/internal/domain/partner"
)

// Seed returns the fixed starter dataset used when no snapshot exists:
// 5 customers, 5 vendors, 10 products, empty order and ledger collections.
func Seed() *State {
	now := time.Now()
	s := NewState()

	s.Customers = []partner.Customer{
		{ID: "CUST-001", Name: "Alice Johnson", Contact: "555-0101", Company: "Alice Tech", Address: "123 Apple St", CreatedAt: now},
		{ID: "CUST-002", Name: "Bob Smith", Contact: "555-0102", Company: "Bob's Builders", Address: "456 Birch Ave", CreatedAt: now},
		{ID: "CUST-003", Name: "Charlie Davis", Contact: "555-0103", Company: "Charlie Consulting", Address: "789 Cedar Rd", CreatedAt: now},
		{ID: "CUST-004", Name: "David Wilson", Contact: "555-0104", Company: "Wilson Corp", Address: "321 Elm Dr", CreatedAt: now},
		{ID: "CUST-005", Name: "Eve Brown", Contact: "555-0105", Company: "Eve Enterprises", Address: "654 Fir Ln", CreatedAt: now},
	}

	s.Vendors = []partner.Vendor{
		{ID: "VEND-001", Name: "SupplyCo", Contact: "555-1001", Company: "SupplyCo Inc", PaymentTerms: "Net 30", CreatedAt: now},
		{ID: "VEND-002", Name: "TechParts", Contact: "555-1002", Company: "TechParts Ltd", PaymentTerms: "Net 15", CreatedAt: now},
		{ID: "VEND-003", Name: "GlobalGoods", Contact: "555-1003", Company: "Global Goods Co", PaymentTerms: "Immediate", CreatedAt: now},
		{ID: "VEND-004", Name: "LocalMart", Contact: "555-1004", Company: "Local Mart Wholesalers", PaymentTerms: "Net 30", CreatedAt: now},
		{ID: "VEND-005", Name: "PrimeDist", Contact: "555-1005", Company: "Prime Distribution", PaymentTerms: "Net 60", CreatedAt: now},
	}

	s.Products = []catalog.Product{
		seedProduct("PROD-001", "LAP-001", "Elite Laptop", "Computers", 1200, 800, 15, 5),
		seedProduct("PROD-002", "MOU-001", "Wireless Mouse", "Accessories", 25, 10, 50, 10),
		seedProduct("PROD-003", "KEY-001", "Mechanical Keyboard", "Accessories", 80, 40, 30, 8),
		seedProduct("PROD-004", "MON-001", "4K Monitor", "Displays", 400, 280, 12, 4),
		seedProduct("PROD-005", "USB-001", "USB-C Cable", "Cables", 15, 5, 100, 20),
		seedProduct("PROD-006", "DES-001", "Standing Desk", "Furniture", 500, 350, 8, 2),
		seedProduct("PROD-007", "CHA-001", "Ergonomic Chair", "Furniture", 300, 180, 20, 5),
		seedProduct("PROD-008", "HED-001", "Noise Cancelling Headset", "Audio", 150, 90, 25, 5),
		seedProduct("PROD-009", "CAM-001", "1080p Webcam", "Audio/Video", 60, 35, 40, 10),
		seedProduct("PROD-010", "ROU-001", "WiFi 6 Router", "Networking", 120, 70, 18, 5),
	}

	return s
}

func seedProduct(id, sku, name, category string, price, costPrice int64, stock, threshold int) catalog.Product {
	return catalog.Product{
		ID:                id,
		SKU:               sku,
		Name:              name,
		Category:          category,
		Price:             decimal.NewFromInt(price),
		CostPrice:         decimal.NewFromInt(costPrice),
		StockQuantity:     stock,
		LowStockThreshold: threshold,
	}
}
