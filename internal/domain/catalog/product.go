package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/zenerp/backend/internal/domain/shared"
)

// Product represents a stocked product in the catalog module.
// StockQuantity is mutated only through stock adjustments; it may go negative
// when an order dispatches more units than are on hand.
type Product struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	StockQuantity     int             `json:"stockQuantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// NewProduct creates a new product
func NewProduct(id, sku, name, category string, price, costPrice decimal.Decimal, stockQuantity, lowStockThreshold int) (*Product, error) {
	if id == "" {
		return nil, shared.NewDomainError("INVALID_ID", "Product ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	if costPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}
	if lowStockThreshold < 0 {
		return nil, shared.NewDomainError("INVALID_THRESHOLD", "Low stock threshold cannot be negative")
	}

	return &Product{
		ID:                id,
		SKU:               sku,
		Name:              name,
		Category:          category,
		Price:             price,
		CostPrice:         costPrice,
		StockQuantity:     stockQuantity,
		LowStockThreshold: lowStockThreshold,
	}, nil
}

// IsLowStock returns true if the stock quantity is at or below the threshold
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}
