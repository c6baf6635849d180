package trade

import (
	"github.com/shopspring/decimal"
	"github.com/zenerp/backend/internal/domain/shared"
)

// LineItem is a value object embedded in orders. ProductName and UnitPrice are
// snapshots captured at order-creation time and never change, even if the
// underlying product is renamed or repriced later.
type LineItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// NewLineItem creates a new line item with the total computed from quantity and unit price
func NewLineItem(productID, productName string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	if productID == "" {
		return LineItem{}, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return LineItem{}, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return LineItem{}, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return LineItem{}, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return LineItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}
