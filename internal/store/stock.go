package store

import "github.com/zenerp/backend/internal/domain/shared"

// StockDirection is the sign of a stock adjustment
type StockDirection string

const (
	StockIncrease StockDirection = "increase"
	StockDecrease StockDirection = "decrease"
)

// IsValid checks if the direction is a valid StockDirection
func (d StockDirection) IsValid() bool {
	return d == StockIncrease || d == StockDecrease
}

// AdjustStock applies a signed quantity delta to a product's stock level.
// Stock is allowed to go negative. Returns ErrNotFound when the product does
// not exist; callers applying order line items treat that as a skip so an
// order referencing a stale product id still completes its transition.
func (s *State) AdjustStock(productID string, quantity int, direction StockDirection) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Adjustment quantity must be positive")
	}
	if !direction.IsValid() {
		return shared.NewDomainError("INVALID_DIRECTION", "Adjustment direction must be increase or decrease")
	}

	product := s.FindProduct(productID)
	if product == nil {
		return shared.ErrNotFound
	}

	if direction == StockIncrease {
		product.StockQuantity += quantity
	} else {
		product.StockQuantity -= quantity
	}
	return nil
}
