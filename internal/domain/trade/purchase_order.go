package trade

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zenerp/backend/internal/domain/shared"
)

// PurchaseOrder represents an order placed with a vendor from draft through
// receipt. VendorName is a snapshot captured at creation time.
type PurchaseOrder struct {
	ID          string          `json:"id"`
	VendorID    string          `json:"vendorId"`
	VendorName  string          `json:"vendorName"`
	Date        time.Time       `json:"date"`
	Status      OrderStatus     `json:"status"`
	Items       []LineItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
}

// NewPurchaseOrder creates a new purchase order in Draft status with zero paid amount
func NewPurchaseOrder(id, vendorID, vendorName string, date time.Time, items []LineItem) (*PurchaseOrder, error) {
	if id == "" {
		return nil, shared.NewDomainError("INVALID_ID", "Order ID cannot be empty")
	}
	if vendorID == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if vendorName == "" {
		return nil, shared.NewDomainError("INVALID_VENDOR_NAME", "Vendor name cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Cannot create order without items")
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total)
	}

	return &PurchaseOrder{
		ID:          id,
		VendorID:    vendorID,
		VendorName:  vendorName,
		Date:        date,
		Status:      OrderStatusDraft,
		Items:       items,
		TotalAmount: total,
		PaidAmount:  decimal.Zero,
	}, nil
}

// CanTransitionTo checks if the order may move to target under the purchase transition table
func (o *PurchaseOrder) CanTransitionTo(target OrderStatus) bool {
	return canTransition(purchaseTransitions, o.Status, target)
}

// IsTerminal returns true if the order is in a terminal state (received or cancelled)
func (o *PurchaseOrder) IsTerminal() bool {
	return isTerminal(purchaseTransitions, o.Status)
}

// RecordPayment increments the cumulative paid amount.
// Over-payment beyond TotalAmount is accepted.
func (o *PurchaseOrder) RecordPayment(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	o.PaidAmount = o.PaidAmount.Add(amount)
	return nil
}
