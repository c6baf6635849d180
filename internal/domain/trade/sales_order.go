package trade

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zenerp/backend/internal/domain/shared"
)

// SalesOrder represents a customer order from draft through delivery.
// CustomerName is a snapshot captured at creation time. PaidAmount is
// monotonically non-decreasing and is intentionally not capped at TotalAmount.
type SalesOrder struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Date         time.Time       `json:"date"`
	Status       OrderStatus     `json:"status"`
	Items        []LineItem      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
}

// NewSalesOrder creates a new sales order in Draft status with zero paid amount
func NewSalesOrder(id, customerID, customerName string, date time.Time, items []LineItem) (*SalesOrder, error) {
	if id == "" {
		return nil, shared.NewDomainError("INVALID_ID", "Order ID cannot be empty")
	}
	if customerID == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Cannot create order without items")
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total)
	}

	return &SalesOrder{
		ID:           id,
		CustomerID:   customerID,
		CustomerName: customerName,
		Date:         date,
		Status:       OrderStatusDraft,
		Items:        items,
		Subtotal:     total,
		TotalAmount:  total,
		PaidAmount:   decimal.Zero,
	}, nil
}

// CanTransitionTo checks if the order may move to target under the sales transition table
func (o *SalesOrder) CanTransitionTo(target OrderStatus) bool {
	return canTransition(salesTransitions, o.Status, target)
}

// IsTerminal returns true if the order is in a terminal state (delivered or cancelled)
func (o *SalesOrder) IsTerminal() bool {
	return isTerminal(salesTransitions, o.Status)
}

// RecordPayment increments the cumulative paid amount.
// Over-payment beyond TotalAmount is accepted.
func (o *SalesOrder) RecordPayment(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	o.PaidAmount = o.PaidAmount.Add(amount)
	return nil
}
