package trade

// OrderStatus represents the status of a sales or purchase order.
// Both order kinds share one vocabulary; each kind has its own transition table.
type OrderStatus string

const (
	OrderStatusDraft             OrderStatus = "Draft"
	OrderStatusConfirmed         OrderStatus = "Confirmed"
	OrderStatusDispatched        OrderStatus = "Dispatched"
	OrderStatusDelivered         OrderStatus = "Delivered"
	OrderStatusCancelled         OrderStatus = "Cancelled"
	OrderStatusSent              OrderStatus = "Sent"
	OrderStatusReceived          OrderStatus = "Received"
	OrderStatusPartiallyReceived OrderStatus = "Partially Received"
)

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// salesTransitions is the forward-only transition table for sales orders.
// Cancelled is reachable from every non-terminal state; it carries no stock
// or ledger effects.
var salesTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:      {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusDispatched, OrderStatusCancelled},
	OrderStatusDispatched: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// purchaseTransitions is the forward-only transition table for purchase orders.
// PartiallyReceived is an inert intermediate state: it is reachable but
// triggers no stock or ledger effects.
var purchaseTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:             {OrderStatusSent, OrderStatusCancelled},
	OrderStatusSent:              {OrderStatusPartiallyReceived, OrderStatusReceived, OrderStatusCancelled},
	OrderStatusPartiallyReceived: {OrderStatusReceived},
	OrderStatusReceived:          {},
	OrderStatusCancelled:         {},
}

// IsValidSalesStatus checks if the status belongs to the sales order state machine
func (s OrderStatus) IsValidSalesStatus() bool {
	_, ok := salesTransitions[s]
	return ok
}

// IsValidPurchaseStatus checks if the status belongs to the purchase order state machine
func (s OrderStatus) IsValidPurchaseStatus() bool {
	_, ok := purchaseTransitions[s]
	return ok
}

func canTransition(table map[OrderStatus][]OrderStatus, from, to OrderStatus) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

func isTerminal(table map[OrderStatus][]OrderStatus, s OrderStatus) bool {
	next, ok := table[s]
	return ok && len(next) == 0
}
