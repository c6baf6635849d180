package trade

import (
	"time"

	"github.com/shopspring/decimal"
)

// Options configures the trade services
type Options struct {
	// StrictTransitions enforces the per-kind transition tables. When false
	// the legacy permissive behavior applies: any status value may be written
	// directly, with the side-effect guard still keyed on "previous status
	// differs from target".
	StrictTransitions bool
}

// LineItemRequest is one requested order line. UnitPrice overrides the
// product's list price when set; the product name snapshot always comes from
// the catalog at creation time.
type LineItemRequest struct {
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
}

// CreateSalesOrderRequest carries the fields for a new sales order
type CreateSalesOrderRequest struct {
	CustomerID string            `json:"customerId"`
	Date       *time.Time        `json:"date,omitempty"`
	Items      []LineItemRequest `json:"items"`
}

// CreatePurchaseOrderRequest carries the fields for a new purchase order
type CreatePurchaseOrderRequest struct {
	VendorID string            `json:"vendorId"`
	Date     *time.Time        `json:"date,omitempty"`
	Items    []LineItemRequest `json:"items"`
}

func orderDate(requested *time.Time) time.Time {
	if requested != nil && !requested.IsZero() {
		return *requested
	}
	return time.Now()
}
