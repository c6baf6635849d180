package store

import "fmt"

// EntityKind names an id-allocated entity collection
type EntityKind string

const (
	KindCustomer      EntityKind = "customer"
	KindVendor        EntityKind = "vendor"
	KindProduct       EntityKind = "product"
	KindSalesOrder    EntityKind = "sales_order"
	KindPurchaseOrder EntityKind = "purchase_order"
	KindLedgerEntry   EntityKind = "ledger_entry"
)

var idPrefixes = map[EntityKind]string{
	KindCustomer:      "CUST",
	KindVendor:        "VEND",
	KindProduct:       "PROD",
	KindSalesOrder:    "SO",
	KindPurchaseOrder: "PO",
	KindLedgerEntry:   "LDG",
}

// NextID allocates the next sequential identifier for the given kind.
// The sequence is derived from the current size of the collection, not a
// persisted counter, so after a bulk load the next id continues the visible
// sequence. The numeric part is zero-padded to at least 3 digits.
func (s *State) NextID(kind EntityKind) string {
	var count int
	switch kind {
	case KindCustomer:
		count = len(s.Customers)
	case KindVendor:
		count = len(s.Vendors)
	case KindProduct:
		count = len(s.Products)
	case KindSalesOrder:
		count = len(s.SalesOrders)
	case KindPurchaseOrder:
		count = len(s.PurchaseOrders)
	case KindLedgerEntry:
		count = len(s.Ledger)
	}
	return fmt.Sprintf("%s-%03d", idPrefixes[kind], count+1)
}
