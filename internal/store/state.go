package store

import (
	"github.com/zenerp/backend/internal/domain/catalog"
	"github.com/zenerp/backend/internal/domain/finance"
	"github.com/zenerp/backend/internal/domain/partner"
	"github.com/zenerp/backend/internal/domain/trade"
)

// State is the aggregate root holding all entity collections. It is also the
// snapshot document: the JSON encoding of a State is exactly the shape the
// persistence gateway stores and loads.
type State struct {
	Customers      []partner.Customer    `json:"customers"`
	Vendors        []partner.Vendor      `json:"vendors"`
	Products       []catalog.Product     `json:"products"`
	SalesOrders    []trade.SalesOrder    `json:"salesOrders"`
	PurchaseOrders []trade.PurchaseOrder `json:"purchaseOrders"`
	Ledger         []finance.LedgerEntry `json:"ledger"`
}

// NewState returns an empty state with all collections initialized
func NewState() *State {
	return &State{
		Customers:      make([]partner.Customer, 0),
		Vendors:        make([]partner.Vendor, 0),
		Products:       make([]catalog.Product, 0),
		SalesOrders:    make([]trade.SalesOrder, 0),
		PurchaseOrders: make([]trade.PurchaseOrder, 0),
		Ledger:         make([]finance.LedgerEntry, 0),
	}
}

// Clone returns a deep copy of the state. Orders carry their own copies of
// the item slices so a mutation on the clone never leaks into the original.
func (s *State) Clone() *State {
	c := &State{
		Customers:      make([]partner.Customer, len(s.Customers)),
		Vendors:        make([]partner.Vendor, len(s.Vendors)),
		Products:       make([]catalog.Product, len(s.Products)),
		SalesOrders:    make([]trade.SalesOrder, len(s.SalesOrders)),
		PurchaseOrders: make([]trade.PurchaseOrder, len(s.PurchaseOrders)),
		Ledger:         make([]finance.LedgerEntry, len(s.Ledger)),
	}
	copy(c.Customers, s.Customers)
	copy(c.Vendors, s.Vendors)
	copy(c.Products, s.Products)
	copy(c.Ledger, s.Ledger)
	for i, o := range s.SalesOrders {
		o.Items = append([]trade.LineItem(nil), o.Items...)
		c.SalesOrders[i] = o
	}
	for i, o := range s.PurchaseOrders {
		o.Items = append([]trade.LineItem(nil), o.Items...)
		c.PurchaseOrders[i] = o
	}
	return c
}

// FindCustomer returns the customer with the given id, or nil
func (s *State) FindCustomer(id string) *partner.Customer {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return &s.Customers[i]
		}
	}
	return nil
}

// FindVendor returns the vendor with the given id, or nil
func (s *State) FindVendor(id string) *partner.Vendor {
	for i := range s.Vendors {
		if s.Vendors[i].ID == id {
			return &s.Vendors[i]
		}
	}
	return nil
}

// FindProduct returns the product with the given id, or nil
func (s *State) FindProduct(id string) *catalog.Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// FindSalesOrder returns the sales order with the given id, or nil
func (s *State) FindSalesOrder(id string) *trade.SalesOrder {
	for i := range s.SalesOrders {
		if s.SalesOrders[i].ID == id {
			return &s.SalesOrders[i]
		}
	}
	return nil
}

// FindPurchaseOrder returns the purchase order with the given id, or nil
func (s *State) FindPurchaseOrder(id string) *trade.PurchaseOrder {
	for i := range s.PurchaseOrders {
		if s.PurchaseOrders[i].ID == id {
			return &s.PurchaseOrders[i]
		}
	}
	return nil
}
