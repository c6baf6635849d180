package search

import (
	"strings"

	"github.com/zenerp/backend/internal/domain/catalog"
	"github.com/zenerp/backend/internal/domain/partner"
	"github.com/zenerp/backend/internal/domain/trade"
	"github.com/zenerp/backend/internal/store"
)

// Result groups cross-module matches by category. Every category is present
// in the response even when empty.
type Result struct {
	Customers      []partner.Customer    `json:"customers"`
	SalesOrders    []trade.SalesOrder    `json:"salesOrders"`
	PurchaseOrders []trade.PurchaseOrder `json:"purchaseOrders"`
	Products       []catalog.Product     `json:"products"`
}

// Service performs the cross-module lookup: a case-insensitive substring
// match against customer name/company, order ids and partner-name snapshots,
// and product name/sku. Pure read, no pagination.
type Service struct {
	store *store.Store
}

// NewService creates a new search Service
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Search returns all matches per category for the given query
func (s *Service) Search(query string) Result {
	q := strings.ToLower(query)

	result := Result{
		Customers:      make([]partner.Customer, 0),
		SalesOrders:    make([]trade.SalesOrder, 0),
		PurchaseOrders: make([]trade.PurchaseOrder, 0),
		Products:       make([]catalog.Product, 0),
	}

	s.store.View(func(st *store.State) {
		for _, c := range st.Customers {
			if matches(q, c.Name, c.Company) {
				result.Customers = append(result.Customers, c)
			}
		}
		for _, o := range st.SalesOrders {
			if matches(q, o.ID, o.CustomerName) {
				o.Items = append([]trade.LineItem(nil), o.Items...)
				result.SalesOrders = append(result.SalesOrders, o)
			}
		}
		for _, o := range st.PurchaseOrders {
			if matches(q, o.ID, o.VendorName) {
				o.Items = append([]trade.LineItem(nil), o.Items...)
				result.PurchaseOrders = append(result.PurchaseOrders, o)
			}
		}
		for _, p := range st.Products {
			if matches(q, p.Name, p.SKU) {
				result.Products = append(result.Products, p)
			}
		}
	})

	return result
}

func matches(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
