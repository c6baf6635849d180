package trade

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zenerp/backend/internal/domain/finance"
	"github.com/zenerp/backend/internal/domain/shared"
	"github.com/zenerp/backend/internal/domain/trade"
	"github.com/zenerp/backend/internal/store"
)

// PurchaseOrderService handles purchase order business operations. It mirrors
// the sales order service with the effect direction reversed: receiving adds
// stock and debits the ledger.
type PurchaseOrderService struct {
	store *store.Store
	opts  Options
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(st *store.Store, opts Options) *PurchaseOrderService {
	return &PurchaseOrderService{store: st, opts: opts}
}

// Create creates a purchase order in Draft status. The unit price snapshot
// defaults to the product's cost price; creation never touches stock levels.
func (s *PurchaseOrderService) Create(req CreatePurchaseOrderRequest) (*trade.PurchaseOrder, error) {
	var created trade.PurchaseOrder
	err := s.store.Update(func(st *store.State) error {
		vendor := st.FindVendor(req.VendorID)
		if vendor == nil {
			return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Vendor %s not found", req.VendorID))
		}

		items := make([]trade.LineItem, 0, len(req.Items))
		for _, ir := range req.Items {
			product := st.FindProduct(ir.ProductID)
			if product == nil {
				return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Product %s not found", ir.ProductID))
			}
			unitPrice := product.CostPrice
			if ir.UnitPrice != nil {
				unitPrice = *ir.UnitPrice
			}
			item, err := trade.NewLineItem(product.ID, product.Name, ir.Quantity, unitPrice)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		order, err := trade.NewPurchaseOrder(st.NextID(store.KindPurchaseOrder), vendor.ID, vendor.Name, orderDate(req.Date), items)
		if err != nil {
			return err
		}
		st.PurchaseOrders = append(st.PurchaseOrders, *order)
		created = *order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Transition moves a purchase order to the target status. Entering Received
// from any other status increments stock once per line item (missing products
// are skipped) and posts exactly one Purchase ledger entry debiting the order
// total. A same-status request is a successful no-op with zero effects.
func (s *PurchaseOrderService) Transition(orderID string, target trade.OrderStatus) (*trade.PurchaseOrder, error) {
	if !target.IsValidPurchaseStatus() {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("%q is not a purchase order status", target))
	}

	var updated trade.PurchaseOrder
	err := s.store.Update(func(st *store.State) error {
		order := st.FindPurchaseOrder(orderID)
		if order == nil {
			return shared.ErrNotFound
		}
		if order.Status == target {
			updated = *order
			return nil
		}
		if s.opts.StrictTransitions && !order.CanTransitionTo(target) {
			return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot move order from %s to %s", order.Status, target))
		}

		if target == trade.OrderStatusReceived {
			for _, item := range order.Items {
				if err := st.AdjustStock(item.ProductID, item.Quantity, store.StockIncrease); err != nil && !errors.Is(err, shared.ErrNotFound) {
					return err
				}
			}
			_, err := st.PostEntry(
				time.Now(),
				fmt.Sprintf("Purchase Order %s from %s", order.ID, order.VendorName),
				order.ID,
				finance.TransactionTypePurchase,
				order.TotalAmount,
				decimal.Zero,
			)
			if err != nil {
				return err
			}
		}

		order.Status = target
		updated = *order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RecordPayment increments the order's paid amount and posts exactly one
// Payment Out ledger entry debiting the amount, committed atomically.
func (s *PurchaseOrderService) RecordPayment(orderID string, amount decimal.Decimal) (*trade.PurchaseOrder, error) {
	var updated trade.PurchaseOrder
	err := s.store.Update(func(st *store.State) error {
		order := st.FindPurchaseOrder(orderID)
		if order == nil {
			return shared.ErrNotFound
		}
		if err := order.RecordPayment(amount); err != nil {
			return err
		}
		_, err := st.PostEntry(
			time.Now(),
			fmt.Sprintf("Payment sent for %s", order.ID),
			order.ID,
			finance.TransactionTypePaymentOut,
			amount,
			decimal.Zero,
		)
		if err != nil {
			return err
		}
		updated = *order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetByID retrieves a purchase order by id
func (s *PurchaseOrderService) GetByID(id string) (*trade.PurchaseOrder, error) {
	var found *trade.PurchaseOrder
	s.store.View(func(st *store.State) {
		if o := st.FindPurchaseOrder(id); o != nil {
			copied := *o
			copied.Items = append([]trade.LineItem(nil), o.Items...)
			found = &copied
		}
	})
	if found == nil {
		return nil, shared.ErrNotFound
	}
	return found, nil
}

// List returns all purchase orders
func (s *PurchaseOrderService) List() []trade.PurchaseOrder {
	var orders []trade.PurchaseOrder
	s.store.View(func(st *store.State) {
		orders = make([]trade.PurchaseOrder, len(st.PurchaseOrders))
		for i, o := range st.PurchaseOrders {
			o.Items = append([]trade.LineItem(nil), o.Items...)
			orders[i] = o
		}
	})
	return orders
}
