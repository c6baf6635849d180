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

// SalesOrderService handles sales order business operations: creation with
// line-item snapshots, lifecycle transitions with their stock and ledger
// effects, and payment recording.
type SalesOrderService struct {
	store *store.Store
	opts  Options
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(st *store.Store, opts Options) *SalesOrderService {
	return &SalesOrderService{store: st, opts: opts}
}

// Create creates a sales order in Draft status. Product name and unit price
// are snapshotted from the catalog at creation time; creation never touches
// stock levels.
func (s *SalesOrderService) Create(req CreateSalesOrderRequest) (*trade.SalesOrder, error) {
	var created trade.SalesOrder
	err := s.store.Update(func(st *store.State) error {
		customer := st.FindCustomer(req.CustomerID)
		if customer == nil {
			return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Customer %s not found", req.CustomerID))
		}

		items := make([]trade.LineItem, 0, len(req.Items))
		for _, ir := range req.Items {
			product := st.FindProduct(ir.ProductID)
			if product == nil {
				return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Product %s not found", ir.ProductID))
			}
			unitPrice := product.Price
			if ir.UnitPrice != nil {
				unitPrice = *ir.UnitPrice
			}
			item, err := trade.NewLineItem(product.ID, product.Name, ir.Quantity, unitPrice)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		order, err := trade.NewSalesOrder(st.NextID(store.KindSalesOrder), customer.ID, customer.Name, orderDate(req.Date), items)
		if err != nil {
			return err
		}
		st.SalesOrders = append(st.SalesOrders, *order)
		created = *order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Transition moves a sales order to the target status. Entering Dispatched
// from any other status decrements stock once per line item (missing products
// are skipped) and posts exactly one Sales ledger entry crediting the order
// total. A same-status request is a successful no-op with zero effects; the
// guard is "previous status differs from target", so the effects can never
// run twice for one order reaching Dispatched.
func (s *SalesOrderService) Transition(orderID string, target trade.OrderStatus) (*trade.SalesOrder, error) {
	if !target.IsValidSalesStatus() {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("%q is not a sales order status", target))
	}

	var updated trade.SalesOrder
	err := s.store.Update(func(st *store.State) error {
		order := st.FindSalesOrder(orderID)
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

		if target == trade.OrderStatusDispatched {
			for _, item := range order.Items {
				if err := st.AdjustStock(item.ProductID, item.Quantity, store.StockDecrease); err != nil && !errors.Is(err, shared.ErrNotFound) {
					return err
				}
			}
			_, err := st.PostEntry(
				time.Now(),
				fmt.Sprintf("Sales Order %s for %s", order.ID, order.CustomerName),
				order.ID,
				finance.TransactionTypeSales,
				decimal.Zero,
				order.TotalAmount,
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
// Payment In ledger entry crediting the amount. Not-found leaves the state
// completely untouched; the increment and the posting commit together.
func (s *SalesOrderService) RecordPayment(orderID string, amount decimal.Decimal) (*trade.SalesOrder, error) {
	var updated trade.SalesOrder
	err := s.store.Update(func(st *store.State) error {
		order := st.FindSalesOrder(orderID)
		if order == nil {
			return shared.ErrNotFound
		}
		if err := order.RecordPayment(amount); err != nil {
			return err
		}
		_, err := st.PostEntry(
			time.Now(),
			fmt.Sprintf("Payment received for %s", order.ID),
			order.ID,
			finance.TransactionTypePaymentIn,
			decimal.Zero,
			amount,
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

// GetByID retrieves a sales order by id
func (s *SalesOrderService) GetByID(id string) (*trade.SalesOrder, error) {
	var found *trade.SalesOrder
	s.store.View(func(st *store.State) {
		if o := st.FindSalesOrder(id); o != nil {
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

// List returns all sales orders
func (s *SalesOrderService) List() []trade.SalesOrder {
	var orders []trade.SalesOrder
	s.store.View(func(st *store.State) {
		orders = make([]trade.SalesOrder, len(st.SalesOrders))
		for i, o := range st.SalesOrders {
			o.Items = append([]trade.LineItem(nil), o.Items...)
			orders[i] = o
		}
	})
	return orders
}
