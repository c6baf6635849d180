package trade

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenerp/backend/internal/domain/finance"
	"github.com/zenerp/backend/internal/domain/shared"
	"github.com/zenerp/backend/internal/domain/trade"
	"github.com/zenerp/backend/internal/store"
)

func newSalesFixture(t *testing.T, strict bool) (*store.Store, *SalesOrderService) {
	t.Helper()
	st := store.New(store.Seed())
	return st, NewSalesOrderService(st, Options{StrictTransitions: strict})
}

func createSalesOrder(t *testing.T, svc *SalesOrderService) *trade.SalesOrder {
	t.Helper()
	order, err := svc.Create(CreateSalesOrderRequest{
		CustomerID: "CUST-001",
		Items: []LineItemRequest{
			{ProductID: "PROD-001", Quantity: 2},
		},
	})
	require.NoError(t, err)
	return order
}

func TestSalesOrderService_Create(t *testing.T) {
	_, svc := newSalesFixture(t, true)

	order := createSalesOrder(t, svc)

	assert.Equal(t, "SO-001", order.ID)
	assert.Equal(t, "Alice Johnson", order.CustomerName)
	assert.Equal(t, trade.OrderStatusDraft, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Elite Laptop", order.Items[0].ProductName)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromInt(1200)))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(2400)))
}

func TestSalesOrderService_Create_SnapshotsUnitPriceOverride(t *testing.T) {
	_, svc := newSalesFixture(t, true)

	override := decimal.NewFromInt(1000)
	order, err := svc.Create(CreateSalesOrderRequest{
		CustomerID: "CUST-002",
		Items: []LineItemRequest{
			{ProductID: "PROD-001", Quantity: 1, UnitPrice: &override},
		},
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(1000)))
}

func TestSalesOrderService_Create_UnknownReferences(t *testing.T) {
	st, svc := newSalesFixture(t, true)

	_, err := svc.Create(CreateSalesOrderRequest{
		CustomerID: "CUST-404",
		Items:      []LineItemRequest{{ProductID: "PROD-001", Quantity: 1}},
	})
	require.Error(t, err)

	_, err = svc.Create(CreateSalesOrderRequest{
		CustomerID: "CUST-001",
		Items:      []LineItemRequest{{ProductID: "PROD-404", Quantity: 1}},
	})
	require.Error(t, err)

	// Failed creations must not allocate ids or leave partial orders
	st.View(func(s *store.State) {
		assert.Empty(t, s.SalesOrders)
	})
}

func TestSalesOrderService_Create_NeverTouchesStock(t *testing.T) {
	st, svc := newSalesFixture(t, true)
	createSalesOrder(t, svc)

	st.View(func(s *store.State) {
		assert.Equal(t, 15, s.FindProduct("PROD-001").StockQuantity)
		assert.Empty(t, s.Ledger)
	})
}

func TestSalesOrderService_DispatchEffects(t *testing.T) {
	st, svc := newSalesFixture(t, true)
	order := createSalesOrder(t, svc)

	_, err := svc.Transition(order.ID, trade.OrderStatusConfirmed)
	require.NoError(t, err)

	updated, err := svc.Transition(order.ID, trade.OrderStatusDispatched)
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusDispatched, updated.Status)

	st.View(func(s *store.State) {
		assert.Equal(t, 13, s.FindProduct("PROD-001").StockQuantity)

		require.Len(t, s.Ledger, 1)
		entry := s.Ledger[0]
		assert.Equal(t, "LDG-001", entry.ID)
		assert.Equal(t, finance.TransactionTypeSales, entry.Type)
		assert.Equal(t, order.ID, entry.Reference)
		assert.True(t, entry.Debit.IsZero())
		assert.True(t, entry.Credit.Equal(decimal.NewFromInt(2400)))
		assert.True(t, entry.Balance.Equal(decimal.NewFromInt(2400)))
	})
}

func TestSalesOrderService_RepeatDispatchIsNoOp(t *testing.T) {
	st, svc := newSalesFixture(t, true)
	order := createSalesOrder(t, svc)

	_, err := svc.Transition(order.ID, trade.OrderStatusConfirmed)
	require.NoError(t, err)
	_, err = svc.Transition(order.ID, trade.OrderStatusDispatched)
	require.NoError(t, err)

	// Same-status request succeeds with zero additional effects
	updated, err := svc.Transition(order.ID, trade.OrderStatusDispatched)
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusDispatched, updated.Status)

	st.View(func(s *store.State) {
		assert.Equal(t, 13, s.FindProduct("PROD-001").StockQuantity)
		assert.Len(t, s.Ledger, 1)
	})
}

func TestSalesOrderService_StrictTransitionRejected(t *testing.T) {
	st, svc := newSalesFixture(t, true)
	order := createSalesOrder(t, svc)

	_, err := svc.Transition(order.ID, trade.OrderStatusDispatched)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)

	// Rejected transition leaves everything untouched
	st.View(func(s *store.State) {
		assert.Equal(t, trade.OrderStatusDraft, s.FindSalesOrder(order.ID).Status)
		assert.Equal(t, 15, s.FindProduct("PROD-001").StockQuantity)
		assert.Empty(t, s.Ledger)
	})
}

func TestSalesOrderService_PermissiveTransitions(t *testing.T) {
	st, svc := newSalesFixture(t, false)
	order := createSalesOrder(t, svc)

	// Draft straight to Dispatched is allowed in permissive mode, with effects
	updated, err := svc.Transition(order.ID, trade.OrderStatusDispatched)
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusDispatched, updated.Status)

	st.View(func(s *store.State) {
		assert.Equal(t, 13, s.FindProduct("PROD-001").StockQuantity)
		assert.Len(t, s.Ledger, 1)
	})

	// Backward move is also allowed but triggers nothing
	_, err = svc.Transition(order.ID, trade.OrderStatusDraft)
	require.NoError(t, err)
	st.View(func(s *store.State) {
		assert.Len(t, s.Ledger, 1)
	})
}

func TestSalesOrderService_TransitionValidation(t *testing.T) {
	_, svc := newSalesFixture(t, true)
	order := createSalesOrder(t, svc)

	// Purchase-only status is not part of the sales vocabulary
	_, err := svc.Transition(order.ID, trade.OrderStatusSent)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)

	_, err = svc.Transition("SO-404", trade.OrderStatusConfirmed)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSalesOrderService_DispatchSkipsMissingProduct(t *testing.T) {
	st, svc := newSalesFixture(t, false)

	// Plant an order line referencing a product that no longer exists
	require.NoError(t, st.Update(func(s *store.State) error {
		s.SalesOrders = append(s.SalesOrders, trade.SalesOrder{
			ID:           "SO-001",
			CustomerID:   "CUST-001",
			CustomerName: "Alice Johnson",
			Date:         time.Now(),
			Status:       trade.OrderStatusDraft,
			Items: []trade.LineItem{
				{ProductID: "PROD-404", Quantity: 3, UnitPrice: decimal.NewFromInt(10), Total: decimal.NewFromInt(30)},
				{ProductID: "PROD-002", Quantity: 5, UnitPrice: decimal.NewFromInt(25), Total: decimal.NewFromInt(125)},
			},
			TotalAmount: decimal.NewFromInt(155),
		})
		return nil
	}))

	updated, err := svc.Transition("SO-001", trade.OrderStatusDispatched)
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusDispatched, updated.Status)

	st.View(func(s *store.State) {
		// The existing line still applied, the stale one was skipped
		assert.Equal(t, 45, s.FindProduct("PROD-002").StockQuantity)
		require.Len(t, s.Ledger, 1)
		assert.True(t, s.Ledger[0].Credit.Equal(decimal.NewFromInt(155)))
	})
}

func TestSalesOrderService_RecordPayment(t *testing.T) {
	st, svc := newSalesFixture(t, true)
	order := createSalesOrder(t, svc)

	updated, err := svc.RecordPayment(order.ID, decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.True(t, updated.PaidAmount.Equal(decimal.NewFromInt(500)))

	st.View(func(s *store.State) {
		require.Len(t, s.Ledger, 1)
		entry := s.Ledger[0]
		assert.Equal(t, finance.TransactionTypePaymentIn, entry.Type)
		assert.True(t, entry.Credit.Equal(decimal.NewFromInt(500)))
		assert.True(t, entry.Debit.IsZero())
	})

	// Payments accumulate past the order total
	updated, err = svc.RecordPayment(order.ID, decimal.NewFromInt(2000))
	require.NoError(t, err)
	assert.True(t, updated.PaidAmount.Equal(decimal.NewFromInt(2500)))
}

func TestSalesOrderService_RecordPayment_Atomic(t *testing.T) {
	st, svc := newSalesFixture(t, true)
	createSalesOrder(t, svc)

	_, err := svc.RecordPayment("SO-404", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = svc.RecordPayment("SO-001", decimal.Zero)
	assert.Error(t, err)

	st.View(func(s *store.State) {
		assert.Empty(t, s.Ledger)
		assert.True(t, s.FindSalesOrder("SO-001").PaidAmount.IsZero())
	})
}

func TestSalesOrderService_GetAndList(t *testing.T) {
	_, svc := newSalesFixture(t, true)
	order := createSalesOrder(t, svc)

	got, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = svc.GetByID("SO-404")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	orders := svc.List()
	require.Len(t, orders, 1)

	// Returned slices are copies
	orders[0].Items[0].Quantity = 99
	got, err = svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Items[0].Quantity)
}
