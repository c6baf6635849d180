package store

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenerp/backend/internal/domain/finance"
	"github.com/zenerp/backend/internal/domain/shared"
	"github.com/zenerp/backend/internal/domain/trade"
)

func TestStore_UpdateCommits(t *testing.T) {
	st := New(Seed())

	err := st.Update(func(s *State) error {
		return s.AdjustStock("PROD-001", 5, StockDecrease)
	})
	require.NoError(t, err)

	st.View(func(s *State) {
		assert.Equal(t, 10, s.FindProduct("PROD-001").StockQuantity)
	})
}

func TestStore_UpdateRollsBackOnError(t *testing.T) {
	st := New(Seed())
	boom := errors.New("boom")

	err := st.Update(func(s *State) error {
		// Mutate first, then fail: nothing must be visible afterwards
		require.NoError(t, s.AdjustStock("PROD-001", 5, StockDecrease))
		_, perr := s.PostEntry(time.Now(), "half-applied", "X", finance.TransactionTypeSales, decimal.Zero, decimal.NewFromInt(100))
		require.NoError(t, perr)
		return boom
	})
	require.ErrorIs(t, err, boom)

	st.View(func(s *State) {
		assert.Equal(t, 15, s.FindProduct("PROD-001").StockQuantity)
		assert.Empty(t, s.Ledger)
	})
}

func TestStore_OnCommitReceivesCopy(t *testing.T) {
	st := New(Seed())

	var committed *State
	st.SetOnCommit(func(s *State) {
		committed = s
	})

	require.NoError(t, st.Update(func(s *State) error {
		return s.AdjustStock("PROD-002", 10, StockIncrease)
	}))

	require.NotNil(t, committed)
	assert.Equal(t, 60, committed.FindProduct("PROD-002").StockQuantity)

	// Mutating the committed copy must not leak into the store
	committed.FindProduct("PROD-002").StockQuantity = 0
	st.View(func(s *State) {
		assert.Equal(t, 60, s.FindProduct("PROD-002").StockQuantity)
	})
}

func TestStore_OnCommitNotCalledOnError(t *testing.T) {
	st := New(Seed())

	calls := 0
	st.SetOnCommit(func(*State) { calls++ })

	_ = st.Update(func(s *State) error {
		return errors.New("nope")
	})
	assert.Zero(t, calls)
}

func TestState_CloneIsolation(t *testing.T) {
	original := Seed()
	original.SalesOrders = []trade.SalesOrder{{
		ID:     "SO-001",
		Status: trade.OrderStatusDraft,
		Items:  []trade.LineItem{{ProductID: "PROD-001", Quantity: 2}},
	}}

	clone := original.Clone()
	clone.FindProduct("PROD-001").StockQuantity = 0
	clone.SalesOrders[0].Items[0].Quantity = 99
	clone.Customers[0].Name = "Changed"

	assert.Equal(t, 15, original.FindProduct("PROD-001").StockQuantity)
	assert.Equal(t, 2, original.SalesOrders[0].Items[0].Quantity)
	assert.Equal(t, "Alice Johnson", original.Customers[0].Name)
}

func TestState_NextID(t *testing.T) {
	s := Seed()

	// Seed has 5 customers, 5 vendors, 10 products
	assert.Equal(t, "CUST-006", s.NextID(KindCustomer))
	assert.Equal(t, "VEND-006", s.NextID(KindVendor))
	assert.Equal(t, "PROD-011", s.NextID(KindProduct))
	assert.Equal(t, "SO-001", s.NextID(KindSalesOrder))
	assert.Equal(t, "PO-001", s.NextID(KindPurchaseOrder))
	assert.Equal(t, "LDG-001", s.NextID(KindLedgerEntry))
}

func TestState_PostEntry_RunningBalance(t *testing.T) {
	s := NewState()
	now := time.Now()

	first, err := s.PostEntry(now, "Sales Order SO-001 for Alice Johnson", "SO-001",
		finance.TransactionTypeSales, decimal.Zero, decimal.NewFromInt(2400))
	require.NoError(t, err)
	assert.Equal(t, "LDG-001", first.ID)
	assert.True(t, first.Balance.Equal(decimal.NewFromInt(2400)))

	second, err := s.PostEntry(now, "Payment sent for PO-001", "PO-001",
		finance.TransactionTypePaymentOut, decimal.NewFromInt(400), decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "LDG-002", second.ID)
	assert.True(t, second.Balance.Equal(decimal.NewFromInt(2000)))

	require.Len(t, s.Ledger, 2)
}

func TestState_AdjustStock(t *testing.T) {
	s := Seed()

	require.NoError(t, s.AdjustStock("PROD-001", 3, StockIncrease))
	assert.Equal(t, 18, s.FindProduct("PROD-001").StockQuantity)

	require.NoError(t, s.AdjustStock("PROD-001", 20, StockDecrease))
	assert.Equal(t, -2, s.FindProduct("PROD-001").StockQuantity)
}

func TestState_AdjustStock_Errors(t *testing.T) {
	s := Seed()

	err := s.AdjustStock("PROD-404", 1, StockIncrease)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.Error(t, s.AdjustStock("PROD-001", 0, StockIncrease))
	assert.Error(t, s.AdjustStock("PROD-001", -1, StockIncrease))
	assert.Error(t, s.AdjustStock("PROD-001", 1, StockDirection("sideways")))
}

func TestSeed(t *testing.T) {
	s := Seed()

	assert.Len(t, s.Customers, 5)
	assert.Len(t, s.Vendors, 5)
	assert.Len(t, s.Products, 10)
	assert.Empty(t, s.SalesOrders)
	assert.Empty(t, s.PurchaseOrders)
	assert.Empty(t, s.Ledger)

	laptop := s.FindProduct("PROD-001")
	require.NotNil(t, laptop)
	assert.Equal(t, "Elite Laptop", laptop.Name)
	assert.True(t, laptop.Price.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, 15, laptop.StockQuantity)
}
