package finance

import (
	"github.com/shopspring/decimal"
	"github.com/zenerp/backend/internal/domain/finance"
	"github.com/zenerp/backend/internal/store"
)

// LedgerService exposes read access to the financial ledger. Entries are
// posted exclusively by the order lifecycle and payment operations; there is
// no direct posting API.
type LedgerService struct {
	store *store.Store
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(st *store.Store) *LedgerService {
	return &LedgerService{store: st}
}

// List returns all ledger entries in posting order
func (s *LedgerService) List() []finance.LedgerEntry {
	var entries []finance.LedgerEntry
	s.store.View(func(st *store.State) {
		entries = append([]finance.LedgerEntry(nil), st.Ledger...)
	})
	return entries
}

// CurrentBalance returns the running balance of the last entry, or zero for
// an empty ledger
func (s *LedgerService) CurrentBalance() decimal.Decimal {
	balance := decimal.Zero
	s.store.View(func(st *store.State) {
		if n := len(st.Ledger); n > 0 {
			balance = st.Ledger[n-1].Balance
		}
	})
	return balance
}
