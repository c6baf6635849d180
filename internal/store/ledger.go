package store

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zenerp/backend/internal/domain/finance"
)

// PostEntry appends one entry to the ledger with the running balance carried
// forward from the last entry (zero when the ledger is empty). Entries are
// immutable once posted; the ledger is never edited or compacted.
func (s *State) PostEntry(date time.Time, description, reference string, txType finance.TransactionType, debit, credit decimal.Decimal) (*finance.LedgerEntry, error) {
	previous := decimal.Zero
	if n := len(s.Ledger); n > 0 {
		previous = s.Ledger[n-1].Balance
	}

	entry, err := finance.NewLedgerEntry(s.NextID(KindLedgerEntry), date, description, reference, txType, debit, credit, previous)
	if err != nil {
		return nil, err
	}

	s.Ledger = append(s.Ledger, *entry)
	return entry, nil
}
