package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zenerp/backend/internal/domain/shared"
)

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TransactionTypeSales      TransactionType = "Sales"
	TransactionTypePurchase   TransactionType = "Purchase"
	TransactionTypePaymentIn  TransactionType = "Payment In"
	TransactionTypePaymentOut TransactionType = "Payment Out"
	// TransactionTypeStockAdjustment is declared in the vocabulary but no
	// operation currently posts it; direct stock adjustments bypass the ledger.
	TransactionTypeStockAdjustment TransactionType = "Stock Adjustment"
)

// IsValid checks if the transaction type is valid
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeSales, TransactionTypePurchase, TransactionTypePaymentIn,
		TransactionTypePaymentOut, TransactionTypeStockAdjustment:
		return true
	}
	return false
}

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// LedgerEntry is one immutable row of the append-only financial ledger.
// Balance is the running net (credit - debit) up to and including this entry.
// Reference is a denormalized tag (usually an order id) kept for display and
// search only; it is never validated against the order collections.
type LedgerEntry struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
	Type        TransactionType `json:"type"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// NewLedgerEntry creates a ledger entry with the balance carried forward from
// the previous entry's balance (zero for the first entry)
func NewLedgerEntry(id string, date time.Time, description, reference string, txType TransactionType, debit, credit, previousBalance decimal.Decimal) (*LedgerEntry, error) {
	if id == "" {
		return nil, shared.NewDomainError("INVALID_ID", "Ledger entry ID cannot be empty")
	}
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown transaction type")
	}
	if debit.IsNegative() || credit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Debit and credit cannot be negative")
	}

	return &LedgerEntry{
		ID:          id,
		Date:        date,
		Description: description,
		Reference:   reference,
		Type:        txType,
		Debit:       debit,
		Credit:      credit,
		Balance:     previousBalance.Add(credit).Sub(debit),
	}, nil
}
