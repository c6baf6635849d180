package partner

import (
	"time"

	"github.com/zenerp/backend/internal/domain/shared"
)

// Vendor represents a supplier in the partner module.
// Vendors are immutable once created, mirroring customers.
type Vendor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Contact      string    `json:"contact"`
	Company      string    `json:"company"`
	PaymentTerms string    `json:"paymentTerms"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewVendor creates a new vendor
func NewVendor(id, name, contact, company, paymentTerms string) (*Vendor, error) {
	if id == "" {
		return nil, shared.NewDomainError("INVALID_ID", "Vendor ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}

	return &Vendor{
		ID:           id,
		Name:         name,
		Contact:      contact,
		Company:      company,
		PaymentTerms: paymentTerms,
		CreatedAt:    time.Now(),
	}, nil
}
