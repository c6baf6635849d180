package partner

import (
	"time"

	"github.com/zenerp/backend/internal/domain/shared"
)

// Customer represents a customer in the partner module.
// Customers are immutable once created; there is no update or delete operation.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Company   string    `json:"company"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCustomer creates a new customer
func NewCustomer(id, name, contact, company, address string) (*Customer, error) {
	if id == "" {
		return nil, shared.NewDomainError("INVALID_ID", "Customer ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}

	return &Customer{
		ID:        id,
		Name:      name,
		Contact:   contact,
		Company:   company,
		Address:   address,
		CreatedAt: time.Now(),
	}, nil
}
