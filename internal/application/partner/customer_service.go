package partner

import (
	"github.com/zenerp/backend/internal/domain/partner"
	"github.com/zenerp/backend/internal/domain/shared"
	"github.com/zenerp/backend/internal/store"
)

// CreateCustomerRequest carries the fields for a new customer
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Company string `json:"company"`
	Address string `json:"address"`
}

// CustomerService handles customer business operations
type CustomerService struct {
	store *store.Store
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(st *store.Store) *CustomerService {
	return &CustomerService{store: st}
}

// Create creates a new customer with an allocated sequential id
func (s *CustomerService) Create(req CreateCustomerRequest) (*partner.Customer, error) {
	var created partner.Customer
	err := s.store.Update(func(st *store.State) error {
		customer, err := partner.NewCustomer(st.NextID(store.KindCustomer), req.Name, req.Contact, req.Company, req.Address)
		if err != nil {
			return err
		}
		st.Customers = append(st.Customers, *customer)
		created = *customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves a customer by id
func (s *CustomerService) GetByID(id string) (*partner.Customer, error) {
	var found *partner.Customer
	s.store.View(func(st *store.State) {
		if c := st.FindCustomer(id); c != nil {
			copied := *c
			found = &copied
		}
	})
	if found == nil {
		return nil, shared.ErrNotFound
	}
	return found, nil
}

// List returns all customers
func (s *CustomerService) List() []partner.Customer {
	var customers []partner.Customer
	s.store.View(func(st *store.State) {
		customers = append([]partner.Customer(nil), st.Customers...)
	})
	return customers
}
