package partner

import (
	"github.com/zenerp/backend/internal/domain/partner"
	"github.com/zenerp/backend/internal/domain/shared"
	"github.com/zenerp/backend/internal/store"
)

// CreateVendorRequest carries the fields for a new vendor
type CreateVendorRequest struct {
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	Company      string `json:"company"`
	PaymentTerms string `json:"paymentTerms"`
}

// VendorService handles vendor business operations
type VendorService struct {
	store *store.Store
}

// NewVendorService creates a new VendorService
func NewVendorService(st *store.Store) *VendorService {
	return &VendorService{store: st}
}

// Create creates a new vendor with an allocated sequential id
func (s *VendorService) Create(req CreateVendorRequest) (*partner.Vendor, error) {
	var created partner.Vendor
	err := s.store.Update(func(st *store.State) error {
		vendor, err := partner.NewVendor(st.NextID(store.KindVendor), req.Name, req.Contact, req.Company, req.PaymentTerms)
		if err != nil {
			return err
		}
		st.Vendors = append(st.Vendors, *vendor)
		created = *vendor
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves a vendor by id
func (s *VendorService) GetByID(id string) (*partner.Vendor, error) {
	var found *partner.Vendor
	s.store.View(func(st *store.State) {
		if v := st.FindVendor(id); v != nil {
			copied := *v
			found = &copied
		}
	})
	if found == nil {
		return nil, shared.ErrNotFound
	}
	return found, nil
}

// List returns all vendors
func (s *VendorService) List() []partner.Vendor {
	var vendors []partner.Vendor
	s.store.View(func(st *store.State) {
		vendors = append([]partner.Vendor(nil), st.Vendors...)
	})
	return vendors
}
