package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/zenerp/backend/internal/domain/catalog"
	"github.com/zenerp/backend/internal/domain/shared"
	"github.com/zenerp/backend/internal/store"
)

// CreateProductRequest carries the fields for a new product
type CreateProductRequest struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	StockQuantity     int             `json:"stockQuantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// AdjustStockRequest carries a direct stock adjustment
type AdjustStockRequest struct {
	Quantity  int                  `json:"quantity"`
	Direction store.StockDirection `json:"direction"`
}

// ProductService handles product business operations
type ProductService struct {
	store *store.Store
}

// NewProductService creates a new ProductService
func NewProductService(st *store.Store) *ProductService {
	return &ProductService{store: st}
}

// Create creates a new product with an allocated sequential id
func (s *ProductService) Create(req CreateProductRequest) (*catalog.Product, error) {
	var created catalog.Product
	err := s.store.Update(func(st *store.State) error {
		product, err := catalog.NewProduct(
			st.NextID(store.KindProduct),
			req.SKU, req.Name, req.Category,
			req.Price, req.CostPrice,
			req.StockQuantity, req.LowStockThreshold,
		)
		if err != nil {
			return err
		}
		st.Products = append(st.Products, *product)
		created = *product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID retrieves a product by id
func (s *ProductService) GetByID(id string) (*catalog.Product, error) {
	var found *catalog.Product
	s.store.View(func(st *store.State) {
		if p := st.FindProduct(id); p != nil {
			copied := *p
			found = &copied
		}
	})
	if found == nil {
		return nil, shared.ErrNotFound
	}
	return found, nil
}

// List returns all products
func (s *ProductService) List() []catalog.Product {
	var products []catalog.Product
	s.store.View(func(st *store.State) {
		products = append([]catalog.Product(nil), st.Products...)
	})
	return products
}

// AdjustStock applies a direct stock adjustment to a product. Unlike the
// order-triggered adjustments, a missing product here is surfaced as
// NOT_FOUND. No ledger entry is posted for direct adjustments.
func (s *ProductService) AdjustStock(productID string, req AdjustStockRequest) (*catalog.Product, error) {
	var adjusted catalog.Product
	err := s.store.Update(func(st *store.State) error {
		if err := st.AdjustStock(productID, req.Quantity, req.Direction); err != nil {
			return err
		}
		adjusted = *st.FindProduct(productID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &adjusted, nil
}
