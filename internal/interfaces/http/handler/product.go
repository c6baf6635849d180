package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	catalogapp "github.com/zenerp/backend/internal/application/catalog"
	"github.com/zenerp/backend/internal/store"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	products *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// CreateProductRequest is the request body for creating a product
type CreateProductRequest struct {
	SKU               string          `json:"sku" binding:"required,min=1,max=100"`
	Name              string          `json:"name" binding:"required,min=1,max=200"`
	Category          string          `json:"category" binding:"max=100"`
	Price             decimal.Decimal `json:"price"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	StockQuantity     int             `json:"stockQuantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// AdjustStockRequest is the request body for a direct stock adjustment
type AdjustStockRequest struct {
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Direction string `json:"direction" binding:"required,oneof=increase decrease"`
}

// Create handles POST /catalog/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.products.Create(catalogapp.CreateProductRequest{
		SKU:               req.SKU,
		Name:              req.Name,
		Category:          req.Category,
		Price:             req.Price,
		CostPrice:         req.CostPrice,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Get handles GET /catalog/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.GetByID(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List handles GET /catalog/products
func (h *ProductHandler) List(c *gin.Context) {
	h.Success(c, h.products.List())
}

// AdjustStock handles POST /catalog/products/:id/stock-adjustments
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.products.AdjustStock(c.Param("id"), catalogapp.AdjustStockRequest{
		Quantity:  req.Quantity,
		Direction: store.StockDirection(req.Direction),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/catalog/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.POST("/:id/stock-adjustments", h.AdjustStock)
	}
}
