package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/zenerp/backend/internal/application/partner"
)

// VendorHandler handles vendor API endpoints
type VendorHandler struct {
	BaseHandler
	vendors *partnerapp.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendors *partnerapp.VendorService) *VendorHandler {
	return &VendorHandler{vendors: vendors}
}

// CreateVendorRequest is the request body for creating a vendor
type CreateVendorRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Contact      string `json:"contact" binding:"max=200"`
	Company      string `json:"company" binding:"max=200"`
	PaymentTerms string `json:"paymentTerms" binding:"max=100"`
}

// Create handles POST /partner/vendors
func (h *VendorHandler) Create(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vendor, err := h.vendors.Create(partnerapp.CreateVendorRequest{
		Name:         req.Name,
		Contact:      req.Contact,
		Company:      req.Company,
		PaymentTerms: req.PaymentTerms,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, vendor)
}

// Get handles GET /partner/vendors/:id
func (h *VendorHandler) Get(c *gin.Context) {
	vendor, err := h.vendors.GetByID(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendor)
}

// List handles GET /partner/vendors
func (h *VendorHandler) List(c *gin.Context) {
	h.Success(c, h.vendors.List())
}

// RegisterRoutes registers vendor routes
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/partner/vendors")
	{
		vendors.POST("", h.Create)
		vendors.GET("", h.List)
		vendors.GET("/:id", h.Get)
	}
}
