package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/zenerp/backend/internal/application/partner"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	customers *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// CreateCustomerRequest is the request body for creating a customer
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Contact string `json:"contact" binding:"max=200"`
	Company string `json:"company" binding:"max=200"`
	Address string `json:"address" binding:"max=500"`
}

// Create handles POST /partner/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customers.Create(partnerapp.CreateCustomerRequest{
		Name:    req.Name,
		Contact: req.Contact,
		Company: req.Company,
		Address: req.Address,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// Get handles GET /partner/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customers.GetByID(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// List handles GET /partner/customers
func (h *CustomerHandler) List(c *gin.Context) {
	h.Success(c, h.customers.List())
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/partner/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
	}
}
