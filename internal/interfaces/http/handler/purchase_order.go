package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	tradeapp "github.com/zenerp/backend/internal/application/trade"
	"github.com/zenerp/backend/internal/domain/trade"
)

// PurchaseOrderHandler handles purchase order API endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orders *tradeapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orders *tradeapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orders: orders}
}

// CreatePurchaseOrderRequest is the request body for creating a purchase order
type CreatePurchaseOrderRequest struct {
	VendorID string             `json:"vendorId" binding:"required"`
	Date     *time.Time         `json:"date"`
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// Create handles POST /trade/purchase-orders
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orders.Create(tradeapp.CreatePurchaseOrderRequest{
		VendorID: req.VendorID,
		Date:     req.Date,
		Items:    toItemRequests(req.Items),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// Get handles GET /trade/purchase-orders/:id
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	order, err := h.orders.GetByID(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// List handles GET /trade/purchase-orders
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	h.Success(c, h.orders.List())
}

// UpdateStatus handles PATCH /trade/purchase-orders/:id/status
func (h *PurchaseOrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orders.Transition(c.Param("id"), trade.OrderStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// RecordPayment handles POST /trade/purchase-orders/:id/payments
func (h *PurchaseOrderHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orders.RecordPayment(c.Param("id"), req.Amount)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// RegisterRoutes registers purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/trade/purchase-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.POST("/:id/payments", h.RecordPayment)
	}
}
