package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	tradeapp "github.com/zenerp/backend/internal/application/trade"
	"github.com/zenerp/backend/internal/domain/trade"
)

// SalesOrderHandler handles sales order API endpoints
type SalesOrderHandler struct {
	BaseHandler
	orders *tradeapp.SalesOrderService
}

// NewSalesOrderHandler creates a new SalesOrderHandler
func NewSalesOrderHandler(orders *tradeapp.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{orders: orders}
}

// OrderItemRequest is one line item in an order creation request
type OrderItemRequest struct {
	ProductID string           `json:"productId" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

// CreateSalesOrderRequest is the request body for creating a sales order
type CreateSalesOrderRequest struct {
	CustomerID string             `json:"customerId" binding:"required"`
	Date       *time.Time         `json:"date"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateStatusRequest is the request body for an order status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RecordPaymentRequest is the request body for recording a payment
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,positive_amount"`
}

// Create handles POST /trade/sales-orders
func (h *SalesOrderHandler) Create(c *gin.Context) {
	var req CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orders.Create(tradeapp.CreateSalesOrderRequest{
		CustomerID: req.CustomerID,
		Date:       req.Date,
		Items:      toItemRequests(req.Items),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// Get handles GET /trade/sales-orders/:id
func (h *SalesOrderHandler) Get(c *gin.Context) {
	order, err := h.orders.GetByID(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// List handles GET /trade/sales-orders
func (h *SalesOrderHandler) List(c *gin.Context) {
	h.Success(c, h.orders.List())
}

// UpdateStatus handles PATCH /trade/sales-orders/:id/status
func (h *SalesOrderHandler) UpdateStatus(c *gin.Context) {
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

// RecordPayment handles POST /trade/sales-orders/:id/payments
func (h *SalesOrderHandler) RecordPayment(c *gin.Context) {
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

// RegisterRoutes registers sales order routes
func (h *SalesOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/trade/sales-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.POST("/:id/payments", h.RecordPayment)
	}
}

func toItemRequests(items []OrderItemRequest) []tradeapp.LineItemRequest {
	out := make([]tradeapp.LineItemRequest, len(items))
	for i, item := range items {
		out[i] = tradeapp.LineItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return out
}
