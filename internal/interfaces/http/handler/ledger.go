package handler

import (
	"github.com/gin-gonic/gin"

	financeapp "github.com/zenerp/backend/internal/application/finance"
	"github.com/zenerp/backend/internal/domain/finance"
)

// LedgerHandler handles financial ledger API endpoints
type LedgerHandler struct {
	BaseHandler
	ledger *financeapp.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledger *financeapp.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// List handles GET /finance/ledger
func (h *LedgerHandler) List(c *gin.Context) {
	entries := h.ledger.List()
	if entries == nil {
		entries = make([]finance.LedgerEntry, 0)
	}
	h.Success(c, entries)
}

// Balance handles GET /finance/ledger/balance
func (h *LedgerHandler) Balance(c *gin.Context) {
	h.Success(c, gin.H{"balance": h.ledger.CurrentBalance()})
}

// RegisterRoutes registers ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ledger := rg.Group("/finance/ledger")
	{
		ledger.GET("", h.List)
		ledger.GET("/balance", h.Balance)
	}
}
