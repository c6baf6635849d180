package handler

import (
	"github.com/gin-gonic/gin"

	searchapp "github.com/zenerp/backend/internal/application/search"
)

// SearchHandler handles the cross-module search endpoint
type SearchHandler struct {
	BaseHandler
	search *searchapp.Service
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(search *searchapp.Service) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles GET /search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		h.BadRequest(c, "query parameter 'q' is required")
		return
	}
	h.Success(c, h.search.Search(query))
}

// RegisterRoutes registers the search route
func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
}
