package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/dto"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/service"
)

type SearchHandler struct {
	svc service.CatalogService
}

func NewSearchHandler(svc service.CatalogService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Search)
}

// Search handles GET /api/search?q=&size=min-max&categories=a,b&available=true.
func (h *SearchHandler) Search(c *gin.Context) {
	var filters dto.SearchFilters

	filters.Query = strings.TrimSpace(c.Query("q"))
	if filters.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter q"})
		return
	}

	// Malformed facet values are rejected, not silently dropped.
	if sizeStr := strings.TrimSpace(c.Query("size")); sizeStr != "" {
		min, max, err := service.ParseSizeRange(sizeStr)
		if err != nil {
			abortWithError(c, err)
			return
		}
		filters.SizeMin, filters.SizeMax = min, max
	}

	if catStr := strings.TrimSpace(c.Query("categories")); catStr != "" {
		for _, name := range strings.Split(catStr, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				filters.Categories = append(filters.Categories, trimmed)
			}
		}
	}

	if availStr := strings.TrimSpace(c.Query("available")); availStr != "" {
		avail, err := strconv.ParseBool(availStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available must be true or false"})
			return
		}
		filters.Available = &avail
	}

	filters.Page, filters.PageSize = parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	books, err := h.svc.Search(ctx, filters)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, dto.BookFromModel(b))
	}
	c.JSON(http.StatusOK, gin.H{"books": resp})
}
