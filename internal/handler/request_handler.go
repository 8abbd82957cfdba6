package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/dto"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/middleware"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/service"
)

type RequestHandler struct {
	svc service.RequestService
}

func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func (h *RequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/mine", h.ListMine)
	rg.GET("", middleware.RequireLibrarian(), h.ListAll)
	rg.PUT("/:request_id", middleware.RequireLibrarian(), h.UpdateStatus)
}

func (h *RequestHandler) Create(c *gin.Context) {
	var in dto.CreateBookRequestDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := models.BookRequest{
		Title:  in.Title,
		Author: in.Author,
		ISBN:   in.ISBN,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, middleware.GetAuthContext(c), &request); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BookRequestFromModel(request))
}

func (h *RequestHandler) ListMine(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.ListMine(ctx, middleware.GetAuthContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp := make([]dto.BookRequestResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, dto.BookRequestFromModel(r))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *RequestHandler) ListAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, total, err := h.svc.ListAll(ctx, middleware.GetAuthContext(c), page, pageSize)
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp := make([]dto.BookRequestResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, dto.BookRequestFromModel(r))
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       resp,
		"pagination": paginationEnvelope(page, pageSize, total),
	})
}

func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("request_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	var in dto.UpdateBookRequestDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.UpdateStatus(ctx, middleware.GetAuthContext(c), id, in.Status); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
