package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/dto"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/middleware"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/service"
)

type BorrowHandler struct {
	svc service.BorrowService
}

func NewBorrowHandler(svc service.BorrowService) *BorrowHandler {
	return &BorrowHandler{svc: svc}
}

func (h *BorrowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.POST("/:borrow_id/return", h.Return)
	rg.POST("/:borrow_id/extend", h.Extend)
	rg.GET("", h.ListMine)
	rg.GET("/all", middleware.RequireLibrarian(), h.ListAll)
}

func (h *BorrowHandler) Create(c *gin.Context) {
	var in dto.CreateBorrowDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	borrow, err := h.svc.Create(ctx, middleware.GetAuthContext(c), in.BookID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BorrowFromModel(*borrow, time.Now()))
}

func (h *BorrowHandler) Return(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	borrow, err := h.svc.Return(ctx, middleware.GetAuthContext(c), c.Param("borrow_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BorrowFromModel(*borrow, time.Now()))
}

func (h *BorrowHandler) Extend(c *gin.Context) {
	var in dto.ExtendBorrowDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	borrow, err := h.svc.Extend(ctx, middleware.GetAuthContext(c), c.Param("borrow_id"), in.Weeks)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BorrowFromModel(*borrow, time.Now()))
}

func (h *BorrowHandler) ListMine(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.ListMine(ctx, middleware.GetAuthContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	now := time.Now()
	resp := make([]dto.BorrowResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, dto.BorrowFromModel(b, now))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BorrowHandler) ListAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, total, err := h.svc.ListAll(ctx, middleware.GetAuthContext(c), page, pageSize)
	if err != nil {
		abortWithError(c, err)
		return
	}

	now := time.Now()
	resp := make([]dto.BorrowResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, dto.BorrowFromModel(b, now))
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       resp,
		"pagination": paginationEnvelope(page, pageSize, total),
	})
}
