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

type SndlHandler struct {
	svc service.SndlService
}

func NewSndlHandler(svc service.SndlService) *SndlHandler {
	return &SndlHandler{svc: svc}
}

func (h *SndlHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/mine", h.ListMine)

	rg.GET("", middleware.RequireLibrarian(), h.ListAll)
	rg.PUT("/:demand_id", middleware.RequireLibrarian(), h.Process)
	rg.POST("/:demand_id/email-sent", middleware.RequireLibrarian(), h.MarkEmailSent)
}

func (h *SndlHandler) Create(c *gin.Context) {
	var in dto.CreateSndlDemandDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	demand, err := h.svc.Create(ctx, middleware.GetAuthContext(c), in.RequestReason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SndlDemandFromModel(*demand))
}

func (h *SndlHandler) Process(c *gin.Context) {
	var in dto.ProcessSndlDemandDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	demand, err := h.svc.Process(ctx, middleware.GetAuthContext(c), c.Param("demand_id"), in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SndlDemandFromModel(*demand))
}

func (h *SndlHandler) MarkEmailSent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	demand, err := h.svc.MarkEmailSent(ctx, middleware.GetAuthContext(c), c.Param("demand_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SndlDemandFromModel(*demand))
}

func (h *SndlHandler) ListMine(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.ListMine(ctx, middleware.GetAuthContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp := make([]dto.SndlDemandResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, dto.SndlDemandFromModel(d))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SndlHandler) ListAll(c *gin.Context) {
	page, pageSize := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, total, err := h.svc.ListAll(ctx, middleware.GetAuthContext(c), page, pageSize)
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp := make([]dto.SndlDemandResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, dto.SndlDemandFromModel(d))
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       resp,
		"pagination": paginationEnvelope(page, pageSize, total),
	})
}
