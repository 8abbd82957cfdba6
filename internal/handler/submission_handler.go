package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/dto"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/middleware"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/service"
)

// SubmissionHandler exposes the contact and idea drop boxes plus the
// librarian-only review lists.
type SubmissionHandler struct {
	svc service.SubmissionService
}

func NewSubmissionHandler(svc service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

func (h *SubmissionHandler) RegisterContactRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.SubmitContact)
	rg.GET("", middleware.RequireLibrarian(), h.ListContacts)
}

func (h *SubmissionHandler) RegisterIdeaRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.SubmitIdea)
	rg.GET("", middleware.RequireLibrarian(), h.ListIdeas)
}

func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	var in dto.CreateContactDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := models.Contact{
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.SubmitContact(ctx, middleware.GetAuthContext(c), &contact); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *SubmissionHandler) SubmitIdea(c *gin.Context) {
	var in dto.CreateIdeaDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea := models.Idea{Idea: in.Idea}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.SubmitIdea(ctx, middleware.GetAuthContext(c), &idea); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, idea)
}

func (h *SubmissionHandler) ListContacts(c *gin.Context) {
	page, pageSize := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, total, err := h.svc.ListContacts(ctx, middleware.GetAuthContext(c), page, pageSize)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       list,
		"pagination": paginationEnvelope(page, pageSize, total),
	})
}

func (h *SubmissionHandler) ListIdeas(c *gin.Context) {
	page, pageSize := parsePagination(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, total, err := h.svc.ListIdeas(ctx, middleware.GetAuthContext(c), page, pageSize)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       list,
		"pagination": paginationEnvelope(page, pageSize, total),
	})
}
