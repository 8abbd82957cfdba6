package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/dto"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/service"
)

type ChatHandler struct {
	svc service.ChatService
}

func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Recommend)
}

func (h *ChatHandler) Recommend(c *gin.Context) {
	var in dto.ChatRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Completion calls are slow, give them more room than the DB handlers.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	reply, books, err := h.svc.Recommend(ctx, in.Message)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := dto.ChatResponse{Reply: reply}
	for _, b := range books {
		resp.Books = append(resp.Books, dto.BookFromModel(b))
	}
	c.JSON(http.StatusOK, resp)
}
