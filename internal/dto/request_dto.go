package dto

import (
	"time"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// CreateBookRequestDTO for POST /api/book-requests.
type CreateBookRequestDTO struct {
	Title  string  `json:"title" binding:"required"`
	Author string  `json:"author" binding:"required"`
	ISBN   *string `json:"isbn,omitempty"`
}

// UpdateBookRequestDTO for PUT /api/book-requests/:id (librarian status change).
type UpdateBookRequestDTO struct {
	Status string `json:"status" binding:"required"`
}

type BookRequestResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        *string   `json:"isbn,omitempty"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}

func BookRequestFromModel(r models.BookRequest) BookRequestResponse {
	return BookRequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Status:      r.Status,
		RequestedAt: r.RequestedAt,
	}
}
