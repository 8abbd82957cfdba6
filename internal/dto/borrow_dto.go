package dto

import (
	"time"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// CreateBorrowDTO for POST /api/borrows.
type CreateBorrowDTO struct {
	BookID int64 `json:"book_id" binding:"required"`
}

// ExtendBorrowDTO for POST /api/borrows/:id/extend.
type ExtendBorrowDTO struct {
	Weeks int `json:"weeks" binding:"required"`
}

// BorrowResponse DTO for responses. Overdue is computed at read time, never
// stored.
type BorrowResponse struct {
	ID         string     `json:"id"`
	BookID     int64      `json:"book_id"`
	BookTitle  string     `json:"book_title,omitempty"`
	UserID     string     `json:"user_id"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Overdue    bool       `json:"overdue"`
}

func BorrowFromModel(b models.Borrow, now time.Time) BorrowResponse {
	return BorrowResponse{
		ID:         b.ID,
		BookID:     b.BookID,
		BookTitle:  b.Book.Title,
		UserID:     b.UserID,
		BorrowedAt: b.BorrowedAt,
		DueDate:    b.DueDate,
		ReturnedAt: b.ReturnedAt,
		Overdue:    b.IsOverdue(now),
	}
}
