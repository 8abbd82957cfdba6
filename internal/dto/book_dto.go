package dto

import (
	"time"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// CreateBookDTO used for POST /api/books.
type CreateBookDTO struct {
	Title       string     `json:"title" binding:"required"`
	Author      string     `json:"author" binding:"required"`
	ISBN        *string    `json:"isbn,omitempty"`
	Description string     `json:"description,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Size        int        `json:"size" binding:"omitempty,min=1"`
	Language    string     `json:"language,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CategoryIDs []int64    `json:"category_ids,omitempty"`
}

// UpdateBookDTO used for PUT /api/books/:id (partial updates allowed).
type UpdateBookDTO struct {
	Title       *string    `json:"title,omitempty"`
	Author      *string    `json:"author,omitempty"`
	ISBN        *string    `json:"isbn,omitempty"`
	Description *string    `json:"description,omitempty"`
	CoverImage  *string    `json:"cover_image,omitempty"`
	Size        *int       `json:"size,omitempty"`
	Language    *string    `json:"language,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CategoryIDs []int64    `json:"category_ids,omitempty"`
}

// BookResponse DTO for responses.
type BookResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	ISBN        *string    `json:"isbn,omitempty"`
	Description string     `json:"description,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Size        int        `json:"size"`
	Available   bool       `json:"available"`
	Language    string     `json:"language,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	AddedAt     time.Time  `json:"added_at"`
	Categories  []string   `json:"categories,omitempty"`
}

func (d CreateBookDTO) ToModel() models.Book {
	return models.Book{
		Title:       d.Title,
		Author:      d.Author,
		ISBN:        d.ISBN,
		Description: d.Description,
		CoverImage:  d.CoverImage,
		Size:        d.Size,
		Available:   true,
		Language:    d.Language,
		PublishedAt: d.PublishedAt,
	}
}

func (d UpdateBookDTO) ApplyTo(b *models.Book) {
	if d.Title != nil {
		b.Title = *d.Title
	}
	if d.Author != nil {
		b.Author = *d.Author
	}
	if d.ISBN != nil {
		b.ISBN = d.ISBN
	}
	if d.Description != nil {
		b.Description = *d.Description
	}
	if d.CoverImage != nil {
		b.CoverImage = *d.CoverImage
	}
	if d.Size != nil {
		b.Size = *d.Size
	}
	if d.Language != nil {
		b.Language = *d.Language
	}
	if d.PublishedAt != nil {
		b.PublishedAt = d.PublishedAt
	}
}

func BookFromModel(b models.Book) BookResponse {
	resp := BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Description: b.Description,
		CoverImage:  b.CoverImage,
		Size:        b.Size,
		Available:   b.Available,
		Language:    b.Language,
		PublishedAt: b.PublishedAt,
		AddedAt:     b.AddedAt,
	}
	for _, c := range b.Categories {
		resp.Categories = append(resp.Categories, c.Name)
	}
	return resp
}
