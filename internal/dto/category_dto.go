package dto

import "github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"

// CreateCategoryDTO for POST /api/categories.
type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
}

// RenameCategoryDTO for PUT /api/categories/:id.
type RenameCategoryDTO struct {
	Name string `json:"name" binding:"required"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func CategoryFromModel(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}
