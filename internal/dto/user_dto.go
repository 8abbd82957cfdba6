package dto

import (
	"time"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// UpdateRoleDTO for PUT /api/users/:id/role.
type UpdateRoleDTO struct {
	Role string `json:"role" binding:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func UserFromModel(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
