package dto

// CreateContactDTO for POST /api/contact.
type CreateContactDTO struct {
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" binding:"required"`
}

// CreateIdeaDTO for POST /api/ideas.
type CreateIdeaDTO struct {
	Idea string `json:"idea" binding:"required"`
}
