package dto

// ChatRequest for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// ChatResponse carries the recommender's reply plus the catalog matches that
// were offered to the model as context.
type ChatResponse struct {
	Reply string         `json:"reply"`
	Books []BookResponse `json:"books,omitempty"`
}
