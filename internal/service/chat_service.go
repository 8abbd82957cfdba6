package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/chat"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/dto"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

const recommenderSystemPrompt = `You are the recommendation assistant of a university library.
You receive a student's message followed by a list of books currently in the catalog.
Recommend books from that list only; never invent titles. Mention whether a book is
currently available for borrowing. Keep the answer short and friendly.`

// How many catalog matches are offered to the model as context.
const chatContextSize = 8

// ChatService is the LLM-backed recommender. It grounds the model on real
// catalog rows by running the user's message through the ranked search first.
type ChatService interface {
	Recommend(ctx context.Context, message string) (string, []models.Book, error)
}

type chatService struct {
	completer chat.Completer
	catalog   CatalogService
}

func NewChatService(completer chat.Completer, catalog CatalogService) ChatService {
	return &chatService{completer: completer, catalog: catalog}
}

func (s *chatService) Recommend(ctx context.Context, message string) (string, []models.Book, error) {
	if s.completer == nil {
		return "", nil, fmt.Errorf("%w: chat recommender is not configured", apperrors.ErrInvalidArgument)
	}

	books, err := s.catalog.Search(ctx, dto.SearchFilters{
		Query:    message,
		Page:     1,
		PageSize: chatContextSize,
	})
	if err != nil && !errors.Is(err, apperrors.ErrInvalidArgument) {
		return "", nil, err
	}

	reply, err := s.completer.Complete(ctx, recommenderSystemPrompt, buildUserPrompt(message, books))
	if err != nil {
		return "", nil, err
	}
	return reply, books, nil
}

func buildUserPrompt(message string, books []models.Book) string {
	var b strings.Builder
	b.WriteString("Student message:\n")
	b.WriteString(message)
	b.WriteString("\n\nCatalog matches:\n")
	if len(books) == 0 {
		b.WriteString("(no close matches found)\n")
		return b.String()
	}
	for _, book := range books {
		availability := "available"
		if !book.Available {
			availability = "currently borrowed"
		}
		fmt.Fprintf(&b, "- %q by %s (%d pages, %s)\n", book.Title, book.Author, book.Size, availability)
	}
	return b.String()
}
