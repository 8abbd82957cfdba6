package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/dto"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
)

// SearchRepository runs the ranked full-text query over the catalog. The
// relevance document weights title highest, author next and category names
// lowest; the tsquery is built by the catalog service (prefix terms, AND
// semantics) and arrives here already sanitized.
type SearchRepository interface {
	Search(ctx context.Context, tsquery string, filters dto.SearchFilters) ([]models.Book, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

// document is the weighted tsvector each book is matched and ranked against.
const document = `
	setweight(to_tsvector('english', coalesce(b.title, '')), 'A') ||
	setweight(to_tsvector('english', coalesce(b.author, '')), 'B') ||
	setweight(to_tsvector('english', coalesce(cats.names, '')), 'C')`

func (r *searchRepository) Search(ctx context.Context, tsquery string, filters dto.SearchFilters) ([]models.Book, error) {
	// Rank in SQL, then hydrate the matching books with their categories in
	// id order of the ranked result.
	sql := `
		SELECT b.id
		FROM books b
		LEFT JOIN (
			SELECT bc.book_id, string_agg(c.name, ' ') AS names
			FROM book_categories bc
			JOIN categories c ON c.id = bc.category_id
			GROUP BY bc.book_id
		) cats ON cats.book_id = b.id
		WHERE (` + document + `) @@ to_tsquery('english', @q)`
	args := map[string]any{"q": tsquery}

	if filters.SizeMin != nil && filters.SizeMax != nil {
		sql += ` AND b.size BETWEEN @size_min AND @size_max`
		args["size_min"] = *filters.SizeMin
		args["size_max"] = *filters.SizeMax
	}
	if len(filters.Categories) > 0 {
		sql += ` AND b.id IN (
			SELECT bc2.book_id FROM book_categories bc2
			JOIN categories c2 ON c2.id = bc2.category_id
			WHERE c2.name IN @categories)`
		args["categories"] = filters.Categories
	}
	if filters.Available != nil {
		sql += ` AND b.available = @available`
		args["available"] = *filters.Available
	}

	sql += `
		ORDER BY ts_rank(` + document + `, to_tsquery('english', @q)) DESC
		LIMIT @limit OFFSET @offset`
	args["limit"] = filters.PageSize
	args["offset"] = (filters.Page - 1) * filters.PageSize

	var ids []int64
	if err := r.db.WithContext(ctx).Raw(sql, args).Scan(&ids).Error; err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	if len(ids) == 0 {
		return []models.Book{}, nil
	}

	var books []models.Book
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("id IN ?", ids).
		Find(&books).Error; err != nil {
		return nil, fmt.Errorf("hydrate search results: %w", err)
	}

	// Find does not preserve the ranked order.
	byID := make(map[int64]models.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	ordered := make([]models.Book, 0, len(ids))
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			ordered = append(ordered, b)
		}
	}
	return ordered, nil
}
