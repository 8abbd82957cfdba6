package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/apperrors"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/cache"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/dto"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/models"
	"github.com/Kadacheahmedrami/EstinBib-sub000/internal/repository"
)

// CatalogService translates free text plus facet filters into the ranked
// full-text query. Results are cached best-effort with a short TTL; a stale
// hit can only ever mislabel availability for the TTL window, never corrupt
// the borrow state.
type CatalogService interface {
	Search(ctx context.Context, filters dto.SearchFilters) ([]models.Book, error)
}

type catalogService struct {
	repo  repository.SearchRepository
	cache *cache.Client
}

func NewCatalogService(repo repository.SearchRepository, cache *cache.Client) CatalogService {
	return &catalogService{repo: repo, cache: cache}
}

func (s *catalogService) Search(ctx context.Context, filters dto.SearchFilters) ([]models.Book, error) {
	tsquery, err := BuildPrefixQuery(filters.Query)
	if err != nil {
		return nil, err
	}
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	} else if filters.PageSize > 100 {
		filters.PageSize = 100
	}

	key := searchCacheKey(tsquery, filters)
	var books []models.Book
	if s.cache.GetJSON(ctx, key, &books) {
		return books, nil
	}

	books, err = s.repo.Search(ctx, tsquery, filters)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, books)
	return books, nil
}

// BuildPrefixQuery turns raw user text into a tsquery string: each whitespace
// token becomes a prefix term and the terms are conjoined, so every term must
// match. "harry pott" -> "harry:* & pott:*". Characters meaningful to
// to_tsquery are stripped from tokens rather than escaped.
func BuildPrefixQuery(q string) (string, error) {
	tokens := strings.Fields(q)
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		clean := sanitizeToken(tok)
		if clean == "" {
			continue
		}
		terms = append(terms, clean+":*")
	}
	if len(terms) == 0 {
		return "", apperrors.InvalidArgumentf("query must contain at least one searchable term")
	}
	return strings.Join(terms, " & "), nil
}

func sanitizeToken(tok string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '&', '|', '!', '(', ')', ':', '*', '\'', '"', '<', '>', '\\':
			return -1
		}
		return r
	}, tok)
}

// ParseSizeRange parses a "min-max" page-count range. A malformed range is an
// error, not a silently dropped filter.
func ParseSizeRange(s string) (min, max *int, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, nil, apperrors.InvalidArgumentf("size must be of the form min-max")
	}
	lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return nil, nil, apperrors.InvalidArgumentf("size bounds must be integers")
	}
	if lo < 0 || hi < lo {
		return nil, nil, apperrors.InvalidArgumentf("size range must satisfy 0 <= min <= max")
	}
	return &lo, &hi, nil
}

func searchCacheKey(tsquery string, filters dto.SearchFilters) string {
	var b strings.Builder
	b.WriteString("search:")
	b.WriteString(tsquery)
	if filters.SizeMin != nil && filters.SizeMax != nil {
		fmt.Fprintf(&b, ":size=%d-%d", *filters.SizeMin, *filters.SizeMax)
	}
	if len(filters.Categories) > 0 {
		fmt.Fprintf(&b, ":cats=%s", strings.Join(filters.Categories, ","))
	}
	if filters.Available != nil {
		fmt.Fprintf(&b, ":avail=%t", *filters.Available)
	}
	fmt.Fprintf(&b, ":p=%d:ps=%d", filters.Page, filters.PageSize)
	return b.String()
}
