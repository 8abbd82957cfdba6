package dto

// SearchFilters carries the parsed query + facet filters for catalog search.
// The handler parses and validates; the service builds the ranked query.
type SearchFilters struct {
	Query      string
	SizeMin    *int
	SizeMax    *int
	Categories []string
	Available  *bool
	Page       int
	PageSize   int
}
