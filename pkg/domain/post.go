package domain

import (
	"math"
	"time"
)

// PostSummary is a short post card embedded into an author record
type PostSummary struct {
	Title         string    `json:"title"`
	CoverImageURL string    `json:"coverImageUrl"`
	URL           string    `json:"url"`
	Date          time.Time `json:"date"`
	Excerpt       string    `json:"excerpt"`
}

// Post is a feed entry of the full catalog. ID is "<sourceID>:<guid|link|random>".
type Post struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	Author          string    `json:"author"`
	PublicationName string    `json:"publicationName"`
	PublishDate     time.Time `json:"publishDate"`
	Link            string    `json:"link"`
	SourceID        string    `json:"sourceId"`
	CoverImageURL   string    `json:"coverImageUrl,omitempty"`
	LogoURL         string    `json:"logoUrl,omitempty"`
}

// AggregatedPost is a flattened post keyed by its permalink.
// Unlike Post, aggregated posts are never deleted by a refresh.
type AggregatedPost struct {
	PostURL       string    `json:"postUrl"`
	Title         string    `json:"title"`
	CoverImageURL string    `json:"coverImageUrl"`
	Date          time.Time `json:"date"`
	Excerpt       string    `json:"excerpt"`
	AuthorName    string    `json:"authorName"`
	AuthorURL     string    `json:"authorUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewAggregatedPost flattens a recent post summary of the given author
func NewAggregatedPost(author Author, s PostSummary) AggregatedPost {
	return AggregatedPost{
		PostURL:       s.URL,
		Title:         s.Title,
		CoverImageURL: s.CoverImageURL,
		Date:          s.Date,
		Excerpt:       s.Excerpt,
		AuthorName:    author.Name,
		AuthorURL:     author.SubstackURL,
	}
}

// Page is a paginated slice of results
type Page[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	HasMore bool  `json:"hasMore"`
}

// NewPage builds a page and computes HasMore from the skipped offset and total count
func NewPage[T any](items []T, total int64, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	hasMore := false
	if page >= 1 && limit >= 1 && page-1 <= math.MaxInt/limit {
		hasMore = int64((page-1)*limit)+int64(len(items)) < total
	}
	return Page[T]{
		Items:   items,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: hasMore,
	}
}
