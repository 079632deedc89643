package domain

import (
	"time"
)

// SortOrder controls the ordering of article listings by creation time
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// IsValid reports whether the sort order is one of the known values
func (s SortOrder) IsValid() bool {
	return s == SortAsc || s == SortDesc
}

// Author is the subset of a user exposed alongside an article.
// The password hash never leaves the repository layer.
type Author struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Article represents a content entry owned by a user
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"author_id"`
	Author      *Author   `json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArticleFilter holds the listing filters. StartDate and EndDate keep the
// raw request strings because they also feed the list cache key.
type ArticleFilter struct {
	Page      int
	Limit     int
	AuthorID  string
	StartDate string
	EndDate   string
	SortOrder SortOrder
}

// SetDefaults fills unset filter fields with their documented defaults
func (f *ArticleFilter) SetDefaults() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
}

// Offset returns the number of rows to skip for the current page
func (f *ArticleFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ParseFilterDate accepts an RFC3339 timestamp or a bare date
func ParseFilterDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
