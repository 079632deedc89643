package dto

import (
	"strings"

	"github.com/reseldor/content-api/internal/domain"
)

// CreateArticleRequest represents an article creation request
type CreateArticleRequest struct {
	Title       string  `json:"title" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	Description *string `json:"description"`
}

// Validate checks field constraints beyond presence
func (r *CreateArticleRequest) Validate() (bool, string) {
	if len(strings.TrimSpace(r.Title)) < 3 {
		return false, "Title must be at least 3 characters"
	}
	if len(strings.TrimSpace(r.Content)) < 10 {
		return false, "Content must be at least 10 characters"
	}
	return true, ""
}

// UpdateArticleRequest represents a partial article update. Nil fields
// are left unchanged.
type UpdateArticleRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Description *string `json:"description"`
}

// Validate checks field constraints on the fields that are present
func (r *UpdateArticleRequest) Validate() (bool, string) {
	if r.Title != nil && len(strings.TrimSpace(*r.Title)) < 3 {
		return false, "Title must be at least 3 characters"
	}
	if r.Content != nil && len(strings.TrimSpace(*r.Content)) < 10 {
		return false, "Content must be at least 10 characters"
	}
	return true, ""
}

// ListArticlesQuery binds the article list query string
type ListArticlesQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	AuthorID  string `form:"authorId"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	SortOrder string `form:"sortOrder"`
}

// Validate checks date and sort parameters
func (q *ListArticlesQuery) Validate() (bool, string) {
	if q.Page < 0 || q.Limit < 0 {
		return false, "page and limit must be positive"
	}
	if q.StartDate != "" {
		if _, err := domain.ParseFilterDate(q.StartDate); err != nil {
			return false, "startDate must be an ISO-8601 date or timestamp"
		}
	}
	if q.EndDate != "" {
		if _, err := domain.ParseFilterDate(q.EndDate); err != nil {
			return false, "endDate must be an ISO-8601 date or timestamp"
		}
	}
	if q.SortOrder != "" && !domain.SortOrder(q.SortOrder).IsValid() {
		return false, "sortOrder must be ASC or DESC"
	}
	return true, ""
}

// ToFilter converts the query into a domain filter with defaults applied
func (q *ListArticlesQuery) ToFilter() domain.ArticleFilter {
	f := domain.ArticleFilter{
		Page:      q.Page,
		Limit:     q.Limit,
		AuthorID:  q.AuthorID,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		SortOrder: domain.SortOrder(q.SortOrder),
	}
	f.SetDefaults()
	return f
}
