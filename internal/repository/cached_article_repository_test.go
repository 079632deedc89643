package repository

import (
	"testing"

	"github.com/reseldor/content-api/internal/domain"
)

func TestListKey(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.ArticleFilter
		want   string
	}{
		{
			name:   "defaults",
			filter: domain.ArticleFilter{Page: 1, Limit: 10, SortOrder: domain.SortDesc},
			want:   "articles:1:10:all:none:none:DESC",
		},
		{
			name: "author filter",
			filter: domain.ArticleFilter{
				Page: 2, Limit: 5,
				AuthorID:  "u-123",
				SortOrder: domain.SortAsc,
			},
			want: "articles:2:5:u-123:none:none:ASC",
		},
		{
			name: "date range",
			filter: domain.ArticleFilter{
				Page: 1, Limit: 10,
				StartDate: "2024-01-01T00:00:00Z",
				EndDate:   "2024-06-30T23:59:59Z",
				SortOrder: domain.SortDesc,
			},
			want: "articles:1:10:all:2024-01-01T00:00:00Z:2024-06-30T23:59:59Z:DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listKey(tt.filter); got != tt.want {
				t.Errorf("listKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListKeyDistinguishesFilters(t *testing.T) {
	base := domain.ArticleFilter{Page: 1, Limit: 10, SortOrder: domain.SortDesc}

	variants := []domain.ArticleFilter{
		{Page: 2, Limit: 10, SortOrder: domain.SortDesc},
		{Page: 1, Limit: 20, SortOrder: domain.SortDesc},
		{Page: 1, Limit: 10, SortOrder: domain.SortAsc},
		{Page: 1, Limit: 10, AuthorID: "u-1", SortOrder: domain.SortDesc},
		{Page: 1, Limit: 10, StartDate: "2024-01-01T00:00:00Z", SortOrder: domain.SortDesc},
	}

	baseKey := listKey(base)
	for _, v := range variants {
		if listKey(v) == baseKey {
			t.Errorf("filter %+v produced the same key as the base filter", v)
		}
	}
}

func TestArticleKey(t *testing.T) {
	if got := articleKey("abc-123"); got != "article:abc-123" {
		t.Errorf("articleKey() = %q", got)
	}
}
