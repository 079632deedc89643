package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		limit          int
		wantTotalPages int
	}{
		{"exact pages", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single item", 1, 10, 1},
		{"empty", 0, 10, 0},
		{"limit one", 7, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPaginatedResult([]string{}, tt.total, 1, tt.limit)
			assert.Equal(t, tt.wantTotalPages, result.TotalPages)
		})
	}
}

func TestNewPaginatedResultNilData(t *testing.T) {
	result := NewPaginatedResult[string](nil, 0, 1, 10)
	assert.NotNil(t, result.Data, "nil data must become an empty slice")
	assert.Empty(t, result.Data)
}

func TestArticleFilterDefaults(t *testing.T) {
	f := ArticleFilter{}
	f.SetDefaults()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, SortDesc, f.SortOrder)
	assert.Equal(t, 0, f.Offset())

	f = ArticleFilter{Page: 3, Limit: 20}
	f.SetDefaults()
	assert.Equal(t, 40, f.Offset())
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("SUPERUSER").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestSortOrderIsValid(t *testing.T) {
	assert.True(t, SortAsc.IsValid())
	assert.True(t, SortDesc.IsValid())
	assert.False(t, SortOrder("random").IsValid())
}
