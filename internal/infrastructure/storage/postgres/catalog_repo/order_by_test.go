package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentman/internal/core/entity"
)

type orderByCatalog struct {
	entity.Catalog
	Symbol string `db:"symbol" json:"symbol"`
}

func newOrderByRepo() *BaseCatalogRepo[*orderByCatalog] {
	return NewBaseCatalogRepo(
		nil,
		"cat_test",
		[]string{"id", "code", "name", "symbol", "deletion_mark", "version"},
		func() *orderByCatalog { return &orderByCatalog{} },
	)
}

func TestParseOrderBy(t *testing.T) {
	repo := newOrderByRepo()

	tests := []struct {
		name    string
		orderBy string
		want    string
	}{
		{"default", "", "name ASC"},
		{"ascending", "code", "code ASC"},
		{"descending", "-symbol", "symbol DESC"},
		{"explicit ascending", "+name", "name ASC"},
		{"always allowed column", "created_at", "created_at ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.orderBy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOrderBy_RejectsUnknownColumn(t *testing.T) {
	repo := newOrderByRepo()

	_, err := repo.parseOrderBy("password_hash")
	require.Error(t, err)

	_, err = repo.parseOrderBy("-drop table users")
	require.Error(t, err)

	_, err = repo.parseOrderBy("-")
	require.Error(t, err)
}
