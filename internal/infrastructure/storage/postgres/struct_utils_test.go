package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dentman/internal/core/entity"
	"dentman/internal/core/id"
)

type mockCatalog struct {
	entity.BaseCatalog
	Code   string  `db:"code" json:"code"`
	Name   string  `db:"name" json:"name"`
	Note   *string `db:"note" json:"note,omitempty"`
	Hidden string  `db:"-" json:"-"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{"id", "deletion_mark", "version", "code", "name", "note"}
	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}

	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Hidden")
}

func TestStructToMap(t *testing.T) {
	note := "stocked"
	cat := mockCatalog{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
		},
		Code:   "TEST",
		Name:   "Test Name",
		Note:   &note,
		Hidden: "not persisted",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, &note, m["note"])
	assert.NotContains(t, m, "-")
}

func TestStructToMap_ReusesCachedMetadata(t *testing.T) {
	first := StructToMap(mockCatalog{Code: "A", Name: "a"})
	second := StructToMap(mockCatalog{Code: "B", Name: "b"})

	assert.Equal(t, "A", first["code"])
	assert.Equal(t, "B", second["code"])
	assert.Equal(t, len(first), len(second))
}
