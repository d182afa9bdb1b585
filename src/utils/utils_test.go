package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Id    int32  `parquet:"name=id, type=INT32"`
	Name  string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Notes string
}

func TestParquetTagToKeyValue(t *testing.T) {
	assert.Equal(t, map[string]string{
		"name":          "name",
		"type":          "BYTE_ARRAY",
		"convertedtype": "UTF8",
	}, ParquetTagToKeyValue("name=name, type=BYTE_ARRAY, convertedtype=UTF8"))
	assert.Empty(t, ParquetTagToKeyValue(""))
	assert.Equal(t, map[string]string{"name": "id"}, ParquetTagToKeyValue("name=id, broken"))
}

func TestColumnNames(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "Notes"}, ColumnNames(row{}))
	assert.Equal(t, []string{"id", "name", "Notes"}, ColumnNames(&row{}))
}
