package utils

import (
	"reflect"
	"strings"
)

func GetFields(t any) []reflect.StructField {
	typeOf := reflect.TypeOf(t)
	if typeOf.Kind() == reflect.Pointer {
		typeOf = typeOf.Elem()
	}
	var result []reflect.StructField
	for i := 0; i < typeOf.NumField(); i++ {
		result = append(result, typeOf.Field(i))
	}
	return result
}

// ParquetTagToKeyValue turns `name=id, type=INT32` into {name: id, type: INT32}.
// Entries without '=' are skipped.
func ParquetTagToKeyValue(tag string) map[string]string {
	result := make(map[string]string)
	for _, entry := range strings.Split(tag, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(entry), "=")
		if !found {
			continue
		}
		result[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return result
}

// ColumnNames lists the parquet column name of every field of t, falling back
// to the Go field name when a field has no parquet tag.
func ColumnNames(t any) []string {
	var names []string
	for _, field := range GetFields(t) {
		name := ParquetTagToKeyValue(field.Tag.Get("parquet"))["name"]
		if name == "" {
			name = field.Name
		}
		names = append(names, name)
	}
	return names
}
