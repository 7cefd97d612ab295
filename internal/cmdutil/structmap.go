package cmdutil

import (
	"reflect"
	"strings"
	"unicode"
)

// StructToMapOptions configures StructToMap behavior.
type StructToMapOptions struct {
	// OmitFields lists Go field names left out of the map
	OmitFields map[string]bool
	// KeyOverrides maps Go field names to column names
	KeyOverrides map[string]string
}

// StructToMap flattens a struct into a column map for datastore inserts.
// Column names come from the json tag, falling back to the snake_case field
// name. Embedded structs are merged into the parent and nil pointers map to nil.
func StructToMap[T any](value T, opts StructToMapOptions) map[string]any {
	result := make(map[string]any)

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return result
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return result
	}

	collectColumns(v, result, opts)
	return result
}

func collectColumns(v reflect.Value, into map[string]any, opts StructToMapOptions) {
	for i := range v.NumField() {
		field := v.Type().Field(i)
		if !field.IsExported() || opts.OmitFields[field.Name] {
			continue
		}

		value := v.Field(i)
		if field.Anonymous && value.Kind() == reflect.Struct {
			collectColumns(value, into, opts)
			continue
		}

		column, ok := columnName(field, opts)
		if !ok {
			continue
		}

		if value.Kind() == reflect.Pointer {
			if value.IsNil() {
				into[column] = nil
				continue
			}
			value = value.Elem()
		}
		into[column] = value.Interface()
	}
}

// columnName reports false for fields tagged json:"-".
func columnName(field reflect.StructField, opts StructToMapOptions) (string, bool) {
	if override, ok := opts.KeyOverrides[field.Name]; ok {
		return override, true
	}

	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return "", false
	case "":
		return toSnakeCase(field.Name), true
	default:
		return name, true
	}
}

// toSnakeCase splits on lower-to-upper transitions and before the last
// capital of an acronym, so USDPrice becomes usd_price.
func toSnakeCase(input string) string {
	runes := []rune(input)
	var b strings.Builder

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			acronymEnd := unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || acronymEnd {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
