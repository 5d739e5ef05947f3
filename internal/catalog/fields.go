package catalog

import (
	"fmt"
	"strings"

	"github.com/pageza/foodfight/backend/internal/model"
)

// Field names a recipe attribute searched by the text query
type Field string

const (
	FieldName        Field = "name"
	FieldCuisine     Field = "cuisine"
	FieldCategory    Field = "category"
	FieldContent     Field = "content"
	FieldIngredients Field = "ingredients"
	FieldMethod      Field = "method"
)

// DefaultFields is the searchable field set used when none is configured
var DefaultFields = []Field{FieldName, FieldCuisine, FieldCategory, FieldContent, FieldIngredients}

// ParseFields converts configured field names, rejecting unknown ones
func ParseFields(names []string) ([]Field, error) {
	if len(names) == 0 {
		return DefaultFields, nil
	}
	fields := make([]Field, 0, len(names))
	for _, n := range names {
		f := Field(strings.ToLower(strings.TrimSpace(n)))
		switch f {
		case FieldName, FieldCuisine, FieldCategory, FieldContent, FieldIngredients, FieldMethod:
			fields = append(fields, f)
		default:
			return nil, fmt.Errorf("unknown search field %q", n)
		}
	}
	return fields, nil
}

func (f Field) value(r model.Recipe) string {
	switch f {
	case FieldName:
		return r.SearchName()
	case FieldCuisine:
		return r.Cuisine
	case FieldCategory:
		return r.SearchCategory()
	case FieldContent:
		return r.ContentPreview
	case FieldMethod:
		return r.Method
	}
	return ""
}
