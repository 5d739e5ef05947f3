package model

import (
	"fmt"
	"strings"
)

const (
	// UntitledName is displayed for records carrying neither name nor title
	UntitledName = "Untitled"
	// UncategorizedName groups records without a category
	UncategorizedName = "Uncategorized"
	// UnknownMethod is the dataset's sentinel for a missing cooking method
	UnknownMethod = "Unknown"
)

// RawRecipe is a record as supplied by the external dataset. Every field is optional.
// It doubles as the row type of the SQL dataset source.
type RawRecipe struct {
	RowID          uint       `gorm:"primaryKey;autoIncrement" json:"-"`
	ID             Text       `gorm:"column:id;type:text" json:"id"`
	FileID         Text       `gorm:"column:file_id;type:text" json:"file_id"`
	Name           Text       `gorm:"column:name;type:text" json:"name"`
	Title          Text       `gorm:"column:title;type:text" json:"title"`
	Category       Text       `gorm:"column:category;type:text" json:"category"`
	CuisineStyle   Text       `gorm:"column:cuisine_style;type:text" json:"cuisine_style"`
	Cuisine        Text       `gorm:"column:cuisine;type:text" json:"cuisine"`
	CookingMethod  Text       `gorm:"column:cooking_method;type:text" json:"cooking_method"`
	Ingredients    StringList `gorm:"column:ingredients;type:text" json:"ingredients"`
	ContentPreview Text       `gorm:"column:content_preview;type:text" json:"content_preview"`
	FileType       Text       `gorm:"column:file_type;type:text" json:"file_type"`
}

// TableName pins the table used by the SQL dataset source
func (RawRecipe) TableName() string {
	return "recipes"
}

// Recipe is the canonical, normalized record. It is never mutated after load.
type Recipe struct {
	Key             string   `json:"key"`
	ID              string   `json:"id,omitempty"`
	FileID          string   `json:"file_id,omitempty"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Cuisine         string   `json:"cuisine,omitempty"`
	Method          string   `json:"cooking_method,omitempty"`
	Ingredients     []string `json:"ingredients"`
	ContentPreview  string   `json:"content_preview,omitempty"`
	FileType        string   `json:"file_type,omitempty"`
	NameMissing     bool     `json:"-"`
	CategoryMissing bool     `json:"-"`
}

// SearchName is the name as supplied, empty when the display name is the fallback
func (r Recipe) SearchName() string {
	if r.NameMissing {
		return ""
	}
	return r.Name
}

// SearchCategory is the category as supplied, empty when the display value is the fallback
func (r Recipe) SearchCategory() string {
	if r.CategoryMissing {
		return ""
	}
	return r.Category
}

// Normalize resolves the fallback chains of a raw record once. index is the
// record's position in the dataset and seeds the key when no identifier exists.
func Normalize(raw RawRecipe, index int) Recipe {
	r := Recipe{
		ID:             raw.ID.String(),
		FileID:         raw.FileID.String(),
		Name:           firstNonEmpty(raw.Name.String(), raw.Title.String()),
		Category:       raw.Category.String(),
		Cuisine:        firstNonEmpty(raw.CuisineStyle.String(), raw.Cuisine.String()),
		Method:         raw.CookingMethod.String(),
		ContentPreview: raw.ContentPreview.String(),
		FileType:       raw.FileType.String(),
	}

	r.Key = firstNonEmpty(r.ID, r.FileID)
	if r.Key == "" {
		r.Key = fmt.Sprintf("recipe-%d", index)
	}
	if r.Name == "" {
		r.Name = UntitledName
		r.NameMissing = true
	}
	if r.Category == "" {
		r.Category = UncategorizedName
		r.CategoryMissing = true
	}
	if strings.EqualFold(r.Method, UnknownMethod) {
		r.Method = ""
	}

	r.Ingredients = make([]string, 0, len(raw.Ingredients))
	for _, ing := range raw.Ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			r.Ingredients = append(r.Ingredients, ing)
		}
	}

	return r
}

// NormalizeAll normalizes a whole dataset, keeping order and making keys unique
func NormalizeAll(raws []RawRecipe) []Recipe {
	recipes := make([]Recipe, 0, len(raws))
	seen := make(map[string]int, len(raws))
	for i, raw := range raws {
		r := Normalize(raw, i)
		if n := seen[r.Key]; n > 0 {
			base := r.Key
			for {
				n++
				r.Key = fmt.Sprintf("%s-%d", base, n)
				if seen[r.Key] == 0 {
					break
				}
			}
			seen[base] = n
		}
		seen[r.Key]++
		recipes = append(recipes, r)
	}
	return recipes
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
