// Package catalog holds the pure recipe catalog logic: matching, grouping and
// ordering, plus the small derived features built on top of the dataset.
package catalog

import (
	"sort"
	"strings"

	"github.com/pageza/foodfight/backend/internal/model"
)

// All is the sentinel selection value meaning "no constraint on this axis"
const All = "all"

// Selection constrains one filter axis. An empty selection, or one containing All,
// matches every recipe. Several values make a multi-select.
type Selection []string

// Active reports whether the selection constrains anything
func (s Selection) Active() bool {
	if len(s) == 0 {
		return false
	}
	for _, v := range s {
		if strings.EqualFold(strings.TrimSpace(v), All) {
			return false
		}
	}
	return true
}

// Matches reports whether value satisfies the selection
func (s Selection) Matches(value string) bool {
	if !s.Active() {
		return true
	}
	for _, v := range s {
		if strings.EqualFold(strings.TrimSpace(v), value) {
			return true
		}
	}
	return false
}

// Criteria is the caller-owned filter state
type Criteria struct {
	Query    string
	Category Selection
	Method   Selection
	Cuisine  Selection
}

// Chapter is one category of a result, in display order
type Chapter struct {
	Name    string         `json:"name"`
	Recipes []model.Recipe `json:"recipes"`
}

// Result is the grouped, ordered output of Filter. It never holds empty chapters.
type Result struct {
	Chapters []Chapter `json:"chapters"`
}

// Total returns the number of recipes across all chapters
func (r Result) Total() int {
	n := 0
	for _, ch := range r.Chapters {
		n += len(ch.Recipes)
	}
	return n
}

// Categories returns the chapter names in display order
func (r Result) Categories() []string {
	names := make([]string, len(r.Chapters))
	for i, ch := range r.Chapters {
		names[i] = ch.Name
	}
	return names
}

// Map returns the category to recipes mapping
func (r Result) Map() map[string][]model.Recipe {
	m := make(map[string][]model.Recipe, len(r.Chapters))
	for _, ch := range r.Chapters {
		m[ch.Name] = ch.Recipes
	}
	return m
}

// Recipes flattens the result in display order
func (r Result) Recipes() []model.Recipe {
	out := make([]model.Recipe, 0, r.Total())
	for _, ch := range r.Chapters {
		out = append(out, ch.Recipes...)
	}
	return out
}

// Options configures matching and ordering
type Options struct {
	// Fields searched by the text query. Nil means DefaultFields.
	Fields []Field
	// ChapterOrder sets category display precedence. Unlisted categories follow alphabetically.
	ChapterOrder []string
}

// Filter returns the recipes satisfying every active criterion, grouped by
// category. The input slice is not modified.
func Filter(recipes []model.Recipe, c Criteria, opts Options) Result {
	fields := opts.Fields
	if fields == nil {
		fields = DefaultFields
	}
	query := strings.ToLower(c.Query)

	matched := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !c.Category.Matches(r.Category) || !c.Method.Matches(r.Method) || !c.Cuisine.Matches(r.Cuisine) {
			continue
		}
		if query != "" && !matchesQuery(r, query, fields) {
			continue
		}
		matched = append(matched, r)
	}

	return Group(matched, opts.ChapterOrder)
}

// Group buckets recipes by category, keeping their relative order, and orders
// the chapters by order first and alphabetically after.
func Group(recipes []model.Recipe, order []string) Result {
	buckets := make(map[string][]model.Recipe)
	for _, r := range recipes {
		buckets[r.Category] = append(buckets[r.Category], r)
	}

	chapters := make([]Chapter, 0, len(buckets))
	for _, name := range OrderCategories(keys(buckets), order) {
		chapters = append(chapters, Chapter{Name: name, Recipes: buckets[name]})
	}
	return Result{Chapters: chapters}
}

// OrderCategories sorts names by their position in order, then lexicographically
func OrderCategories(names []string, order []string) []string {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}

	out := make([]string, 0, len(names))
	placed := make(map[string]bool, len(names))
	for _, n := range order {
		if present[n] && !placed[n] {
			out = append(out, n)
			placed[n] = true
		}
	}

	var rest []string
	for n := range present {
		if !placed[n] {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// MatchedIngredients returns the ingredients containing query, in recipe order
func MatchedIngredients(r model.Recipe, query string) []string {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}
	var out []string
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), query) {
			out = append(out, ing)
		}
	}
	return out
}

func matchesQuery(r model.Recipe, query string, fields []Field) bool {
	for _, f := range fields {
		switch f {
		case FieldIngredients:
			for _, ing := range r.Ingredients {
				if strings.Contains(strings.ToLower(ing), query) {
					return true
				}
			}
		default:
			if strings.Contains(strings.ToLower(f.value(r)), query) {
				return true
			}
		}
	}
	return false
}

func keys(m map[string][]model.Recipe) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
