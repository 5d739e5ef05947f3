package catalog

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pageza/foodfight/backend/internal/model"
)

// FacetValue is one selectable option of a filter axis
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facets lists the options available on each filter axis
type Facets struct {
	Categories []FacetValue `json:"categories"`
	Methods    []FacetValue `json:"methods"`
	Cuisines   []FacetValue `json:"cuisines"`
}

// BuildFacets collects distinct axis values. Categories follow the chapter
// order, methods and cuisines are alphabetical. Empty values are left out.
func BuildFacets(recipes []model.Recipe, order []string) Facets {
	categories := map[string]int{}
	methods := map[string]int{}
	cuisines := map[string]int{}
	for _, r := range recipes {
		categories[r.Category]++
		if r.Method != "" {
			methods[r.Method]++
		}
		if r.Cuisine != "" {
			cuisines[r.Cuisine]++
		}
	}

	names := make([]string, 0, len(categories))
	for n := range categories {
		names = append(names, n)
	}
	cats := make([]FacetValue, 0, len(names))
	for _, n := range OrderCategories(names, order) {
		cats = append(cats, FacetValue{Value: n, Count: categories[n]})
	}

	return Facets{
		Categories: cats,
		Methods:    sortedFacet(methods),
		Cuisines:   sortedFacet(cuisines),
	}
}

// RankIngredients returns up to limit ingredient terms ordered by how many
// recipes use them. Terms are case-folded; ties sort alphabetically.
func RankIngredients(recipes []model.Recipe, limit int) []string {
	counts := map[string]int{}
	for _, r := range recipes {
		seen := map[string]bool{}
		for _, ing := range r.Ingredients {
			term := strings.ToLower(strings.TrimSpace(ing))
			if term == "" || seen[term] {
				continue
			}
			seen[term] = true
			counts[term]++
		}
	}

	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if limit > 0 && len(terms) > limit {
		terms = terms[:limit]
	}
	for i, t := range terms {
		terms[i] = titleCase(t)
	}
	return terms
}

func sortedFacet(counts map[string]int) []FacetValue {
	out := make([]FacetValue, 0, len(counts))
	for v, c := range counts {
		out = append(out, FacetValue{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
