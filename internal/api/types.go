package api

import (
	"github.com/pageza/foodfight/backend/internal/catalog"
	"github.com/pageza/foodfight/backend/internal/model"
)

// RecipeResponse represents the response structure for recipe-related API endpoints
type RecipeResponse struct {
	Key                string   `json:"key"`
	Name               string   `json:"name"`
	Category           string   `json:"category"`
	Cuisine            string   `json:"cuisine,omitempty"`
	Method             string   `json:"cooking_method,omitempty"`
	Ingredients        []string `json:"ingredients"`
	ContentPreview     string   `json:"content_preview,omitempty"`
	FileType           string   `json:"file_type,omitempty"`
	Link               string   `json:"link,omitempty"`
	MatchedIngredients []string `json:"matched_ingredients,omitempty"`
}

// ChapterResponse is one numbered category section of a search
type ChapterResponse struct {
	Number  int              `json:"number"`
	Name    string           `json:"name"`
	Count   int              `json:"count"`
	Recipes []RecipeResponse `json:"recipes"`
}

// SearchResponse is the grouped result of a catalog search
type SearchResponse struct {
	Query    string            `json:"query"`
	Total    int               `json:"total"`
	Count    int               `json:"count"`
	Chapters []ChapterResponse `json:"chapters"`
}

// HealthResponse reports the loaded dataset
type HealthResponse struct {
	Status  string `json:"status"`
	Recipes int    `json:"recipes"`
	Source  string `json:"source"`
}

// ShortcutsResponse lists the quick search terms
type ShortcutsResponse struct {
	Shortcuts []string `json:"shortcuts"`
}

// FacetsResponse lists the options of each filter axis
type FacetsResponse struct {
	catalog.Facets
	All string `json:"all"`
}

func (h *CatalogHandler) toRecipeResponse(r model.Recipe) RecipeResponse {
	resp := RecipeResponse{
		Key:            r.Key,
		Name:           r.Name,
		Category:       r.Category,
		Cuisine:        r.Cuisine,
		Method:         r.Method,
		Ingredients:    r.Ingredients,
		ContentPreview: r.ContentPreview,
		FileType:       r.FileType,
	}
	if resp.Ingredients == nil {
		resp.Ingredients = []string{}
	}
	if link, ok := h.catalog.LinkFor(r); ok {
		resp.Link = link
	}
	return resp
}

func (h *CatalogHandler) toSearchResponse(query string, res catalog.Result) SearchResponse {
	resp := SearchResponse{
		Query:    query,
		Total:    h.catalog.Total(),
		Count:    res.Total(),
		Chapters: make([]ChapterResponse, 0, len(res.Chapters)),
	}
	for i, ch := range res.Chapters {
		chapter := ChapterResponse{
			Number:  i + 1,
			Name:    ch.Name,
			Count:   len(ch.Recipes),
			Recipes: make([]RecipeResponse, 0, len(ch.Recipes)),
		}
		for _, r := range ch.Recipes {
			rr := h.toRecipeResponse(r)
			if query != "" {
				rr.MatchedIngredients = catalog.MatchedIngredients(r, query)
			}
			chapter.Recipes = append(chapter.Recipes, rr)
		}
		resp.Chapters = append(resp.Chapters, chapter)
	}
	return resp
}
