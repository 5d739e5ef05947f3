package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/foodfight/backend/internal/catalog"
	"github.com/pageza/foodfight/backend/internal/middleware"
	"github.com/pageza/foodfight/backend/internal/service"
)

// CatalogHandler serves the read-only recipe catalog
type CatalogHandler struct {
	catalog service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// RegisterRoutes mounts the catalog routes. limit, when not nil, guards the
// search and detail endpoints.
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	reads := []gin.HandlerFunc{}
	if limit != nil {
		reads = append(reads, limit)
	}

	recipes := router.Group("/recipes", reads...)
	{
		recipes.GET("", h.SearchRecipes)
		recipes.GET("/:key", h.GetRecipe)
		recipes.GET("/:key/view", h.ViewRecipe)
	}
	router.GET("/featured", h.GetFeatured)
	router.GET("/shortcuts", h.GetShortcuts)
	router.GET("/facets", h.GetFacets)
	router.GET("/banner", h.GetBanner)
}

// SearchRecipes filters the catalog by free text and the category, method
// and cuisine axes. Axis values may repeat or be comma separated.
func (h *CatalogHandler) SearchRecipes(c *gin.Context) {
	criteria := catalog.Criteria{
		Query:    c.Query("q"),
		Category: selectionParam(c, "category"),
		Method:   selectionParam(c, "method"),
		Cuisine:  selectionParam(c, "cuisine"),
	}

	res := h.catalog.Search(criteria)
	c.JSON(http.StatusOK, h.toSearchResponse(criteria.Query, res))
}

func (h *CatalogHandler) GetRecipe(c *gin.Context) {
	r, err := h.catalog.Recipe(c.Param("key"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": h.toRecipeResponse(r)})
}

// ViewRecipe redirects to the recipe's external document
func (h *CatalogHandler) ViewRecipe(c *gin.Context) {
	link, err := h.catalog.Link(c.Param("key"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, link)
}

func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	r, ok := h.catalog.Featured()
	if !ok {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "catalog is empty"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": h.toRecipeResponse(r)})
}

func (h *CatalogHandler) GetShortcuts(c *gin.Context) {
	c.JSON(http.StatusOK, ShortcutsResponse{Shortcuts: h.catalog.Shortcuts()})
}

func (h *CatalogHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, FacetsResponse{Facets: h.catalog.Facets(), All: catalog.All})
}

func (h *CatalogHandler) GetBanner(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Banner())
}

func (h *CatalogHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoLink):
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "no link"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: "Internal Server Error"})
	}
}

func selectionParam(c *gin.Context, name string) catalog.Selection {
	var sel catalog.Selection
	for _, v := range c.QueryArray(name) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				sel = append(sel, part)
			}
		}
	}
	return sel
}
