package service

import (
	"context"

	"github.com/pageza/foodfight/backend/internal/catalog"
	"github.com/pageza/foodfight/backend/internal/model"
)

// ICatalogService defines the interface for catalog read operations
type ICatalogService interface {
	Search(c catalog.Criteria) catalog.Result
	Recipe(key string) (model.Recipe, error)
	Link(key string) (string, error)
	LinkFor(r model.Recipe) (string, bool)
	Featured() (model.Recipe, bool)
	Shortcuts() []string
	Facets() catalog.Facets
	Banner() Banner
	Total() int
	Source() string
	Start(ctx context.Context)
	Stop()
}
