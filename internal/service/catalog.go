package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/pageza/foodfight/backend/config"
	"github.com/pageza/foodfight/backend/internal/catalog"
	"github.com/pageza/foodfight/backend/internal/dataset"
	"github.com/pageza/foodfight/backend/internal/model"
)

// MaxCachedSearches bounds the number of memoized search results
const MaxCachedSearches = 1024

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNoLink         = errors.New("recipe has no link")
)

// Banner is what the page header currently displays
type Banner struct {
	Total       int    `json:"total"`
	Tagline     string `json:"tagline"`
	Placeholder string `json:"placeholder"`
}

// CatalogService serves a loaded dataset snapshot
type CatalogService struct {
	snapshot  *dataset.Snapshot
	opts      catalog.Options
	links     catalog.LinkTemplates
	byKey     map[string]int
	facets    catalog.Facets
	featured  model.Recipe
	hasPick   bool
	shortcuts []string

	taglines     *catalog.Rotator
	placeholders *catalog.Rotator

	results    *cache.Cache
	maxResults int
	logger     *zap.Logger
}

// Ensure CatalogService implements ICatalogService
var _ ICatalogService = (*CatalogService)(nil)

// NewCatalogService builds the service for snap. The featured recipe and the
// shortcut terms are drawn once here and held for the life of the snapshot.
// A nil picker uses a time-seeded one.
func NewCatalogService(snap *dataset.Snapshot, profile *config.Profile, picker *catalog.Picker, cacheTTL time.Duration, logger *zap.Logger) *CatalogService {
	if profile == nil {
		profile = config.DefaultProfile()
	}
	if picker == nil {
		picker = catalog.NewPicker(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &CatalogService{
		snapshot: snap,
		opts: catalog.Options{
			Fields:       profile.Fields(),
			ChapterOrder: profile.ChapterOrder,
		},
		links:        profile.Links,
		byKey:        make(map[string]int, len(snap.Recipes)),
		facets:       catalog.BuildFacets(snap.Recipes, profile.ChapterOrder),
		taglines:     catalog.NewRotator(profile.Taglines, profile.TaglineInterval),
		placeholders: catalog.NewRotator(profile.Placeholders, profile.PlaceholderInterval),
		logger:       logger,
	}
	for i, r := range snap.Recipes {
		s.byKey[r.Key] = i
	}

	s.featured, s.hasPick = picker.Featured(snap.Recipes)

	candidates := profile.Shortcuts.Terms
	if profile.Shortcuts.Source == config.ShortcutsRanked {
		candidates = catalog.RankIngredients(snap.Recipes, profile.Shortcuts.RankedPool)
	}
	s.shortcuts = picker.Shortcuts(candidates, profile.Shortcuts.Count)

	if cacheTTL > 0 {
		s.results = cache.New(cacheTTL, 2*cacheTTL)
		s.maxResults = MaxCachedSearches
	}

	logger.Info("catalog ready",
		zap.Int("recipes", len(snap.Recipes)),
		zap.Int("chapters", len(s.facets.Categories)),
		zap.Strings("shortcuts", s.shortcuts),
		zap.String("featured", s.featured.Key),
	)
	return s
}

// Search filters the catalog. Results for equivalent criteria are shared
// from the cache while it is enabled. Empty results are not cached and new
// entries are dropped once the cache is full.
func (s *CatalogService) Search(c catalog.Criteria) catalog.Result {
	if s.results == nil {
		return catalog.Filter(s.snapshot.Recipes, c, s.opts)
	}

	key := criteriaKey(c)
	if cached, ok := s.results.Get(key); ok {
		return cached.(catalog.Result)
	}

	result := catalog.Filter(s.snapshot.Recipes, c, s.opts)
	if result.Total() == 0 || s.results.ItemCount() >= s.maxResults {
		return result
	}
	s.results.SetDefault(key, result)
	s.logger.Debug("search cached",
		zap.String("key", key),
		zap.Int("count", result.Total()),
	)
	return result
}

// Recipe returns the recipe stored under key
func (s *CatalogService) Recipe(key string) (model.Recipe, error) {
	i, ok := s.byKey[key]
	if !ok {
		return model.Recipe{}, ErrRecipeNotFound
	}
	return s.snapshot.Recipes[i], nil
}

// Link returns the external document link of a recipe
func (s *CatalogService) Link(key string) (string, error) {
	r, err := s.Recipe(key)
	if err != nil {
		return "", err
	}
	link, ok := s.links.Build(r)
	if !ok {
		return "", ErrNoLink
	}
	return link, nil
}

// LinkFor builds the link of an already resolved recipe
func (s *CatalogService) LinkFor(r model.Recipe) (string, bool) {
	return s.links.Build(r)
}

func (s *CatalogService) Featured() (model.Recipe, bool) {
	return s.featured, s.hasPick
}

func (s *CatalogService) Shortcuts() []string {
	out := make([]string, len(s.shortcuts))
	copy(out, s.shortcuts)
	return out
}

func (s *CatalogService) Facets() catalog.Facets {
	return s.facets
}

func (s *CatalogService) Banner() Banner {
	return Banner{
		Total:       s.Total(),
		Tagline:     s.taglines.Current(),
		Placeholder: s.placeholders.Current(),
	}
}

func (s *CatalogService) Total() int {
	return len(s.snapshot.Recipes)
}

// Source describes where the snapshot was loaded from
func (s *CatalogService) Source() string {
	return s.snapshot.Source
}

// Start runs the banner rotators until ctx is done or Stop is called
func (s *CatalogService) Start(ctx context.Context) {
	s.taglines.Start(ctx)
	s.placeholders.Start(ctx)
}

// Stop halts the banner rotators and waits for them to exit
func (s *CatalogService) Stop() {
	s.taglines.Stop()
	s.placeholders.Stop()
}

// criteriaKey renders criteria canonically: the query and selections are
// case-folded and selections are sorted, as Filter treats them as sets.
// Every value is quoted so no query can spell out another key.
func criteriaKey(c catalog.Criteria) string {
	var b strings.Builder
	b.WriteString("q=")
	b.WriteString(strconv.Quote(strings.ToLower(c.Query)))
	writeSelection(&b, "category", c.Category)
	writeSelection(&b, "method", c.Method)
	writeSelection(&b, "cuisine", c.Cuisine)
	return b.String()
}

func writeSelection(b *strings.Builder, name string, sel catalog.Selection) {
	b.WriteString("|")
	b.WriteString(name)
	b.WriteString("=")
	if !sel.Active() {
		return
	}
	values := make([]string, len(sel))
	for i, v := range sel {
		values[i] = strings.ToLower(strings.TrimSpace(v))
	}
	sort.Strings(values)
	for i, v := range values {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Quote(v))
	}
}
