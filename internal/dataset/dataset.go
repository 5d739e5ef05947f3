// Package dataset loads the static recipe collection once at startup and
// turns it into an immutable, normalized snapshot.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/foodfight/backend/internal/model"
)

// Source supplies the raw records of a dataset
type Source interface {
	// Load returns the records in dataset order and the number of elements skipped
	Load(ctx context.Context) ([]model.RawRecipe, int, error)
	// String describes the source for logs
	String() string
}

// Snapshot is a loaded, normalized dataset. It must not be modified.
type Snapshot struct {
	Recipes  []model.Recipe
	Source   string
	LoadedAt time.Time
	Skipped  int
}

// Load reads src and normalizes every record once
func Load(ctx context.Context, src Source, logger *zap.Logger) (*Snapshot, error) {
	start := time.Now()
	raws, skipped, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset from %s: %w", src, err)
	}

	snap := &Snapshot{
		Recipes:  model.NormalizeAll(raws),
		Source:   src.String(),
		LoadedAt: time.Now(),
		Skipped:  skipped,
	}

	if skipped > 0 {
		logger.Warn("skipped malformed dataset records",
			zap.String("source", snap.Source),
			zap.Int("skipped", skipped),
		)
	}
	logger.Info("dataset loaded",
		zap.String("source", snap.Source),
		zap.Int("recipes", len(snap.Recipes)),
		zap.Duration("took", time.Since(start)),
	)
	return snap, nil
}

// DecodeJSON decodes a JSON array of recipe objects. Elements that are not
// objects are skipped and counted.
func DecodeJSON(r io.Reader) ([]model.RawRecipe, int, error) {
	var elems []json.RawMessage
	if err := json.NewDecoder(r).Decode(&elems); err != nil {
		return nil, 0, fmt.Errorf("dataset is not a JSON array: %w", err)
	}

	raws := make([]model.RawRecipe, 0, len(elems))
	skipped := 0
	for _, e := range elems {
		var raw model.RawRecipe
		if len(e) == 0 || e[0] != '{' {
			skipped++
			continue
		}
		if err := json.Unmarshal(e, &raw); err != nil {
			skipped++
			continue
		}
		raws = append(raws, raw)
	}
	return raws, skipped, nil
}
