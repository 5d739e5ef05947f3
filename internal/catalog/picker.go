package catalog

import (
	"math/rand/v2"
	"time"

	"github.com/pageza/foodfight/backend/internal/model"
)

// Picker draws the per-load random picks: the featured recipe and the quick
// shortcut terms. It is not safe for concurrent use.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a Picker over rng, or a time-seeded one when rng is nil
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Picker{rng: rng}
}

// Featured returns one recipe drawn uniformly from recipes
func (p *Picker) Featured(recipes []model.Recipe) (model.Recipe, bool) {
	if len(recipes) == 0 {
		return model.Recipe{}, false
	}
	return recipes[p.rng.IntN(len(recipes))], true
}

// Shortcuts samples n distinct candidates. With fewer than n candidates it
// returns all of them shuffled. The candidates slice is not modified.
func (p *Picker) Shortcuts(candidates []string, n int) []string {
	if n <= 0 || len(candidates) == 0 {
		return []string{}
	}

	seen := make(map[string]bool, len(candidates))
	pool := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" && !seen[c] {
			seen[c] = true
			pool = append(pool, c)
		}
	}

	p.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}
