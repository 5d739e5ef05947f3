package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/foodfight/backend/internal/model"
)

func setupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("sqlite://" + filepath.Join(t.TempDir(), "recipes.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestIsDSN(t *testing.T) {
	assert.True(t, IsDSN("sqlite:///tmp/recipes.db"))
	assert.True(t, IsDSN("postgres://user:pw@localhost:5432/recipes"))
	assert.True(t, IsDSN("postgresql://localhost/recipes"))
	assert.False(t, IsDSN("data/recipe_database.json"))
	assert.False(t, IsDSN("s3://bucket/key.json"))
}

func TestOpenRejectsUnknownScheme(t *testing.T) {
	_, err := Open("mysql://localhost/recipes")
	assert.Error(t, err)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "postgres://app:xxxxx@db:5432/recipes", Redact("postgres://app:secret@db:5432/recipes"))
	assert.Equal(t, "postgres://db:5432/recipes", Redact("postgres://db:5432/recipes"))
	assert.Equal(t, "sqlite:///tmp/recipes.db", Redact("sqlite:///tmp/recipes.db"))
}

func TestImportRecipes(t *testing.T) {
	db := setupTestDatabase(t)

	raws := []model.RawRecipe{
		{Name: "Pancakes", Category: "Breakfasty", Ingredients: model.StringList{"flour", "egg"}},
		{Title: "Risotto", Category: "Rice-Pulses"},
		{Name: "Tiramisu", Category: "Dessert-Baking", FileID: "doc-1", FileType: "Google Doc"},
	}
	require.NoError(t, ImportRecipes(db, raws, 2))

	var rows []model.RawRecipe
	require.NoError(t, db.Order("row_id ASC").Find(&rows).Error)
	require.Len(t, rows, 3)
	assert.Equal(t, uint(1), rows[0].RowID)
	assert.Equal(t, model.StringList{"flour", "egg"}, rows[0].Ingredients)
	assert.Equal(t, "Risotto", rows[1].Title.String())
	assert.Empty(t, rows[1].Ingredients)
	assert.Equal(t, "doc-1", rows[2].FileID.String())

	// the caller's slice is untouched
	assert.Zero(t, raws[0].RowID)
}

func TestImportRecipesReplacesTable(t *testing.T) {
	db := setupTestDatabase(t)

	require.NoError(t, ImportRecipes(db, []model.RawRecipe{{Name: "A"}, {Name: "B"}}, 10))
	require.NoError(t, ImportRecipes(db, []model.RawRecipe{{Name: "C"}}, 10))

	var count int64
	require.NoError(t, db.Model(&model.RawRecipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, ImportRecipes(db, nil, 10))
	require.NoError(t, db.Model(&model.RawRecipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestImportRecipesDefaultsBatchSize(t *testing.T) {
	for _, batch := range []int{0, -3} {
		db := setupTestDatabase(t)

		done := make(chan error, 1)
		go func() {
			done <- ImportRecipes(db, []model.RawRecipe{{Name: "A"}, {Name: "B"}, {Name: "C"}}, batch)
		}()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatalf("import with batch %d did not finish", batch)
		}

		var count int64
		require.NoError(t, db.Model(&model.RawRecipe{}).Count(&count).Error)
		assert.Equal(t, int64(3), count)
	}
}
