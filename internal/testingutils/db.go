package testingutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/foodfight/backend/internal/database"
	"github.com/pageza/foodfight/backend/internal/model"
)

// SetupTestDatabase opens a sqlite database in a temp dir holding raws and
// returns it with its DSN. The database is closed when the test ends.
func SetupTestDatabase(t *testing.T, raws []model.RawRecipe) (*gorm.DB, string) {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "recipes.db")
	db, err := database.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, database.ImportRecipes(db, raws, 100))
	return db, dsn
}

// WriteDataset writes a JSON dataset file in a temp dir and returns its path
func WriteDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe_database.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
