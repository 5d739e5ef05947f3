package dataset

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/foodfight/backend/internal/database"
	"github.com/pageza/foodfight/backend/internal/model"
)

const sampleJSON = `[
	{"id": "r1", "name": "Miso Ramen", "category": "Soup", "ingredients": ["miso", "noodles"]},
	"not a recipe",
	{"file_id": "abc123", "title": "Steak Frites", "category": "Meat", "file_type": "Google Doc"},
	42,
	{"name": "Miso Soup", "category": "Soup", "ingredients": ["miso", "tofu"], "cooking_method": "Unknown"}
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe_database.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDecodeJSONSkipsNonObjects(t *testing.T) {
	raws, skipped, err := DecodeJSON(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, 2, skipped)
	require.Len(t, raws, 3)
	assert.Equal(t, "Miso Ramen", raws[0].Name.String())
	assert.Equal(t, "abc123", raws[1].FileID.String())
}

func TestDecodeJSONRejectsNonArray(t *testing.T) {
	_, _, err := DecodeJSON(strings.NewReader(`{"recipes": []}`))
	assert.Error(t, err)
}

func TestLoadFileSource(t *testing.T) {
	src := &FileSource{Path: writeDataset(t, sampleJSON)}

	snap, err := Load(context.Background(), src, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, snap.Skipped)
	require.Len(t, snap.Recipes, 3)
	assert.Equal(t, []string{"r1", "abc123", "recipe-2"},
		[]string{snap.Recipes[0].Key, snap.Recipes[1].Key, snap.Recipes[2].Key})
	assert.Equal(t, "", snap.Recipes[2].Method)
	assert.True(t, strings.HasPrefix(snap.Source, "file:"))
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), &FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}, zap.NewNop())
	assert.Error(t, err)
}

type fakeObjects struct {
	body string
	err  error
	got  string
}

func (f *fakeObjects) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	f.got = bucket + "/" + key
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.body)), nil
}

func TestS3Source(t *testing.T) {
	objects := &fakeObjects{body: sampleJSON}
	src := &S3Source{Client: objects, Bucket: "recipes", Key: "exports/recipe_database.json"}

	raws, skipped, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, raws, 3)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, "recipes/exports/recipe_database.json", objects.got)
	assert.Equal(t, "s3://recipes/exports/recipe_database.json", src.String())

	objects.err = errors.New("access denied")
	_, _, err = src.Load(context.Background())
	assert.Error(t, err)
}

func TestSQLSourceKeepsImportOrder(t *testing.T) {
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "recipes.db")
	db, err := database.Open(dsn)
	require.NoError(t, err)

	raws, _, err := DecodeJSON(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.NoError(t, database.ImportRecipes(db, raws, 2))
	// a second import replaces the first
	require.NoError(t, database.ImportRecipes(db, raws, 2))

	snap, err := Load(context.Background(), &SQLSource{DB: db, Name: dsn}, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, snap.Recipes, 3)
	assert.Equal(t, []string{"Miso Ramen", "Steak Frites", "Miso Soup"},
		[]string{snap.Recipes[0].Name, snap.Recipes[1].Name, snap.Recipes[2].Name})
	assert.Equal(t, []string{"miso", "tofu"}, snap.Recipes[2].Ingredients)
	assert.Equal(t, "Google Doc", snap.Recipes[1].FileType)

	// the pool is released once the table has been read
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}

func TestOpenPicksSource(t *testing.T) {
	ctx := context.Background()

	src, err := Open(ctx, "data/recipe_database.json", "")
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	src, err = Open(ctx, "file:///srv/recipes.json", "")
	require.NoError(t, err)
	assert.Equal(t, "/srv/recipes.json", src.(*FileSource).Path)

	src, err = Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "recipes.db"), "")
	require.NoError(t, err)
	assert.IsType(t, &SQLSource{}, src)

	_, err = Open(ctx, "s3://bucket-only", "us-east-1")
	assert.Error(t, err)

	src, err = Open(ctx, "s3://recipes/recipe_database.json", "us-east-1")
	require.NoError(t, err)
	assert.IsType(t, &S3Source{}, src)
}

func TestNormalizedSnapshotIsSearchableShape(t *testing.T) {
	snap, err := Load(context.Background(), &FileSource{Path: writeDataset(t, `[{"category": "Soup"}]`)}, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, snap.Recipes, 1)
	assert.Equal(t, model.UntitledName, snap.Recipes[0].Name)
	assert.NotNil(t, snap.Recipes[0].Ingredients)
}
