package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRecipeDecodesMalformedFields(t *testing.T) {
	data := `{
		"id": 42,
		"name": null,
		"title": "Miso Ramen",
		"category": {"nested": true},
		"cuisine": ["Japanese"],
		"cooking_method": true,
		"ingredients": ["miso", 3, null, "  noodles  ", {"x": 1}],
		"content_preview": "Rich broth"
	}`

	var raw RawRecipe
	require.NoError(t, json.Unmarshal([]byte(data), &raw))

	assert.Equal(t, "42", raw.ID.String())
	assert.Equal(t, "", raw.Name.String())
	assert.Equal(t, "Miso Ramen", raw.Title.String())
	assert.Equal(t, "", raw.Category.String())
	assert.Equal(t, "", raw.Cuisine.String())
	assert.Equal(t, "true", raw.CookingMethod.String())
	assert.Equal(t, StringList{"miso", "3", "noodles"}, raw.Ingredients)
}

func TestStringListAcceptsBareString(t *testing.T) {
	var raw RawRecipe
	require.NoError(t, json.Unmarshal([]byte(`{"ingredients": "eggs"}`), &raw))
	assert.Equal(t, StringList{"eggs"}, raw.Ingredients)

	require.NoError(t, json.Unmarshal([]byte(`{"ingredients": null}`), &raw))
	assert.Empty(t, raw.Ingredients)
}

func TestStringListSQLRoundTrip(t *testing.T) {
	list := StringList{"miso", "tofu"}
	v, err := list.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, list, scanned)

	empty, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)

	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)
}

func TestNormalizeFallbacks(t *testing.T) {
	r := Normalize(RawRecipe{
		FileID:        "abc123",
		Title:         "Steak Frites",
		Cuisine:       "French",
		CookingMethod: "Unknown",
	}, 0)

	assert.Equal(t, "abc123", r.Key)
	assert.Equal(t, "Steak Frites", r.Name)
	assert.False(t, r.NameMissing)
	assert.Equal(t, UncategorizedName, r.Category)
	assert.True(t, r.CategoryMissing)
	assert.Equal(t, "", r.SearchCategory())
	assert.Equal(t, "French", r.Cuisine)
	assert.Equal(t, "", r.Method)
	assert.NotNil(t, r.Ingredients)
}

func TestNormalizePrefersNameAndCuisineStyle(t *testing.T) {
	r := Normalize(RawRecipe{
		ID:           "r1",
		FileID:       "f1",
		Name:         "Miso Soup",
		Title:        "Ignored",
		CuisineStyle: "Japanese",
		Cuisine:      "Asian",
	}, 3)

	assert.Equal(t, "r1", r.Key)
	assert.Equal(t, "Miso Soup", r.Name)
	assert.Equal(t, "Japanese", r.Cuisine)
}

func TestNormalizeUntitled(t *testing.T) {
	r := Normalize(RawRecipe{Category: "Soup"}, 7)

	assert.Equal(t, UntitledName, r.Name)
	assert.True(t, r.NameMissing)
	assert.Equal(t, "", r.SearchName())
	assert.Equal(t, "recipe-7", r.Key)
}

func TestNormalizeAllMakesKeysUnique(t *testing.T) {
	recipes := NormalizeAll([]RawRecipe{
		{ID: "a", Name: "One"},
		{ID: "a", Name: "Two"},
		{FileID: "a", Name: "Three"},
		{Name: "Four"},
	})

	require.Len(t, recipes, 4)
	assert.Equal(t, "a", recipes[0].Key)
	assert.Equal(t, "a-2", recipes[1].Key)
	assert.Equal(t, "a-3", recipes[2].Key)
	assert.Equal(t, "recipe-3", recipes[3].Key)
	assert.Equal(t, []string{"One", "Two", "Three", "Four"},
		[]string{recipes[0].Name, recipes[1].Name, recipes[2].Name, recipes[3].Name})
}
