package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/foodfight/backend/internal/model"
)

func TestLinkTemplatesBuild(t *testing.T) {
	tests := []struct {
		name   string
		recipe model.Recipe
		want   string
		ok     bool
	}{
		{
			name:   "google doc",
			recipe: model.Recipe{FileID: "abc123", FileType: "Google Doc"},
			want:   "https://docs.google.com/document/d/abc123/edit",
			ok:     true,
		},
		{
			name:   "pdf",
			recipe: model.Recipe{FileID: "abc123", FileType: "PDF"},
			want:   "https://drive.google.com/file/d/abc123/view",
			ok:     true,
		},
		{
			name:   "missing type",
			recipe: model.Recipe{FileID: "abc123"},
			want:   "https://drive.google.com/file/d/abc123/view",
			ok:     true,
		},
		{
			name:   "no file id",
			recipe: model.Recipe{ID: "abc123", FileType: "Google Doc"},
			ok:     false,
		},
		{
			name:   "escaped id",
			recipe: model.Recipe{FileID: "a b/c"},
			want:   "https://drive.google.com/file/d/a%20b%2Fc/view",
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DefaultLinkTemplates.Build(tt.recipe)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinkTemplatesCustom(t *testing.T) {
	links := LinkTemplates{
		Document:     "https://docs.example.com/{id}",
		File:         "https://files.example.com/{id}?view=1",
		DocumentType: "Doc",
	}

	got, ok := links.Build(model.Recipe{FileID: "x1", FileType: "Doc"})
	assert.True(t, ok)
	assert.Equal(t, "https://docs.example.com/x1", got)
}
