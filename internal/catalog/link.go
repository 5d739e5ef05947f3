package catalog

import (
	"net/url"
	"strings"

	"github.com/pageza/foodfight/backend/internal/model"
)

// IDPlaceholder is replaced by the file identifier in link templates
const IDPlaceholder = "{id}"

// LinkTemplates selects the external viewing URL for a recipe
type LinkTemplates struct {
	Document     string `yaml:"document"`
	File         string `yaml:"file"`
	DocumentType string `yaml:"document_type"`
}

// DefaultLinkTemplates point at Google Docs and Google Drive
var DefaultLinkTemplates = LinkTemplates{
	Document:     "https://docs.google.com/document/d/{id}/edit",
	File:         "https://drive.google.com/file/d/{id}/view",
	DocumentType: "Google Doc",
}

// Build returns the viewing URL for r. Recipes without a file id have none.
func (t LinkTemplates) Build(r model.Recipe) (string, bool) {
	if r.FileID == "" {
		return "", false
	}

	tmpl := t.File
	if r.FileType == t.DocumentType {
		tmpl = t.Document
	}
	return strings.ReplaceAll(tmpl, IDPlaceholder, url.PathEscape(r.FileID)), true
}
