package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pageza/foodfight/backend/internal/catalog"
)

const (
	ShortcutsFixed  = "fixed"
	ShortcutsRanked = "ranked"
)

// ShortcutProfile controls how quick shortcut terms are chosen
type ShortcutProfile struct {
	// Source is "fixed" (sample Terms) or "ranked" (sample the most common ingredients)
	Source string   `yaml:"source"`
	Count  int      `yaml:"count"`
	Terms  []string `yaml:"terms"`
	// RankedPool bounds the frequency-ranked candidate list
	RankedPool int `yaml:"ranked_pool"`
}

// Profile is the curated presentation of a catalog
type Profile struct {
	ChapterOrder        []string              `yaml:"chapter_order"`
	SearchFields        []string              `yaml:"search_fields"`
	Shortcuts           ShortcutProfile       `yaml:"shortcuts"`
	Taglines            []string              `yaml:"taglines"`
	TaglineInterval     time.Duration         `yaml:"tagline_interval"`
	Placeholders        []string              `yaml:"placeholders"`
	PlaceholderInterval time.Duration         `yaml:"placeholder_interval"`
	Links               catalog.LinkTemplates `yaml:"links"`
}

// DefaultProfile returns the house profile
func DefaultProfile() *Profile {
	return &Profile{
		ChapterOrder: []string{
			"Breakfasty",
			"Vegetables",
			"Salad",
			"Pasta",
			"Pizza",
			"Rice-Pulses",
			"Soup",
			"Seafood",
			"Poultry",
			"Meat",
			"Dessert-Baking",
			"Condiments",
			"Cocktails/Spirits",
		},
		SearchFields: []string{"name", "cuisine", "category", "content", "ingredients"},
		Shortcuts: ShortcutProfile{
			Source: ShortcutsFixed,
			Count:  4,
			Terms: []string{
				"Chicken", "Beef", "Pork", "Salmon", "Shrimp", "Tofu",
				"Lamb", "Clams", "Eggs", "Ginger", "Lemon",
				"Pasta", "Rice", "Noodles", "Pizza", "Pancakes", "Potato",
				"Tomato", "Mushroom", "Spinach", "Broccoli", "Carrot",
				"Cauliflower", "Zucchini", "Bok Choy", "Squash",
				"Cheese", "Miso", "Chocolate", "Strawberries",
			},
			RankedPool: 30,
		},
		Taglines: []string{
			"Recipes Ready to Rumble",
			"Where Flavor Throws the First Punch",
			"Your Kitchen. Your Ring.",
			"No Recipe Left Standing",
			"Knockout Dishes Only",
		},
		TaglineInterval: 3 * time.Second,
		Placeholders: []string{
			"Search for 'chocolate'...",
			"Try 'Japanese'...",
			"Looking for 'eggs'...",
			"Craving 'pasta'...",
			"How about 'chicken'...",
		},
		PlaceholderInterval: 2500 * time.Millisecond,
		Links:               catalog.DefaultLinkTemplates,
	}
}

// LoadProfile reads a YAML profile over the defaults. An empty path yields the defaults.
func LoadProfile(path string) (*Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog profile: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog profile %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog profile %s: %w", path, err)
	}
	return p, nil
}

// Fields returns the parsed search field set
func (p *Profile) Fields() []catalog.Field {
	fields, err := catalog.ParseFields(p.SearchFields)
	if err != nil {
		return catalog.DefaultFields
	}
	return fields
}

// Validate checks the profile for values the catalog cannot use
func (p *Profile) Validate() error {
	var errs []error

	if _, err := catalog.ParseFields(p.SearchFields); err != nil {
		errs = append(errs, ValidationError{Field: "search_fields", Message: err.Error()})
	}

	switch p.Shortcuts.Source {
	case ShortcutsFixed:
		if p.Shortcuts.Count > 0 && len(p.Shortcuts.Terms) == 0 {
			errs = append(errs, ValidationError{Field: "shortcuts.terms", Message: "required for fixed shortcuts"})
		}
	case ShortcutsRanked:
		if p.Shortcuts.RankedPool <= 0 {
			errs = append(errs, ValidationError{Field: "shortcuts.ranked_pool", Message: "must be positive"})
		}
	default:
		errs = append(errs, ValidationError{Field: "shortcuts.source", Message: fmt.Sprintf("unknown source %q", p.Shortcuts.Source)})
	}
	if p.Shortcuts.Count < 0 {
		errs = append(errs, ValidationError{Field: "shortcuts.count", Message: "must not be negative"})
	}

	if len(p.Taglines) > 1 && p.TaglineInterval <= 0 {
		errs = append(errs, ValidationError{Field: "tagline_interval", Message: "must be positive"})
	}
	if len(p.Placeholders) > 1 && p.PlaceholderInterval <= 0 {
		errs = append(errs, ValidationError{Field: "placeholder_interval", Message: "must be positive"})
	}

	if !strings.Contains(p.Links.Document, catalog.IDPlaceholder) {
		errs = append(errs, ValidationError{Field: "links.document", Message: "must contain " + catalog.IDPlaceholder})
	}
	if !strings.Contains(p.Links.File, catalog.IDPlaceholder) {
		errs = append(errs, ValidationError{Field: "links.file", Message: "must contain " + catalog.IDPlaceholder})
	}

	return errors.Join(errs...)
}
