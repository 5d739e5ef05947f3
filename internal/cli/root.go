// Package cli implements the catalog command line tool: the same searches
// the API serves, run against a dataset from the terminal.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/foodfight/backend/config"
	"github.com/pageza/foodfight/backend/internal/dataset"
	"github.com/pageza/foodfight/backend/internal/logger"
	"github.com/pageza/foodfight/backend/internal/service"
)

type options struct {
	dataset    string
	profile    string
	region     string
	jsonOutput bool
	verbose    bool

	catalog *service.CatalogService
}

// NewRootCommand builds the catalog command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the recipe catalog",
		Long: `catalog searches a recipe dataset the way the web directory does.

Example usage:
  catalog search miso                       # Free text search
  catalog search --category Soup,Pasta      # Multi-select a filter axis
  catalog featured                          # Today's champion recipe
  catalog facets                            # Filter options with counts
  catalog link <key>                        # External document link`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&opts.dataset, "dataset", "d", envOr("DATASET_SOURCE", config.DefaultDatasetSource), "dataset: JSON file, s3://bucket/key or database DSN")
	root.PersistentFlags().StringVar(&opts.profile, "profile", envOr("CATALOG_PROFILE", ""), "catalog profile YAML")
	root.PersistentFlags().StringVar(&opts.region, "region", envOr("AWS_REGION", ""), "AWS region for s3 datasets")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newSearchCommand(opts),
		newShowCommand(opts),
		newFeaturedCommand(opts),
		newShortcutsCommand(opts),
		newFacetsCommand(opts),
		newLinkCommand(opts),
	)
	return root
}

func (o *options) load(cmd *cobra.Command) error {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	zl, err := logger.New(logger.Options{Level: level, Console: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	profile, err := config.LoadProfile(o.profile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	src, err := dataset.Open(ctx, o.dataset, o.region)
	if err != nil {
		return fmt.Errorf("opening dataset: %w", err)
	}
	snap, err := dataset.Load(ctx, src, zl)
	if err != nil {
		return err
	}

	zl.Debug("catalog loaded", zap.String("source", snap.Source), zap.Int("recipes", len(snap.Recipes)))
	o.catalog = service.NewCatalogService(snap, profile, nil, 0, zl)
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
