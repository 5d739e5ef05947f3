package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/foodfight/backend/internal/catalog"
)

func newFacetsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "List filter options with recipe counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.catalog.Facets()
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, f)
			}

			t := newTable(out, []string{"Axis", "Value", "Recipes"})
			add := func(axis string, values []catalog.FacetValue) {
				for _, v := range values {
					t.addRow(axis, v.Value, strconv.Itoa(v.Count))
				}
			}
			add("category", f.Categories)
			add("method", f.Methods)
			add("cuisine", f.Cuisines)
			return t.render()
		},
	}
}

func newShortcutsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shortcuts",
		Short: "Print the quick search terms drawn for this load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			terms := opts.catalog.Shortcuts()
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), terms)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(terms, "  "))
			return nil
		},
	}
}
