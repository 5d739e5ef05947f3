package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/foodfight/backend/internal/catalog"
)

func newSearchCommand(opts *options) *cobra.Command {
	var category, method, cuisine []string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search recipes, grouped into chapters",
		Long: `Search matches the query against name, cuisine, category, content
preview and ingredients. Filters take repeated flags or comma lists;
"all" lifts a filter.

Examples:
  catalog search miso
  catalog search egg --cuisine Japanese --cuisine French
  catalog search --category Soup,Pasta --method Roasted`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Criteria{
				Category: catalog.Selection(category),
				Method:   catalog.Selection(method),
				Cuisine:  catalog.Selection(cuisine),
			}
			if len(args) == 1 {
				c.Query = args[0]
			}
			res := opts.catalog.Search(c)

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, res)
			}
			if res.Total() == 0 {
				fmt.Fprintln(out, "No recipes found.")
				return nil
			}

			t := newTable(out, []string{"#", "Chapter", "Key", "Recipe", "Cuisine", "Method", "Matched"})
			for i, ch := range res.Chapters {
				for _, r := range ch.Recipes {
					t.addRow(
						strconv.Itoa(i+1),
						ch.Name,
						r.Key,
						r.Name,
						r.Cuisine,
						r.Method,
						strings.Join(catalog.MatchedIngredients(r, c.Query), ", "),
					)
				}
			}
			if err := t.render(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d of %d recipes in %d chapters\n", res.Total(), opts.catalog.Total(), len(res.Chapters))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&category, "category", nil, "filter by category")
	cmd.Flags().StringSliceVar(&method, "method", nil, "filter by cooking method")
	cmd.Flags().StringSliceVar(&cuisine, "cuisine", nil, "filter by cuisine")
	return cmd
}
