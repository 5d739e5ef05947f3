package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/foodfight/backend/internal/model"
)

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.catalog.Recipe(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return opts.printRecipe(cmd.OutOrStdout(), r)
		},
	}
}

func newFeaturedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "Show a randomly drawn champion recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := opts.catalog.Featured()
			if !ok {
				return fmt.Errorf("the catalog is empty")
			}
			return opts.printRecipe(cmd.OutOrStdout(), r)
		},
	}
}

func newLinkCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "link <key>",
		Short: "Print the external document link of a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := opts.catalog.Link(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
}

func (o *options) printRecipe(w io.Writer, r model.Recipe) error {
	link, _ := o.catalog.LinkFor(r)
	if o.jsonOutput {
		return writeJSON(w, struct {
			model.Recipe
			Link string `json:"link,omitempty"`
		}{r, link})
	}

	t := newTable(w, []string{"Field", "Value"})
	t.addRow("Key", r.Key)
	t.addRow("Name", r.Name)
	t.addRow("Category", r.Category)
	t.addRow("Cuisine", r.Cuisine)
	t.addRow("Method", r.Method)
	t.addRow("Ingredients", strings.Join(r.Ingredients, ", "))
	t.addRow("Link", link)
	return t.render()
}
