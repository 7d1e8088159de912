package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resignly/pkg/catalog"
)

func newTemplatesCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"tpl"},
		Short:   "Browse the letter templates",
	}
	cmd.AddCommand(newTemplatesListCommand(c), newTemplatesShowCommand(c))
	return cmd
}

func newTemplatesListCommand(c *cli) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates, optionally filtered by category and search text",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cat, err := catalog.ParseCategory(category)
			if err != nil {
				return fmt.Errorf("%w: %q (use one of %v)", err, category, catalog.Categories())
			}

			found := catalog.Filter(cat, search)
			if len(found) == 0 {
				fmt.Fprintln(c.out, "No templates match your filters.")
				return nil
			}

			w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
			for _, t := range found {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Name, t.Category.Label())
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category filter (standard, immediate, career-change, retirement, personal)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive search in name and description")
	return cmd
}

func newTemplatesShowCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a template and its sample preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := catalog.Get(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}
			fmt.Fprintf(c.out, "%s (%s)\n%s\n\n%s\n", t.Name, t.Category.Label(), t.Description, t.Preview)
			return nil
		},
	}
}
