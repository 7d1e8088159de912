package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/letter"
)

// letterFlags binds the letter fields to command flags.
type letterFlags struct {
	data letter.Data
}

func bindLetterFlags(cmd *cobra.Command) *letterFlags {
	f := &letterFlags{}
	fs := cmd.Flags()
	fs.StringVar(&f.data.EmployeeName, "name", "", "your full name")
	fs.StringVar(&f.data.EmployeePosition, "position", "", "your current job title")
	fs.StringVar(&f.data.CompanyName, "company", "", "company name")
	fs.StringVar(&f.data.SupervisorName, "supervisor", "", "your supervisor's name")
	fs.StringVar(&f.data.LastWorkingDate, "last-day", "", "last working date (YYYY-MM-DD)")
	fs.StringVar(&f.data.ResignationDate, "date", "", "resignation date (YYYY-MM-DD), defaults to today")
	fs.StringVar(&f.data.Reason, "reason", "", "optional reason for leaving")
	fs.StringVar(&f.data.CustomMessage, "message", "", "optional personal message")
	return f
}

// Data returns the flag values with the resignation date defaulted to today.
func (f *letterFlags) Data(opts ...letter.Option) letter.Data {
	d := f.data
	if d.ResignationDate == "" {
		d.ResignationDate = letter.Today(opts...)
	}
	return d
}

func lookupTemplate(id string) (*catalog.Template, error) {
	t, err := catalog.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (see \"resignly templates list\")", err, id)
	}
	return &t, nil
}

func newRenderCommand(c *cli) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "render <template-id>",
		Short: "Print the letter for a template",
		Long: `Render fills a template with the given details and prints the letter.

Missing fields are shown as placeholders such as [Your Name], the same as
the live preview on the website.`,
		Example: `  resignly render standard-resignation --name "Jane Doe" --company "Acme" --last-day 2025-03-01`,
		Args:    cobra.ExactArgs(1),
	}
	flags := bindLetterFlags(cmd)
	cmd.Flags().BoolVar(&stats, "stats", false, "print word count and reading time")

	cmd.RunE = func(_ *cobra.Command, args []string) error {
		tpl, err := lookupTemplate(args[0])
		if err != nil {
			return err
		}
		text := letter.Render(tpl.Body, flags.Data(c.letterOpts...), c.letterOpts...)
		fmt.Fprintln(c.out, text)

		if stats {
			s := letter.StatsOf(text)
			fmt.Fprintf(c.errOut, "\n%d words, %d characters, %d min read\n", s.Words, s.Characters, s.ReadingTime)
		}
		return nil
	}
	return cmd
}
