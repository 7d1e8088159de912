package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/export"
	"github.com/dmitrymomot/resignly/pkg/letter"
)

var fieldHelp = map[letter.Field]string{
	letter.FieldEmployeeName:     "Your full name as it should appear in the signature",
	letter.FieldEmployeePosition: "Your current job title",
	letter.FieldSupervisorName:   "The person the letter is addressed to",
	letter.FieldLastWorkingDate:  "YYYY-MM-DD, must be after today",
	letter.FieldResignationDate:  "YYYY-MM-DD, the date printed on the letter",
	letter.FieldReason:           "Optional. Leave empty to skip the sentence",
	letter.FieldCustomMessage:    "Optional. Added as its own paragraph",
}

func newWizardCommand(c *cli) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "new",
		Aliases: []string{"wizard"},
		Short:   "Write a letter step by step",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := c.wizard(cmd.Context(), out)
			if errors.Is(err, ErrAborted) {
				fmt.Fprintln(c.errOut, "Aborted.")
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory for downloads (default: current directory)")
	return cmd
}

func (c *cli) wizard(ctx context.Context, dir string) error {
	templates := catalog.All()
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = fmt.Sprintf("%s (%s)", t.Name, t.Category.Label())
	}
	i, err := c.prompter.Select(ctx, "Choose a template", names)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(templates) {
		return catalog.ErrTemplateNotFound
	}
	tpl := templates[i]

	data := letter.NewData(c.letterOpts...)
	for _, f := range letter.Fields {
		answer, err := c.prompter.Ask(ctx, Question{
			Message:   f.Label(),
			Default:   data.Get(f),
			Help:      fieldHelp[f],
			Multiline: f == letter.FieldCustomMessage,
			Validate:  c.fieldValidator(f),
		})
		if err != nil {
			return err
		}
		data.Set(f, answer)
	}

	fmt.Fprintf(c.out, "\n%s\n\n", letter.Render(tpl.Body, data, c.letterOpts...))

	formats := export.Formats()
	labels := make([]string, len(formats)+1)
	for i, f := range formats {
		labels[i] = f.Label()
	}
	labels[len(formats)] = "Done, do not export"

	choice, err := c.prompter.Select(ctx, "Export your letter", labels)
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(formats) {
		return nil
	}
	return c.export(ctx, &tpl, formats[choice], data, dir)
}

// fieldValidator applies the field rules and, for the last working date,
// the future-date check.
func (c *cli) fieldValidator(f letter.Field) func(string) error {
	return func(value string) error {
		msg := letter.ValidateField(f, value)
		if msg == "" && f == letter.FieldLastWorkingDate {
			var d letter.Data
			d.Set(f, value)
			msg = letter.ValidateForm(d, c.letterOpts...).Message(f)
		}
		if msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}
