package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resignly/pkg/catalog"
	"github.com/dmitrymomot/resignly/pkg/export"
	"github.com/dmitrymomot/resignly/pkg/letter"
)

// cliScope is the guard scope of terminal exports.
const cliScope = "cli"

func newExportCommand(c *cli) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export <template-id>",
		Short: "Export a letter as PDF, DOCX or plain text",
		Example: `  resignly export standard-resignation --format pdf --out ./letters \
    --name "Jane Doe" --position "Engineer" --company "Acme" \
    --supervisor "Sam Lee" --last-day 2025-03-01`,
		Args: cobra.ExactArgs(1),
	}
	flags := bindLetterFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatPDF), "pdf, docx or txt")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default: current directory)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		f, err := export.ParseFormat(format)
		if err != nil || f == export.FormatCopy {
			return fmt.Errorf("%w: %q (use pdf, docx or txt, or the copy command)", export.ErrUnknownFormat, format)
		}
		tpl, err := lookupTemplate(args[0])
		if err != nil {
			return err
		}
		return c.export(cmd.Context(), tpl, f, flags.Data(c.letterOpts...), out)
	}
	return cmd
}

func newCopyCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <template-id>",
		Short: "Copy a letter to the clipboard",
		Args:  cobra.ExactArgs(1),
	}
	flags := bindLetterFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		tpl, err := lookupTemplate(args[0])
		if err != nil {
			return err
		}
		return c.export(cmd.Context(), tpl, export.FormatCopy, flags.Data(c.letterOpts...), "")
	}
	return cmd
}

func (c *cli) export(ctx context.Context, tpl *catalog.Template, f export.Format, data letter.Data, dir string) error {
	deliverer, err := export.NewFileDeliverer(dir, c.clipboard)
	if err != nil {
		return err
	}

	res, err := c.exporter().Export(ctx, export.Request{
		Template: tpl,
		Scope:    cliScope,
		Format:   f,
		Data:     data,
	}, deliverer)
	if err != nil {
		return explain(c.errOut, err)
	}

	if f == export.FormatCopy {
		fmt.Fprintln(c.out, f.SuccessMessage())
		return nil
	}
	fmt.Fprintf(c.out, "%s\nSaved to %s (%d bytes)\n", f.SuccessMessage(), deliverer.Written, res.Size)
	return nil
}

// explain prints user-facing details of export failures and returns the
// error for the exit status.
func explain(w io.Writer, err error) error {
	var notReady *export.ReadinessError
	if errors.As(err, &notReady) {
		fmt.Fprintln(w, "Your letter is not ready to export:")
		for _, msg := range notReady.Errors {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
		return export.ErrNotReady
	}
	return err
}
