package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/resignly/pkg/config"
	"github.com/dmitrymomot/resignly/pkg/export"
	"github.com/dmitrymomot/resignly/pkg/letter"
	"github.com/dmitrymomot/resignly/pkg/logger"
)

// cli carries the dependencies shared by every command.
type cli struct {
	out        io.Writer
	errOut     io.Writer
	prompter   Prompter
	clipboard  export.ClipboardWriter
	logger     *slog.Logger
	letterOpts []letter.Option
}

// Option configures the command tree.
type Option func(*cli)

// WithOutput redirects standard output and standard error.
func WithOutput(out, errOut io.Writer) Option {
	return func(c *cli) {
		c.out = out
		c.errOut = errOut
	}
}

// WithPrompter replaces the interactive prompts of the wizard.
func WithPrompter(p Prompter) Option {
	return func(c *cli) {
		c.prompter = p
	}
}

// WithClipboard replaces the clipboard used by copy and the wizard.
func WithClipboard(cb export.ClipboardWriter) Option {
	return func(c *cli) {
		c.clipboard = cb
	}
}

// WithLetterOptions pins the clock and location of the offline commands.
// Without it they follow APP_TIMEZONE.
func WithLetterOptions(opts ...letter.Option) Option {
	return func(c *cli) {
		c.letterOpts = opts
	}
}

// NewRootCommand builds the resignly command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	c := &cli{out: os.Stdout, errOut: os.Stderr}
	for _, opt := range opts {
		opt(c)
	}
	if c.prompter == nil {
		c.prompter = surveyPrompter{}
	}
	if c.logger == nil {
		c.logger = logger.NewText(c.errOut, slog.LevelWarn)
	}
	if c.clipboard == nil {
		c.clipboard = export.Fallback{
			Primary: export.SystemClipboard{},
			Legacy:  export.NewOSC52(c.out),
			Logger:  c.logger,
		}
	}

	root := &cobra.Command{
		Use:   "resignly",
		Short: "Resignation letter generator",
		Long: `Resignly writes professional resignation letters from a catalog of templates.

Run the website with "resignly serve", or use the other commands to render
and export letters straight from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.loadLetterOptions()
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.AddCommand(
		newServeCommand(c),
		newTemplatesCommand(c),
		newRenderCommand(c),
		newExportCommand(c),
		newCopyCommand(c),
		newWizardCommand(c),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func (c *cli) loadLetterOptions() error {
	if c.letterOpts != nil {
		return nil
	}
	var cfg AppConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	c.letterOpts = []letter.Option{letter.WithLocation(loc)}
	return nil
}

func (c *cli) exporter() *export.Exporter {
	return export.New(
		export.WithLogger(logger.Component(c.logger, "export")),
		export.WithLetterOptions(c.letterOpts...),
	)
}
