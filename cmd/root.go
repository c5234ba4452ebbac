package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thisguymartin/steep/internal/config"
	"github.com/thisguymartin/steep/internal/palette"
	"github.com/thisguymartin/steep/internal/render"
	"github.com/thisguymartin/steep/internal/tui"
)

const Version = "0.1.0"

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var flavour palette.Flavour

	rootCmd := &cobra.Command{
		Use:   "steep <template> <flavour>",
		Short: "Render a template with Catppuccin colours",
		Long: `steep renders a Handlebars template against one of the four Catppuccin
flavours and prints the result to stdout.

Every palette colour is available as a six-digit uppercase hex string
without a leading '#'. red1/red2 and green1/green2 are red and green
blended 20% and 40% toward base. {{titlecase flavour}} prints the flavour
name title-cased.

Referencing a name that does not exist is an error.

Flavours: ` + strings.Join(palette.Slugs(), ", "),
		Example: `  # Render a kitty theme with Mocha
  steep kitty.conf.hbs mocha > mocha.conf

  # Choose the flavour interactively
  steep --pick kitty.conf.hbs

  # List the placeholders a template can use
  steep fields`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if cfg.PickFlavour {
				if len(args) != 1 {
					return usageErrorf("with --pick, expected 1 argument (template), got %d", len(args))
				}
				cfg.TemplateFile = args[0]
				return nil
			}
			if len(args) != 2 {
				return usageErrorf("expected 2 arguments (template, flavour), got %d", len(args))
			}
			f, err := palette.ParseFlavour(args[1])
			if err != nil {
				return &usageError{err: err}
			}
			cfg.TemplateFile, cfg.Flavour, flavour = args[0], args[1], f
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 && !cfg.PickFlavour {
				return palette.Slugs(), cobra.ShellCompDirectiveNoFileComp
			}
			if len(args) == 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := render.LoadTemplate(cfg.TemplateFile)
			if err != nil {
				return err
			}

			if cfg.PickFlavour {
				flavour, err = tui.PickFlavour()
				if err != nil {
					return err
				}
			}

			out, err := render.New().Render(text, palette.Build(flavour))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&cfg.PickFlavour, "pick", false,
		"Choose the flavour from an interactive list (needs a terminal)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.AddCommand(newFlavoursCmd(), newFieldsCmd())
	return rootCmd
}

// usageError marks a bad invocation; execute follows it with the usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// usageArgs wraps a cobra positional-args validator so its failures print usage.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// Execute is the entry point called by main.
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		tui.PrintError(stderr, err)
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprint(stderr, "\n"+cmd.UsageString())
		}
		return 1
	}
	return 0
}
