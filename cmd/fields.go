package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thisguymartin/steep/internal/palette"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields [flavour]",
		Short: "List the placeholders available to templates",
		Long: `Prints every placeholder name, one per line. Given a flavour, each name
is followed by the value it renders to.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return palette.Slugs(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range palette.Fields() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			f, err := palette.ParseFlavour(args[0])
			if err != nil {
				return &usageError{err: err}
			}
			values := palette.Build(f).Map()
			for _, name := range palette.Fields() {
				fmt.Fprintf(out, "%-9s %s\n", name, values[name])
			}
			return nil
		},
	}
}
