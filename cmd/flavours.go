package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/thisguymartin/steep/internal/tui"
)

func newFlavoursCmd() *cobra.Command {
	var swatches bool

	cmd := &cobra.Command{
		Use:   "flavours",
		Short: "List the available flavours",
		Long: `Lists the flavour identifiers accepted as the second argument.

With --swatches every template field is drawn as a coloured tile.`,
		Aliases: []string{"flavors"},
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.FlavourList(lipgloss.NewRenderer(out), swatches))
			return nil
		},
	}

	cmd.Flags().BoolVar(&swatches, "swatches", false, "Show every colour of each flavour")
	return cmd
}
