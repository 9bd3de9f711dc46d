package cmd

import (
	"fmt"

	"github.com/sidarora28/todo-md/internal/icon"
	"github.com/spf13/cobra"
)

var svgCmd = &cobra.Command{
	Use:   "svg",
	Short: "write the icon as SVG",
	Long:  `write the icon as SVG next to icon.png.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := icon.New(icon.WithLogger(logger))
		if err := r.WriteSVG(svgPath); err != nil {
			return err
		}
		size := r.Layout().Size
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%dx%d)\n", green("Icon saved:"), svgPath, size, size)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(svgCmd)
}
