package cmd

import (
	"fmt"

	"github.com/sidarora28/todo-md/internal/icon"
	"github.com/sidarora28/todo-md/internal/output"
	"github.com/spf13/cobra"
)

var icoCmd = &cobra.Command{
	Use:   "ico",
	Short: "render the icon as a Windows .ico",
	Long:  `render the icon as a 256x256 Windows .ico next to icon.png.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := icon.New(icon.WithLogger(logger))
		if err := r.WriteICO(icoPath, output.MaxICOSize); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%dx%d)\n", green("Icon saved:"), icoPath, output.MaxICOSize, output.MaxICOSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(icoCmd)
}
