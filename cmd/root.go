package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/k1LoW/errors"
	"github.com/mattn/go-colorable"
	"github.com/sidarora28/todo-md/internal/icon"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/sidarora28/todo-md/cmd.version=...".
var version = "dev"

var (
	pngPath = filepath.Join("electron", "icons", "icon.png")
	icoPath = filepath.Join("electron", "icons", "icon.ico")
	svgPath = filepath.Join("electron", "icons", "icon.svg")
)

var (
	debug  bool
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var green = color.New(color.FgGreen).SprintFunc()

var rootCmd = &cobra.Command{
	Use:          "todoicon",
	Short:        "todoicon renders the ToDo.md application icon",
	Long:         `todoicon renders the ToDo.md application icon to electron/icons/icon.png.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Version:      version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		r := icon.New(icon.WithLogger(logger))
		if err := r.WritePNG(pngPath); err != nil {
			return err
		}
		size := r.Layout().Size
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%dx%d)\n", green("Icon saved:"), pngPath, size, size)
		return nil
	},
}

func Execute() {
	rootCmd.SetOut(colorable.NewColorableStdout())
	rootCmd.SetErr(colorable.NewColorableStderr())
	if err := rootCmd.Execute(); err != nil {
		logger.Debug("command failed", slog.Any("stack_traces", errors.StackTraces(err)))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "", false, "enable debug logging to stderr")
}
