package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/subrc/pkg/rewrite"
	"github.com/walteh/subrc/pkg/rules"
	"github.com/walteh/subrc/pkg/status"
)

var (
	// Flags
	extension string
	ignores   []string
	debug     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "subrc [root]",
		Short: "Apply the builtin substitution table to a source tree",
		Long: `subrc walks a directory tree, applies a fixed ordered table of literal
string substitutions to every file matching the extension filter, and
rewrites only the files whose content actually changed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
		// Errors are printed by main, with usage suppressed.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&extension, "ext", "e", ".kt", "file extension to rewrite")
	rootCmd.Flags().StringSliceVarP(&ignores, "ignore", "i", nil, "glob patterns to skip, relative to root")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	// Set up logger
	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter()).Level(logLevel).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	printer := status.NewPrinter(os.Stdout, logger)

	engine, err := rewrite.New(rewrite.Config{
		Root:      root,
		Extension: extension,
		Ignores:   ignores,
		Table:     rules.Builtin(),
	}, printer)
	if err != nil {
		return err
	}

	report, err := engine.Execute(ctx)
	if err != nil {
		return err
	}

	printer.Summary(report.Updated, report.Failed)
	return nil
}
