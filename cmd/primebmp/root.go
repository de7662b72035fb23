package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/primebmp"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "primebmp",
		Short:         "Draw prime numbers as a bitmap image",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogging(cmd.ErrOrStderr(), verbose)
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(newRenderCmd(), newVerifyCmd(), newIdentifyCmd())
	return rootCmd
}

// setupLogging routes library logs to w. Warnings are always shown;
// --verbose adds info and debug records.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	primebmp.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

// printer formats counts with locale digit grouping.
func printer() *message.Printer {
	return message.NewPrinter(language.English)
}
