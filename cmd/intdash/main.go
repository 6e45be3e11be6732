// Package main provides the CLI entry point for intdash.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/intdash-go/pkg/intdash"
	"github.com/ukaji3/intdash-go/pkg/intdash/layout"
	"github.com/ukaji3/intdash-go/pkg/intdash/output"
	"github.com/ukaji3/intdash-go/pkg/intdash/sample"
)

var (
	inputPath   string
	outputPath  string
	layoutPath  string
	plotlyPath  string
	stamp       string
	noFallbacks bool
	verbose     bool

	sampleOutput string
	deckOutput   string
	jsonOutput   bool
	pretty       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "intdash",
		Short: "Generate the integration dashboard from the calculations workbook",
		Long: `intdash reads the integration calculations workbook, computes the
integration metrics and writes a self-contained bilingual HTML dashboard.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
		},
		RunE: run,
	}

	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", intdash.DefaultInput, "Workbook path")
	rootCmd.PersistentFlags().StringVar(&layoutPath, "layout", "", "Layout file (default: built-in layout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", intdash.DefaultOutput, "Report path")
	rootCmd.Flags().StringVar(&plotlyPath, "plotly-js", "", "Local Plotly bundle to inline (default: load from CDN)")
	rootCmd.Flags().StringVar(&stamp, "stamp", "", "Text appended to the footer, e.g. a date")
	rootCmd.Flags().BoolVar(&noFallbacks, "no-fallbacks", false, "Do not embed static SVG chart fallbacks")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the reference workbook",
		Args:  cobra.NoArgs,
		RunE:  runSample,
	}
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", intdash.DefaultInput, "Workbook path")

	metricsCmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print the computed metrics",
		Args:  cobra.NoArgs,
		RunE:  runMetrics,
	}
	metricsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a summary")
	metricsCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	deckCmd := &cobra.Command{
		Use:   "deck",
		Short: "Write a PPTX executive briefing",
		Args:  cobra.NoArgs,
		RunE:  runDeck,
	}
	deckCmd.Flags().StringVarP(&deckOutput, "output", "o", "integration_briefing.pptx", "Deck path")

	rootCmd.AddCommand(sampleCmd, metricsCmd, deckCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func options() intdash.Options {
	opts := intdash.DefaultOptions()
	opts.Input = inputPath
	opts.Output = outputPath
	opts.Layout = layoutPath
	opts.PlotlyJS = plotlyPath
	opts.Stamp = stamp
	if noFallbacks {
		off := false
		opts.Fallbacks = &off
	}
	return opts
}

func run(cmd *cobra.Command, args []string) error {
	res, err := intdash.Generate(options())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%s)\n", res.Output, humanSize(res.Size))
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	l := layout.Default()
	if layoutPath != "" {
		var err error
		if l, err = layout.Load(layoutPath); err != nil {
			return err
		}
	}
	if err := sample.Write(sampleOutput, l); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sample workbook written to %s\n", sampleOutput)
	return nil
}

func runMetrics(cmd *cobra.Command, args []string) error {
	ms, err := intdash.Load(options())
	if err != nil {
		return err
	}
	if jsonOutput {
		data, err := output.ToJSON(ms, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), summary(ms))
	return nil
}

func runDeck(cmd *cobra.Command, args []string) error {
	opts := options()
	ms, err := intdash.Load(opts)
	if err != nil {
		return err
	}
	if err := intdash.WriteDeck(ms, deckOutput, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deck written to %s\n", deckOutput)
	return nil
}

// exitCode maps pipeline error kinds to process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, intdash.ErrSourceMissing):
		return 2
	case errors.Is(err, intdash.ErrSchemaMismatch):
		return 3
	case errors.Is(err, intdash.ErrComputeError):
		return 4
	case errors.Is(err, intdash.ErrWriteError), errors.Is(err, output.ErrWriteFailed):
		return 5
	default:
		return 1
	}
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
