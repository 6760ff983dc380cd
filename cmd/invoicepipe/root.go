package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"invoicepipe/version"
)

var (
	outputPath string
	jsonOutput bool
	debugLogs  bool
)

var rootCmd = &cobra.Command{
	Use:   "invoicepipe",
	Short: "Normalize invoices from spreadsheets, PDFs and scans",
	Long: `Invoicepipe turns messy invoice inputs into canonical invoice records.

Tabular files (CSV/XLSX) are classified by shape and mapped onto the
canonical record through header heuristics; multi-invoice tables can be
split into one record per client or invoice number. PDF and image files
go through text extraction and a generative-then-pattern field chain.`,
	Version:       version.GitRelease,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&outputPath, "output", "o", "", "write an XLSX workbook to this path instead of printing JSON",
	)
	rootCmd.PersistentFlags().BoolVar(
		&jsonOutput, "json", false, "print the result as JSON to stdout (default when no -o is given)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&debugLogs, "debug", false, "enable debug logging",
	)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// .env is optional; a missing file is not an error.
		_ = godotenv.Load()

		lvl := slog.LevelInfo
		if debugLogs {
			lvl = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	}

	rootCmd.AddCommand(tabularCmd)
	rootCmd.AddCommand(documentCmd)
	rootCmd.AddCommand(versionCmd)
}
