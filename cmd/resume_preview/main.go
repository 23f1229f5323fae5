// Package main provides the resume_preview CLI: render, export and validate resumes, or
// serve the same operations over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_preview",
	Short: "Resume Preview renderer and PDF exporter",
	Long: `Resume Preview turns a structured resume record into a themed A4 document in one of
three layouts (classic, modern, minimal) and exports it as HTML or PDF.

Configuration can be loaded from a JSON file using --config. Command-line flags override
config file values; DATABASE_URL and CHROME_PATH fill in anything still unset.`,
	SilenceUsage: true,
}

var (
	configPath  string
	verbose     bool
	labelsLang  string
	databaseURL string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().StringVar(&labelsLang, "labels", "", "Section label language: en or de")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
