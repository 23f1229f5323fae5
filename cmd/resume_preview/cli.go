package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-preview/internal/config"
	"github.com/jonathan/resume-preview/internal/db"
	"github.com/jonathan/resume-preview/internal/schemas"
	"github.com/jonathan/resume-preview/internal/theme"
	"github.com/jonathan/resume-preview/internal/types"
)

// Theme flags shared by every rendering command
var (
	themeColor  string
	themeFont   string
	themeLayout string
)

// Input flags shared by every single-record command
var (
	inputPath string
	resumeID  string
)

func addThemeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&themeColor, "color", "", "Primary color as #RRGGBB (overrides the stored theme)")
	cmd.Flags().StringVar(&themeFont, "font", "", "Font family stack (overrides the stored theme)")
	cmd.Flags().StringVar(&themeLayout, "layout", "", "Layout: classic, modern or minimal (overrides the stored theme)")
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputPath, "in", "i", "", "Path to resume JSON file")
	cmd.Flags().StringVar(&resumeID, "resume-id", "", "ID of a stored resume (requires DATABASE_URL or --db-url)")
}

// loadConfig reads --config, applies flag and environment overrides, then fills defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
		if verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", configPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("labels") {
		cfg.Labels = labelsLang
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = databaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	cfg.ApplyEnv(os.Getenv)

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	verbose = cfg.Verbose
	return cfg, nil
}

// flagTheme returns the theme keys set on the command line
func flagTheme() types.ThemeConfig {
	return types.ThemeConfig{PrimaryColor: themeColor, FontFamily: themeFont, Layout: themeLayout}
}

// themeFor picks the theme for one record: the stored theme, or fallback when the record
// has none, with every non-empty key of flags laid over it.
func themeFor(r *types.Resume, fallback, flags types.ThemeConfig) (types.ThemeConfig, error) {
	cfg := fallback
	if r != nil && r.Theme != nil {
		cfg = *r.Theme
	}
	if flags.PrimaryColor != "" {
		cfg.PrimaryColor = flags.PrimaryColor
	}
	if flags.FontFamily != "" {
		cfg.FontFamily = flags.FontFamily
	}
	if flags.Layout != "" {
		cfg.Layout = flags.Layout
	}
	if err := theme.Validate(cfg); err != nil {
		return types.ThemeConfig{}, err
	}
	return cfg, nil
}

// readResume loads a resume JSON file, validating it against the resume schema first
func readResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := schemas.ValidateResume(data); err != nil {
		return nil, err
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	return &resume, nil
}

// openDB connects to the configured database
func openDB(ctx context.Context, cfg config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// loadInput loads the record named by --in or --resume-id
func loadInput(ctx context.Context, cfg config.Config) (*types.Resume, error) {
	switch {
	case inputPath != "" && resumeID != "":
		return nil, fmt.Errorf("--in and --resume-id are mutually exclusive; provide only one")
	case inputPath != "":
		return readResume(inputPath)
	case resumeID != "":
		id, err := uuid.Parse(resumeID)
		if err != nil {
			return nil, fmt.Errorf("invalid resume-id: %w", err)
		}
		database, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer database.Close()

		resume, err := database.GetResume(ctx, id)
		if err != nil {
			return nil, err
		}
		if resume == nil {
			return nil, fmt.Errorf("resume not found: %s", id)
		}
		return resume, nil
	default:
		return nil, fmt.Errorf("either --in or --resume-id must be provided")
	}
}

// writeOutput writes data to path, creating parent directories. An empty path or "-" writes to stdout.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// fileStem turns a display name into a file name stem; "Ada Lovelace" becomes "ada-lovelace"
func fileStem(name, fallback string) string {
	stem := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if stem == "" {
		return fallback
	}
	return stem
}
