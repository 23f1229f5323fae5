package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-preview/internal/config"
	"github.com/jonathan/resume-preview/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch [resume.json ...]",
	Short: "Render many resumes to HTML",
	Long: `Renders every resume file given as an argument, or every stored resume of --user-id,
and writes <out-dir>/<id>.html for each. Each record keeps its own theme unless theme flags
override it.`,
	RunE: runBatch,
}

var (
	batchOutDir      string
	batchUserID      string
	batchConcurrency int
)

func init() {
	addThemeFlags(batchCmd)
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Output directory (default: output_dir from config)")
	batchCmd.Flags().StringVarP(&batchUserID, "user-id", "u", "", "Render every stored resume of this user")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", pipeline.DefaultConcurrency, "Maximum resumes rendered at once")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var items []pipeline.BatchItem
	switch {
	case batchUserID != "" && len(args) > 0:
		return fmt.Errorf("--user-id and resume files are mutually exclusive; provide only one")
	case batchUserID != "":
		items, err = storedItems(ctx, cfg, batchUserID)
	case len(args) > 0:
		items, err = fileItems(args)
	default:
		return fmt.Errorf("provide resume files or --user-id")
	}
	if err != nil {
		return err
	}

	// Theme flags and the config theme are resolved per record
	for i := range items {
		themeCfg, err := themeFor(items[i].Resume, cfg.Theme, flagTheme())
		if err != nil {
			return fmt.Errorf("%s: %w", items[i].ID, err)
		}
		items[i].Theme = &themeCfg
	}

	results, err := pipeline.RenderBatch(ctx, items, pipeline.Options{
		Render:      cfg.RenderOptions(),
		Concurrency: batchConcurrency,
		HTML:        true,
		Verbose:     verbose,
		OnProgress: func(event pipeline.ProgressEvent) {
			if verbose {
				_, _ = fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", event.Step, event.ID, event.Message)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("batch render failed: %w", err)
	}

	outDir := batchOutDir
	if outDir == "" {
		outDir = cfg.Output
	}
	for _, result := range results {
		path := filepath.Join(outDir, result.ID+".html")
		if err := writeOutput(path, []byte(result.HTML)); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "%-40s %-8s ~%d page(s)\n", path, result.Layout, result.Pages)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Rendered %d resume(s)\n", len(results))
	return nil
}

// fileItems reads each file; the item ID is the file name without extension
func fileItems(paths []string) ([]pipeline.BatchItem, error) {
	items := make([]pipeline.BatchItem, 0, len(paths))
	seen := make(map[string]bool, len(paths))
	for _, path := range paths {
		resume, err := readResume(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if seen[id] {
			return nil, fmt.Errorf("%s: another file is also named %s", path, id)
		}
		seen[id] = true
		items = append(items, pipeline.BatchItem{ID: id, Resume: resume})
	}
	return items, nil
}

// storedItems loads every resume of a user; the item ID is the record ID
func storedItems(ctx context.Context, cfg config.Config, userID string) ([]pipeline.BatchItem, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user-id: %w", err)
	}

	database, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	summaries, err := database.ListResumes(ctx, uid)
	if err != nil {
		return nil, err
	}

	items := make([]pipeline.BatchItem, 0, len(summaries))
	for _, summary := range summaries {
		resume, err := database.GetResume(ctx, summary.ID)
		if err != nil {
			return nil, err
		}
		if resume == nil {
			continue // deleted since listing
		}
		items = append(items, pipeline.BatchItem{ID: summary.ID.String(), Resume: resume})
	}
	return items, nil
}
