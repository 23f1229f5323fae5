package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-preview/internal/observability"
	"github.com/jonathan/resume-preview/internal/pipeline"
	"github.com/jonathan/resume-preview/internal/theme"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Render a resume in several layouts at once",
	Long: `Renders one resume under each requested layout (all three by default) and writes
<out-dir>/<layout>.html for each, for side-by-side comparison.`,
	RunE: runVariants,
}

var (
	variantsOutDir  string
	variantsLayouts []string
)

func init() {
	addInputFlags(variantsCmd)
	addThemeFlags(variantsCmd)
	variantsCmd.Flags().StringVarP(&variantsOutDir, "out-dir", "o", "", "Output directory (default: output_dir from config)")
	variantsCmd.Flags().StringSliceVar(&variantsLayouts, "layouts", nil, "Layouts to render (default: classic,modern,minimal)")

	rootCmd.AddCommand(variantsCmd)
}

func runVariants(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	layouts, err := parseLayouts(variantsLayouts)
	if err != nil {
		return err
	}

	resume, err := loadInput(ctx, cfg)
	if err != nil {
		return err
	}
	themeCfg, err := themeFor(resume, cfg.Theme, flagTheme())
	if err != nil {
		return err
	}

	variants, err := pipeline.RenderVariants(ctx, resume, themeCfg, layouts, pipeline.Options{
		Render:  cfg.RenderOptions(),
		HTML:    true,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to render variants: %w", err)
	}

	outDir := variantsOutDir
	if outDir == "" {
		outDir = cfg.Output
	}
	for _, v := range variants {
		path := filepath.Join(outDir, string(v.Layout)+".html")
		if err := writeOutput(path, []byte(v.HTML)); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	}

	observability.NewPrinter(os.Stdout).PrintVariants(variants)
	return nil
}

// parseLayouts checks layout names strictly; unlike theme resolution, a typo here is an error
func parseLayouts(names []string) ([]theme.Layout, error) {
	layouts := make([]theme.Layout, 0, len(names))
	for _, name := range names {
		layout := theme.Layout(name)
		if theme.ParseLayout(name) != layout {
			return nil, fmt.Errorf("unknown layout %q (want classic, modern or minimal)", name)
		}
		layouts = append(layouts, layout)
	}
	return layouts, nil
}
