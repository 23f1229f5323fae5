package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-preview/internal/export"
	"github.com/jonathan/resume-preview/internal/observability"
	"github.com/jonathan/resume-preview/internal/rendering"
	"github.com/jonathan/resume-preview/internal/theme"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume to PDF",
	Long: `Renders a resume and prints it to an A4 PDF with headless Chrome or Chromium.
The browser is found on PATH unless chrome_path, CHROME_PATH or --chrome names one.`,
	RunE: runExport,
}

var (
	exportOutput string
	exportChrome string
	exportHTML   bool
)

func init() {
	addInputFlags(exportCmd)
	addThemeFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output PDF path (default: <output_dir>/<name>.pdf)")
	exportCmd.Flags().StringVar(&exportChrome, "chrome", "", "Path to the Chrome or Chromium binary")
	exportCmd.Flags().BoolVar(&exportHTML, "keep-html", false, "Also write the HTML page next to the PDF")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("chrome") {
		cfg.Chrome = exportChrome
	}

	exporter := export.NewChromeExporter(cfg.Chrome, cfg.ExportTimeout(), verbose)
	if !exporter.Available() {
		return fmt.Errorf("no Chrome or Chromium binary found; set CHROME_PATH or use --chrome")
	}

	resume, err := loadInput(ctx, cfg)
	if err != nil {
		return err
	}
	themeCfg, err := themeFor(resume, cfg.Theme, flagTheme())
	if err != nil {
		return err
	}

	doc := rendering.RenderResume(resume, themeCfg, cfg.RenderOptions())
	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintTheme(theme.Resolve(themeCfg))
		printer.PrintDocument(doc, rendering.EstimatePages(doc))
	}

	html, err := rendering.RenderHTML(doc)
	if err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}

	out := exportOutput
	if out == "" {
		out = filepath.Join(cfg.Output, fileStem(resume.PersonalInfo.Name, "resume")+".pdf")
	}
	if err := export.ExportFile(ctx, exporter, html, out); err != nil {
		return err
	}

	if exportHTML {
		htmlPath := out[:len(out)-len(filepath.Ext(out))] + ".html"
		if err := writeOutput(htmlPath, []byte(html)); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully exported PDF\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", out)
	return nil
}
