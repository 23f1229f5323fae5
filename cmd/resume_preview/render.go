package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-preview/internal/normalize"
	"github.com/jonathan/resume-preview/internal/observability"
	"github.com/jonathan/resume-preview/internal/rendering"
	"github.com/jonathan/resume-preview/internal/theme"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume to HTML or a document tree",
	Long: `Renders a resume record under its theme and writes either a standalone A4 HTML page or
the JSON document tree. The format follows --format, or the extension of --out.`,
	RunE: runRender,
}

var (
	renderOutput string
	renderFormat string
)

func init() {
	addInputFlags(renderCmd)
	addThemeFlags(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "-", "Output file (- for stdout)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Output format: html or json (default: from --out extension, else html)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format, err := outputFormat(renderFormat, renderOutput)
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

	resolved := theme.Resolve(themeCfg)
	model := normalize.Normalize(resume)
	doc := rendering.Render(model, resolved, cfg.RenderOptions())

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintTheme(resolved)
		printer.PrintModel(model)
		if resume != nil {
			printer.PrintSkills(resume.Skills)
		}
		printer.PrintDocument(doc, rendering.EstimatePages(doc))
	}

	var out bytes.Buffer
	switch format {
	case "json":
		encoder := json.NewEncoder(&out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
	default:
		if err := rendering.WriteHTML(&out, doc); err != nil {
			return fmt.Errorf("failed to render HTML: %w", err)
		}
	}

	if err := writeOutput(renderOutput, out.Bytes()); err != nil {
		return err
	}
	if renderOutput != "" && renderOutput != "-" {
		_, _ = fmt.Fprintf(os.Stdout, "Rendered %s layout to %s\n", doc.Layout, renderOutput)
	}
	return nil
}

// outputFormat picks html or json from an explicit flag or the output file extension
func outputFormat(flag, out string) (string, error) {
	switch strings.ToLower(flag) {
	case "html", "json":
		return strings.ToLower(flag), nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q (want html or json)", flag)
	}

	if strings.EqualFold(filepath.Ext(out), ".json") {
		return "json", nil
	}
	return "html", nil
}
