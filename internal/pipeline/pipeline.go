// Package pipeline renders resumes in bulk: one record under several layouts, or many
// records at once.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-preview/internal/normalize"
	"github.com/jonathan/resume-preview/internal/rendering"
	"github.com/jonathan/resume-preview/internal/theme"
	"github.com/jonathan/resume-preview/internal/types"
)

// DefaultConcurrency bounds parallel renders when Options.Concurrency is unset
const DefaultConcurrency = 4

// ProgressEvent represents a progress update during batch rendering
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// ProgressCallback is called when batch progress occurs. It may be called concurrently.
type ProgressCallback func(event ProgressEvent)

// Progress steps
const (
	StepVariant = "variant"
	StepItem    = "item"
)

// Options holds configuration for bulk rendering
type Options struct {
	Render      rendering.Options
	Concurrency int
	// HTML also serializes every document to a standalone page
	HTML       bool
	Verbose    bool
	OnProgress ProgressCallback
}

// Variant is one layout rendering of a record. Theme is the fully resolved theme it
// was rendered with.
type Variant struct {
	Layout   theme.Layout      `json:"layout"`
	Theme    types.ThemeConfig `json:"theme"`
	Document *types.Document   `json:"document"`
	Pages    int               `json:"pages"`
	HTML     string            `json:"html,omitempty"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, step, id, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, ID: id, Message: message})
	}
}

func (o *Options) limit() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return DefaultConcurrency
}

// RenderVariants renders r once per layout, concurrently, for a layout picker.
// The partial theme's layout key is ignored; everything else applies to every variant.
// Results are in the order of layouts; an empty list means every supported layout.
func RenderVariants(ctx context.Context, r *types.Resume, partial types.ThemeConfig, layouts []theme.Layout, opts Options) ([]Variant, error) {
	if len(layouts) == 0 {
		layouts = theme.Layouts
	}

	// Normalization does not depend on the layout, so it is shared
	model := normalize.Normalize(r)
	results := make([]Variant, len(layouts))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.limit())

	for i, layout := range layouts {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			cfg := partial
			cfg.Layout = string(layout)
			variant, err := renderOne(model, theme.Resolve(cfg), &opts)
			if err != nil {
				return fmt.Errorf("layout %s: %w", layout, err)
			}
			results[i] = variant
			emitProgress(&opts, StepVariant, string(layout), fmt.Sprintf("%d page(s)", variant.Pages))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BatchItem is one record to render. A nil Theme means the record's stored theme.
type BatchItem struct {
	ID     string
	Resume *types.Resume
	Theme  *types.ThemeConfig
}

// BatchResult is the rendering of one BatchItem
type BatchResult struct {
	ID string `json:"id"`
	Variant
}

// RenderBatch renders many records concurrently. The first failure cancels the rest.
// Results are in input order.
func RenderBatch(ctx context.Context, items []BatchItem, opts Options) ([]BatchResult, error) {
	results := make([]BatchResult, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.limit())

	for i, item := range items {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if item.Resume == nil {
				return fmt.Errorf("item %q: no resume", item.ID)
			}

			resolved := theme.Resolve(rendering.ThemeFor(item.Resume, item.Theme))
			variant, err := renderOne(normalize.Normalize(item.Resume), resolved, &opts)
			if err != nil {
				return fmt.Errorf("item %q: %w", item.ID, err)
			}
			results[i] = BatchResult{ID: item.ID, Variant: variant}
			emitProgress(&opts, StepItem, item.ID, fmt.Sprintf("%s layout, %d page(s)", variant.Layout, variant.Pages))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("[BATCH] Rendered %d resume(s)", len(results))
	}
	return results, nil
}

func renderOne(model *normalize.Model, t theme.ResolvedTheme, opts *Options) (Variant, error) {
	doc := rendering.Render(model, t, opts.Render)
	variant := Variant{Layout: t.Layout, Theme: t.Config(), Document: doc, Pages: rendering.EstimatePages(doc)}
	if opts.HTML {
		html, err := rendering.RenderHTML(doc)
		if err != nil {
			return Variant{}, err
		}
		variant.HTML = html
	}
	return variant, nil
}
