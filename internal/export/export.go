// Package export turns rendered HTML pages into print-ready PDF files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single export, including browser start-up
const DefaultTimeout = 60 * time.Second

// A4 paper in inches
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// browserNames are the executables probed on PATH when no explicit path is configured
var browserNames = []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell"}

// Exporter converts a standalone HTML page to a PDF document
type Exporter interface {
	Export(ctx context.Context, html string) ([]byte, error)
}

// ChromeExporter prints HTML to PDF with a headless Chrome instance per call
type ChromeExporter struct {
	// ExecPath is the browser binary. Empty means CHROME_PATH, then the chromedp default.
	ExecPath string
	Timeout  time.Duration
	Verbose  bool
}

// NewChromeExporter returns an exporter using the given browser path (or CHROME_PATH)
func NewChromeExporter(execPath string, timeout time.Duration, verbose bool) *ChromeExporter {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ChromeExporter{ExecPath: execPath, Timeout: timeout, Verbose: verbose}
}

// Available reports whether a browser binary can be found
func (e *ChromeExporter) Available() bool {
	if e.ExecPath != "" {
		_, err := os.Stat(e.ExecPath)
		return err == nil
	}
	for _, name := range browserNames {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// Export writes html to a temporary file, loads it in headless Chrome and prints an A4 PDF
// with backgrounds. Relative image paths resolve against the temporary directory.
func (e *ChromeExporter) Export(ctx context.Context, html string) ([]byte, error) {
	start := time.Now()
	if e.Verbose {
		log.Printf("[EXPORT] Printing %d bytes of HTML to PDF", len(html))
	}

	tmpDir, err := os.MkdirTemp("", "resume-preview-")
	if err != nil {
		return nil, &ExportError{Stage: StagePrepare, Message: "failed to create temp dir", Cause: err}
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, &ExportError{Stage: StagePrepare, Message: "failed to write page", Cause: err}
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(e.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &ExportError{Stage: StagePrint, Message: "browser printing failed", Cause: err}
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		return nil, &ExportError{Stage: StagePrint, Message: fmt.Sprintf("browser returned %d bytes that are not a PDF", len(pdf))}
	}

	if e.Verbose {
		log.Printf("[EXPORT] Wrote %d bytes of PDF in %s", len(pdf), time.Since(start).Round(time.Millisecond))
	}
	return pdf, nil
}

// ExportFile exports html and writes the PDF to path
func ExportFile(ctx context.Context, exp Exporter, html, path string) error {
	pdf, err := exp.Export(ctx, html)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &ExportError{Stage: StageWrite, Message: "failed to create output directory", Cause: err}
		}
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return &ExportError{Stage: StageWrite, Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return nil
}
