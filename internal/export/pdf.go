// Package export serializes a rendered resume document into a downloadable
// PDF. The rendered HTML is staged into a temporary directory (the offscreen
// container), printed to an A4 page by headless Chrome, and the staging
// directory is removed on every exit path.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// printTimeout bounds a single Chrome print run.
const printTimeout = 60 * time.Second

// TargetError indicates the rendered document could not be exported because
// there was nothing to rasterize.
type TargetError struct {
	Message string
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("export target error: %s", e.Message)
}

// Exporter rasterizes rendered HTML into PDFs.
type Exporter struct {
	// printPDF turns a file:// URL into PDF bytes. Overridable in tests so
	// the staging/cleanup contract can be exercised without Chrome.
	printPDF func(ctx context.Context, url string) ([]byte, error)
}

// New creates an Exporter backed by headless Chrome.
func New() *Exporter {
	return &Exporter{printPDF: printWithChrome}
}

// Export stages html into a temp dir, prints it to a single A4 PDF, and
// returns the bytes plus the download filename derived from name. The staging
// dir is removed whether or not the print succeeds.
func (e *Exporter) Export(ctx context.Context, html, name string) ([]byte, string, error) {
	if strings.TrimSpace(html) == "" {
		return nil, "", &TargetError{Message: "rendered document is empty"}
	}

	dir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, "", fmt.Errorf("failed to create staging dir: %w", err)
	}
	defer os.RemoveAll(dir)

	htmlPath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, "", fmt.Errorf("failed to stage document: %w", err)
	}

	pdf, err := e.printPDF(ctx, "file://"+htmlPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to print document: %w", err)
	}

	return pdf, Filename(name), nil
}

// Filename derives the download filename from a user-supplied resume name.
// Characters outside a safe set are replaced and the fixed .pdf extension is
// appended; an unusable name falls back to "resume.pdf".
func Filename(name string) string {
	cleaned := strings.TrimSpace(name)
	var b strings.Builder
	for _, r := range cleaned {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "resume"
	}
	return out + ".pdf"
}

// printWithChrome drives a headless Chrome instance to print the staged page.
func printWithChrome(ctx context.Context, url string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, printTimeout)
	defer cancelRun()

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
