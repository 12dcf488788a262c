package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// Printer converts a rendered HTML document into a PDF file and returns
// the path of the produced file.
type Printer interface {
	PrintToFile(ctx context.Context, html string) (string, error)
}

type wkhtmlPrinter struct {
	outDir string
}

// NewWkhtmltopdf creates a Printer backed by the wkhtmltopdf binary.
// binPath overrides binary discovery; when empty the binary is looked up
// on PATH. Produced files land in outDir.
func NewWkhtmltopdf(binPath, outDir string) (Printer, error) {
	if binPath != "" {
		wkhtmltopdf.SetPath(binPath)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("printer: create output dir: %w", err)
	}
	return &wkhtmlPrinter{outDir: outDir}, nil
}

func (p *wkhtmlPrinter) PrintToFile(ctx context.Context, html string) (string, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return "", fmt.Errorf("printer: init: %w", err)
	}

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.CreateContext(ctx); err != nil {
		return "", fmt.Errorf("printer: render: %w", err)
	}

	out := filepath.Join(p.outDir, fmt.Sprintf("print_%d.pdf", time.Now().UnixNano()))
	if err := pdfg.WriteFile(out); err != nil {
		return "", fmt.Errorf("printer: write: %w", err)
	}
	return out, nil
}
