package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/internal/render"
	"go-cvbuilder-backend/pkg/apperror"
	"go-cvbuilder-backend/pkg/logger"
	"go-cvbuilder-backend/pkg/printer"
	"go-cvbuilder-backend/pkg/share"
)

type exportUsecase struct {
	printer   printer.Printer
	sharer    share.Sharer
	exportDir string
	now       func() time.Time
}

func NewExportUsecase(p printer.Printer, s share.Sharer, exportDir string) domain.ExportUsecase {
	return &exportUsecase{
		printer:   p,
		sharer:    s,
		exportDir: exportDir,
		now:       time.Now,
	}
}

// ExportCV renders the CV, produces an HTML or PDF file and hands it to
// the share collaborator. The file name embeds "First_Last" and epoch
// millis so rapid repeated exports cannot collide.
func (u *exportUsecase) ExportCV(ctx context.Context, cv domain.CV, opts domain.ExportOptions) (domain.ExportResult, error) {
	html, err := render.CVHTML(cv, render.CVTemplate(opts.Template))
	if err != nil {
		return domain.ExportResult{}, apperror.Internal(fmt.Errorf("render cv: %w", err))
	}
	base := fmt.Sprintf("CV_%s_%s", fileSafe(cv.PersonalInfo.FirstName), fileSafe(cv.PersonalInfo.LastName))
	return u.exportDocument(ctx, html, base, opts.Format, "CV")
}

func (u *exportUsecase) ExportPortfolio(ctx context.Context, portfolio domain.Portfolio, opts domain.ExportOptions) (domain.ExportResult, error) {
	html, err := render.PortfolioHTML(portfolio, render.PortfolioTemplate(opts.Template))
	if err != nil {
		return domain.ExportResult{}, apperror.Internal(fmt.Errorf("render portfolio: %w", err))
	}
	base := fmt.Sprintf("Portfolio_%s", fileSafe(portfolio.Name))
	return u.exportDocument(ctx, html, base, opts.Format, "Portfolio")
}

// PreviewCV is the render-without-share path.
func (u *exportUsecase) PreviewCV(cv domain.CV, template string) (string, error) {
	html, err := render.CVHTML(cv, render.CVTemplate(template))
	if err != nil {
		return "", apperror.Internal(fmt.Errorf("render cv: %w", err))
	}
	return html, nil
}

func (u *exportUsecase) PreviewPortfolio(portfolio domain.Portfolio, template string) (string, error) {
	html, err := render.PortfolioHTML(portfolio, render.PortfolioTemplate(template))
	if err != nil {
		return "", apperror.Internal(fmt.Errorf("render portfolio: %w", err))
	}
	return html, nil
}

func (u *exportUsecase) exportDocument(ctx context.Context, html, baseName string, format domain.ExportFormat, kind string) (domain.ExportResult, error) {
	if format == "" {
		format = domain.FormatHTML
	}

	var filePath, mimeType, title string
	switch format {
	case domain.FormatPDF:
		path, err := u.printer.PrintToFile(ctx, html)
		if err != nil {
			logger.Log.Error("Print to file failed", "kind", kind, "error", err)
			return domain.ExportResult{}, apperror.Internal(fmt.Errorf("print to file: %w", err))
		}
		filePath, mimeType, title = path, "application/pdf", fmt.Sprintf("Share %s (PDF)", kind)

	case domain.FormatHTML:
		fileName := fmt.Sprintf("%s_%d.html", baseName, u.now().UnixMilli())
		path := filepath.Join(u.exportDir, fileName)
		if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
			logger.Log.Error("Export write failed", "kind", kind, "file", fileName, "error", err)
			return domain.ExportResult{}, apperror.Internal(fmt.Errorf("write export: %w", err))
		}
		filePath, mimeType, title = path, "text/html", fmt.Sprintf("Share %s (HTML)", kind)

	default:
		return domain.ExportResult{}, apperror.BadRequest(fmt.Sprintf("Unknown export format %q", format))
	}

	ref, err := u.sharer.Share(ctx, filePath, mimeType, title)
	if errors.Is(err, share.ErrUnavailable) {
		return domain.ExportResult{}, apperror.Unavailable("Sharing is not available")
	}
	if err != nil {
		logger.Log.Error("Share failed", "kind", kind, "file", filePath, "error", err)
		return domain.ExportResult{}, apperror.Internal(fmt.Errorf("share: %w", err))
	}

	return domain.ExportResult{
		FileName: filepath.Base(filePath),
		FilePath: filePath,
		MimeType: mimeType,
		ShareRef: ref,
	}, nil
}

// fileSafe collapses whitespace runs into single underscores.
func fileSafe(s string) string {
	return strings.Join(strings.Fields(s), "_")
}
