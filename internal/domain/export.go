package domain

import "context"

type ExportFormat string

const (
	FormatHTML ExportFormat = "html"
	FormatPDF  ExportFormat = "pdf"
)

// ExportOptions selects the output format and template. Zero values are
// defaulted by the export usecase (html, and the renderer's default
// template for the entity kind).
type ExportOptions struct {
	Format   ExportFormat `json:"format"`
	Template string       `json:"template"`
}

// ExportResult describes the produced document and where it was shared.
type ExportResult struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
	MimeType string `json:"mimeType"`
	ShareRef string `json:"shareRef"`
}

type ExportUsecase interface {
	ExportCV(ctx context.Context, cv CV, opts ExportOptions) (ExportResult, error)
	ExportPortfolio(ctx context.Context, portfolio Portfolio, opts ExportOptions) (ExportResult, error)
	PreviewCV(cv CV, template string) (string, error)
	PreviewPortfolio(portfolio Portfolio, template string) (string, error)
}

// MaintenanceRepository wipes both persisted collections.
type MaintenanceRepository interface {
	ClearAll(ctx context.Context) error
}
