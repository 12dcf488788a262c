// Package render turns CV and Portfolio entities into standalone HTML
// documents. Rendering is pure: no I/O, no mutation, same input same
// output. All user-supplied text passes through html/template's
// contextual autoescaping, so it can never produce executable markup.
package render

import (
	"bytes"
	"html/template"

	"go-cvbuilder-backend/internal/domain"
)

type CVTemplate string

const (
	CVModern  CVTemplate = "modern"
	CVClassic CVTemplate = "classic"

	// DefaultCVTemplate is used when the requested name is unknown or
	// empty. Callers wanting strict behavior validate with KnownCVTemplate
	// before rendering.
	DefaultCVTemplate = CVModern
)

type PortfolioTemplate string

const (
	PortfolioGrid PortfolioTemplate = "grid"
	PortfolioList PortfolioTemplate = "list"

	DefaultPortfolioTemplate = PortfolioGrid
)

var cvTemplates = map[CVTemplate]*template.Template{
	CVModern:  template.Must(template.New("cv_modern").Parse(cvModernTemplate)),
	CVClassic: template.Must(template.New("cv_classic").Parse(cvClassicTemplate)),
}

var portfolioTemplates = map[PortfolioTemplate]*template.Template{
	PortfolioGrid: template.Must(template.New("portfolio_grid").Parse(portfolioGridTemplate)),
	PortfolioList: template.Must(template.New("portfolio_list").Parse(portfolioListTemplate)),
}

// KnownCVTemplate reports whether name maps to a CV template.
func KnownCVTemplate(name string) bool {
	_, ok := cvTemplates[CVTemplate(name)]
	return ok
}

// KnownPortfolioTemplate reports whether name maps to a Portfolio template.
func KnownPortfolioTemplate(name string) bool {
	_, ok := portfolioTemplates[PortfolioTemplate(name)]
	return ok
}

// CVHTML renders a CV with the named template, falling back to
// DefaultCVTemplate for unknown names.
func CVHTML(cv domain.CV, name CVTemplate) (string, error) {
	tpl, ok := cvTemplates[name]
	if !ok {
		tpl = cvTemplates[DefaultCVTemplate]
	}
	return execute(tpl, cv)
}

// PortfolioHTML renders a Portfolio with the named template, falling
// back to DefaultPortfolioTemplate for unknown names.
func PortfolioHTML(portfolio domain.Portfolio, name PortfolioTemplate) (string, error) {
	tpl, ok := portfolioTemplates[name]
	if !ok {
		tpl = portfolioTemplates[DefaultPortfolioTemplate]
	}
	return execute(tpl, portfolio)
}

func execute(tpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
