package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go-cvbuilder-backend/internal/delivery/http/response"
	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/internal/render"
	"go-cvbuilder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportUC    domain.ExportUsecase
	cvUC        domain.CVUsecase
	portfolioUC domain.PortfolioUsecase
}

func NewExportHandler(rg *gin.RouterGroup, exportUC domain.ExportUsecase, cvUC domain.CVUsecase, portfolioUC domain.PortfolioUsecase) {
	handler := &ExportHandler{
		exportUC:    exportUC,
		cvUC:        cvUC,
		portfolioUC: portfolioUC,
	}

	export := rg.Group("/export")
	{
		export.POST("/cv/:id", handler.ExportCV)
		export.POST("/portfolio/:id", handler.ExportPortfolio)
		export.GET("/cv/:id/preview", handler.PreviewCV)
		export.GET("/portfolio/:id/preview", handler.PreviewPortfolio)
	}
}

type ExportRequest struct {
	Format   string `json:"format" binding:"omitempty,oneof=html pdf"`
	Template string `json:"template"`
}

func (h *ExportHandler) ExportCV(c *gin.Context) {
	// An empty body means default format and template
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if req.Template != "" && !render.KnownCVTemplate(req.Template) {
		c.Error(apperror.BadRequest(fmt.Sprintf("Unknown CV template %q", req.Template)))
		return
	}

	cv, err := h.cvUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.exportUC.ExportCV(c.Request.Context(), cv, domain.ExportOptions{
		Format:   domain.ExportFormat(req.Format),
		Template: req.Template,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV exported", result)
}

func (h *ExportHandler) ExportPortfolio(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if req.Template != "" && !render.KnownPortfolioTemplate(req.Template) {
		c.Error(apperror.BadRequest(fmt.Sprintf("Unknown portfolio template %q", req.Template)))
		return
	}

	portfolio, err := h.portfolioUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.exportUC.ExportPortfolio(c.Request.Context(), portfolio, domain.ExportOptions{
		Format:   domain.ExportFormat(req.Format),
		Template: req.Template,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio exported", result)
}

// PreviewCV renders the document inline so a browser can show it
// without producing an export file.
func (h *ExportHandler) PreviewCV(c *gin.Context) {
	template := c.Query("template")
	if template != "" && !render.KnownCVTemplate(template) {
		c.Error(apperror.BadRequest(fmt.Sprintf("Unknown CV template %q", template)))
		return
	}

	cv, err := h.cvUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	html, err := h.exportUC.PreviewCV(cv, template)
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *ExportHandler) PreviewPortfolio(c *gin.Context) {
	template := c.Query("template")
	if template != "" && !render.KnownPortfolioTemplate(template) {
		c.Error(apperror.BadRequest(fmt.Sprintf("Unknown portfolio template %q", template)))
		return
	}

	portfolio, err := h.portfolioUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	html, err := h.exportUC.PreviewPortfolio(portfolio, template)
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
