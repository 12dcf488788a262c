package v1

import (
	"fmt"
	"net/http"

	"go-cvbuilder-backend/internal/delivery/http/response"
	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	maintenanceRepo domain.MaintenanceRepository
	cvUC            domain.CVUsecase
	portfolioUC     domain.PortfolioUsecase
}

func NewSystemHandler(rg *gin.RouterGroup, maintenanceRepo domain.MaintenanceRepository, cvUC domain.CVUsecase, portfolioUC domain.PortfolioUsecase) {
	handler := &SystemHandler{
		maintenanceRepo: maintenanceRepo,
		cvUC:            cvUC,
		portfolioUC:     portfolioUC,
	}

	rg.DELETE("/admin/storage", handler.ClearStorage)
}

// ClearStorage wipes both persisted collections and reloads the
// in-memory state so it reflects the now-empty storage.
func (h *SystemHandler) ClearStorage(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.maintenanceRepo.ClearAll(ctx); err != nil {
		c.Error(apperror.Internal(fmt.Errorf("clear storage: %w", err)))
		return
	}
	if _, err := h.cvUC.Load(ctx); err != nil {
		c.Error(err)
		return
	}
	if _, err := h.portfolioUC.Load(ctx); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Storage cleared", nil)
}
