package v1

import (
	"net/http"

	"go-cvbuilder-backend/config"
	"go-cvbuilder-backend/internal/delivery/http/middleware"
	"go-cvbuilder-backend/internal/delivery/http/response"
	"go-cvbuilder-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	CVUC            domain.CVUsecase
	PortfolioUC     domain.PortfolioUsecase
	ExportUC        domain.ExportUsecase
	MaintenanceRepo domain.MaintenanceRepository
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewCVHandler(v1, deps.CVUC)
	NewPortfolioHandler(v1, deps.PortfolioUC, deps.Config.ImageDir, deps.Config.ImageMaxDimension, deps.Config.ImageJPEGQuality)
	NewExportHandler(v1, deps.ExportUC, deps.CVUC, deps.PortfolioUC)
	NewSystemHandler(v1, deps.MaintenanceRepo, deps.CVUC, deps.PortfolioUC)

	return r
}
