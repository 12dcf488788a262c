package v1

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go-cvbuilder-backend/internal/delivery/http/response"
	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/pkg/apperror"
	"go-cvbuilder-backend/pkg/imaging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadBytes caps portfolio image uploads at 10 MB.
const maxUploadBytes = 10 << 20

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
	imageDir    string
	maxDim      int
	jpegQuality int
}

func NewPortfolioHandler(rg *gin.RouterGroup, portfolioUC domain.PortfolioUsecase, imageDir string, maxDim, jpegQuality int) {
	handler := &PortfolioHandler{
		portfolioUC: portfolioUC,
		imageDir:    imageDir,
		maxDim:      maxDim,
		jpegQuality: jpegQuality,
	}

	portfolios := rg.Group("/portfolios")
	{
		portfolios.GET("", handler.List)
		portfolios.POST("", handler.Create)
		portfolios.GET("/:id", handler.Get)
		portfolios.PUT("/:id", handler.Update)
		portfolios.DELETE("/:id", handler.Delete)
		portfolios.POST("/:id/select", handler.Select)
	}

	current := rg.Group("/current/portfolio")
	{
		current.GET("", handler.Current)
		current.POST("/items", handler.AddItem)
		current.PUT("/items/:itemId", handler.UpdateItem)
		current.DELETE("/items/:itemId", handler.RemoveItem)
		current.POST("/items/:itemId/image", handler.UploadItemImage)
	}

	// Serve normalized images back to clients
	rg.Static("/images", imageDir)
}

type CreatePortfolioRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *PortfolioHandler) List(c *gin.Context) {
	portfolios := h.portfolioUC.List(c.Request.Context())
	response.Success(c, http.StatusOK, "Portfolios retrieved", portfolios)
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	portfolio, err := h.portfolioUC.Create(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Portfolio created", portfolio)
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	portfolio, err := h.portfolioUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio retrieved", portfolio)
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	var portfolio domain.Portfolio
	if err := c.ShouldBindJSON(&portfolio); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	portfolio.ID = c.Param("id")

	updated, err := h.portfolioUC.Update(c.Request.Context(), portfolio)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio updated", updated)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.portfolioUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio deleted", nil)
}

func (h *PortfolioHandler) Select(c *gin.Context) {
	portfolio, err := h.portfolioUC.SetCurrent(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio selected", portfolio)
}

func (h *PortfolioHandler) Current(c *gin.Context) {
	portfolio, err := h.portfolioUC.Current(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current portfolio retrieved", portfolio)
}

func (h *PortfolioHandler) AddItem(c *gin.Context) {
	var item domain.PortfolioItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	portfolio, err := h.portfolioUC.AddItem(c.Request.Context(), item)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Portfolio item added", portfolio)
}

func (h *PortfolioHandler) UpdateItem(c *gin.Context) {
	var item domain.PortfolioItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	item.ID = c.Param("itemId")

	portfolio, err := h.portfolioUC.UpdateItem(c.Request.Context(), item)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio item updated", portfolio)
}

func (h *PortfolioHandler) RemoveItem(c *gin.Context) {
	portfolio, err := h.portfolioUC.RemoveItem(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Portfolio item removed", portfolio)
}

// UploadItemImage accepts a multipart "image" file, normalizes it to a
// bounded JPEG and attaches its serving URI to the item.
func (h *PortfolioHandler) UploadItemImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.Error(apperror.BadRequest("An image file is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.Error(apperror.BadRequest("Image exceeds the 10MB upload limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(fmt.Errorf("open upload: %w", err)))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		c.Error(apperror.Internal(fmt.Errorf("read upload: %w", err)))
		return
	}

	normalized, err := imaging.Normalize(data, h.maxDim, h.jpegQuality)
	if err != nil {
		c.Error(apperror.BadRequest("Unsupported or corrupt image file"))
		return
	}

	fileName := uuid.NewString() + ".jpg"
	if err := os.WriteFile(filepath.Join(h.imageDir, fileName), normalized, 0o644); err != nil {
		c.Error(apperror.Internal(fmt.Errorf("store image: %w", err)))
		return
	}

	portfolio, err := h.portfolioUC.AttachItemImage(c.Request.Context(), c.Param("itemId"), "/v1/images/"+fileName)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Item image attached", portfolio)
}
