package v1

import (
	"net/http"

	"go-cvbuilder-backend/internal/delivery/http/response"
	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(rg *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	cvs := rg.Group("/cvs")
	{
		cvs.GET("", handler.List)
		cvs.POST("", handler.Create)
		cvs.GET("/:id", handler.Get)
		cvs.PUT("/:id", handler.Update)
		cvs.DELETE("/:id", handler.Delete)
		cvs.POST("/:id/select", handler.Select)
	}

	// Routes under /current/cv operate on the selected CV. They live
	// outside /cvs because gin's route tree cannot mix a static
	// "current" segment with the ":id" parameter.
	current := rg.Group("/current/cv")
	{
		current.GET("", handler.Current)
		current.PUT("/personal-info", handler.UpdatePersonalInfo)

		current.POST("/experiences", handler.AddExperience)
		current.PUT("/experiences/:entryId", handler.UpdateExperience)
		current.DELETE("/experiences/:entryId", handler.RemoveExperience)

		current.POST("/education", handler.AddEducation)
		current.PUT("/education/:entryId", handler.UpdateEducation)
		current.DELETE("/education/:entryId", handler.RemoveEducation)

		current.POST("/skills", handler.AddSkill)
		current.PUT("/skills/:entryId", handler.UpdateSkill)
		current.DELETE("/skills/:entryId", handler.RemoveSkill)

		current.POST("/languages", handler.AddLanguage)
		current.PUT("/languages/:entryId", handler.UpdateLanguage)
		current.DELETE("/languages/:entryId", handler.RemoveLanguage)
	}
}

type CreateCVRequest struct {
	PersonalInfo domain.PersonalInfo `json:"personalInfo" binding:"required"`
}

func (h *CVHandler) List(c *gin.Context) {
	cvs := h.cvUC.List(c.Request.Context())
	response.Success(c, http.StatusOK, "CVs retrieved", cvs)
}

func (h *CVHandler) Create(c *gin.Context) {
	var req CreateCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	cv, err := h.cvUC.Create(c.Request.Context(), req.PersonalInfo)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "CV created", cv)
}

func (h *CVHandler) Get(c *gin.Context) {
	cv, err := h.cvUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV retrieved", cv)
}

func (h *CVHandler) Update(c *gin.Context) {
	var cv domain.CV
	if err := c.ShouldBindJSON(&cv); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	cv.ID = c.Param("id")

	updated, err := h.cvUC.Update(c.Request.Context(), cv)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV updated", updated)
}

func (h *CVHandler) Delete(c *gin.Context) {
	if err := h.cvUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV deleted", nil)
}

func (h *CVHandler) Select(c *gin.Context) {
	cv, err := h.cvUC.SetCurrent(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV selected", cv)
}

func (h *CVHandler) Current(c *gin.Context) {
	cv, err := h.cvUC.Current(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current CV retrieved", cv)
}

func (h *CVHandler) UpdatePersonalInfo(c *gin.Context) {
	var info domain.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	cv, err := h.cvUC.UpdatePersonalInfo(c.Request.Context(), info)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Personal info updated", cv)
}

// Experience

func (h *CVHandler) AddExperience(c *gin.Context) {
	var exp domain.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	cv, err := h.cvUC.AddExperience(c.Request.Context(), exp)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added", cv)
}

func (h *CVHandler) UpdateExperience(c *gin.Context) {
	var exp domain.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	exp.ID = c.Param("entryId")

	cv, err := h.cvUC.UpdateExperience(c.Request.Context(), exp)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated", cv)
}

func (h *CVHandler) RemoveExperience(c *gin.Context) {
	cv, err := h.cvUC.RemoveExperience(c.Request.Context(), c.Param("entryId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience removed", cv)
}

// Education

func (h *CVHandler) AddEducation(c *gin.Context) {
	var edu domain.Education
	if err := c.ShouldBindJSON(&edu); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	cv, err := h.cvUC.AddEducation(c.Request.Context(), edu)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education added", cv)
}

func (h *CVHandler) UpdateEducation(c *gin.Context) {
	var edu domain.Education
	if err := c.ShouldBindJSON(&edu); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	edu.ID = c.Param("entryId")

	cv, err := h.cvUC.UpdateEducation(c.Request.Context(), edu)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", cv)
}

func (h *CVHandler) RemoveEducation(c *gin.Context) {
	cv, err := h.cvUC.RemoveEducation(c.Request.Context(), c.Param("entryId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education removed", cv)
}

// Skills

func (h *CVHandler) AddSkill(c *gin.Context) {
	var skill domain.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	cv, err := h.cvUC.AddSkill(c.Request.Context(), skill)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill added", cv)
}

func (h *CVHandler) UpdateSkill(c *gin.Context) {
	var skill domain.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	skill.ID = c.Param("entryId")

	cv, err := h.cvUC.UpdateSkill(c.Request.Context(), skill)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", cv)
}

func (h *CVHandler) RemoveSkill(c *gin.Context) {
	cv, err := h.cvUC.RemoveSkill(c.Request.Context(), c.Param("entryId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill removed", cv)
}

// Languages

func (h *CVHandler) AddLanguage(c *gin.Context) {
	var lang domain.Language
	if err := c.ShouldBindJSON(&lang); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	cv, err := h.cvUC.AddLanguage(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Language added", cv)
}

func (h *CVHandler) UpdateLanguage(c *gin.Context) {
	var lang domain.Language
	if err := c.ShouldBindJSON(&lang); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	lang.ID = c.Param("entryId")

	cv, err := h.cvUC.UpdateLanguage(c.Request.Context(), lang)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Language updated", cv)
}

func (h *CVHandler) RemoveLanguage(c *gin.Context) {
	cv, err := h.cvUC.RemoveLanguage(c.Request.Context(), c.Param("entryId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Language removed", cv)
}
