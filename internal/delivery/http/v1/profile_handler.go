package v1

import (
	"net/http"

	"go-jobhunt-backend/internal/delivery/http/response"
	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
		profile.POST("", handler.Replace)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.Get(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", gin.H{"profile": profile})
}

// Update merges the supplied fields into the stored profile; fields
// absent from the body keep their current values.
func (h *ProfileHandler) Update(c *gin.Context) {
	var upd domain.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.Apply(c, &upd, false)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", gin.H{"profile": profile})
}

// Replace writes the profile as a full document; fields absent from the
// body reset to their defaults.
func (h *ProfileHandler) Replace(c *gin.Context) {
	var upd domain.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.Apply(c, &upd, true)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile saved", gin.H{"profile": profile})
}
