package v1

import (
	"net/http"

	"go-jobhunt-backend/internal/delivery/http/response"
	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := protected.Group("/applications")
	{
		apps.POST("", handler.Create)
		apps.GET("", handler.List)
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req domain.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	id, err := h.applicationUC.Create(c, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application created", gin.H{"application_id": id})
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.applicationUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", gin.H{"applications": apps})
}
