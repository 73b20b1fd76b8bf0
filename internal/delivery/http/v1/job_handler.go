package v1

import (
	"net/http"

	"go-jobhunt-backend/internal/delivery/http/response"
	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("/save", handler.Save)
		jobs.GET("/saved", handler.ListSaved)
		jobs.DELETE("/saved/:job_id", handler.Delete)
	}
}

func (h *JobHandler) Save(c *gin.Context) {
	var req domain.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.jobUC.Save(c, req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job saved", nil)
}

func (h *JobHandler) ListSaved(c *gin.Context) {
	jobs, err := h.jobUC.ListSaved(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved jobs", gin.H{"jobs": jobs})
}

func (h *JobHandler) Delete(c *gin.Context) {
	jobID := c.Param("job_id")

	if err := h.jobUC.DeleteSaved(c, jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job removed", nil)
}
