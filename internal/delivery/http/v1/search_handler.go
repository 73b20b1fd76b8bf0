package v1

import (
	"net/http"

	"go-jobhunt-backend/internal/delivery/http/response"
	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(r *gin.Engine, searchUC domain.SearchUsecase) {
	handler := &SearchHandler{searchUC: searchUC}

	// Public, mounted at the root rather than under /api; the ledger
	// feed predates the account system and keeps its original path.
	r.POST("/search", handler.Search)
}

// Search returns mock listings and appends the novel ones to the CSV
// ledger. An empty body is fine; every parameter has a default.
func (h *SearchHandler) Search(c *gin.Context) {
	params := domain.SearchParams{Remote: true}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&params); err != nil {
			c.Error(apperror.BadRequest("Invalid request body"))
			return
		}
	}

	result, err := h.searchUC.Search(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search complete", result)
}
