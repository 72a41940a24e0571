package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUC domain.CategoryUsecase
}

func NewCategoryHandler(api *gin.RouterGroup, categoryUC domain.CategoryUsecase) {
	handler := &CategoryHandler{categoryUC: categoryUC}
	api.GET("/categories", handler.List)
}

// ListCategories godoc
// @Summary      List job categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   domain.JobCategory
// @Failure      500  {object}  response.ErrorBody
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, categories)
}
