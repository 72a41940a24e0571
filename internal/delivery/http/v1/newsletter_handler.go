package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterUC domain.NewsletterUsecase
}

// NewNewsletterHandler registers the newsletter route
func NewNewsletterHandler(api *gin.RouterGroup, newsletterUC domain.NewsletterUsecase) {
	handler := &NewsletterHandler{newsletterUC: newsletterUC}
	api.POST("/newsletter", handler.Subscribe)
}

// Subscribe godoc
// @Summary      Subscribe to the newsletter
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body  body      domain.NewsletterRequest  true  "Email"
// @Success      200   {object}  response.MessageBody
// @Failure      400   {object}  response.ErrorBody
// @Router       /newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req domain.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email is required"))
		return
	}

	if err := h.newsletterUC.Subscribe(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Successfully subscribed to newsletter")
}
