package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(api *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := api.Group("/applications")
	{
		applications.POST("", handler.Apply)
		applications.GET("/user/:userId", handler.ListByUser)
	}
}

// ApplyRequest is the request payload for applying to a job
type ApplyRequest struct {
	UserID      int64  `json:"userId" binding:"required,gt=0"`
	JobID       int64  `json:"jobId" binding:"required,gt=0"`
	CoverLetter string `json:"coverLetter" binding:"max=5000"`
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submit a pending application. A user can apply to a job once.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application data"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  response.ErrorBody
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidBody("Invalid application data", err))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), req.UserID, req.JobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, app)
}

// ListUserApplications godoc
// @Summary      List a user's applications
// @Tags         applications
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {array}   domain.Application
// @Failure      400     {object}  response.ErrorBody
// @Failure      500     {object}  response.ErrorBody
// @Router       /applications/user/{userId} [get]
func (h *ApplicationHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	apps, err := h.applicationUC.ListUserApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, apps)
}
