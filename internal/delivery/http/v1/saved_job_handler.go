package v1

import (
	"errors"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

func NewSavedJobHandler(api *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	saved := api.Group("/saved-jobs")
	{
		saved.POST("", handler.Save)
		saved.DELETE("", handler.Unsave)
		saved.GET("/user/:userId", handler.ListByUser)
	}
}

type SavedJobRequest struct {
	UserID int64 `json:"userId" binding:"required,gt=0"`
	JobID  int64 `json:"jobId" binding:"required,gt=0"`
}

// UnsaveJobRequest also accepts ids sent as numeric strings.
type UnsaveJobRequest struct {
	UserID numericID `json:"userId" binding:"required,gt=0" swaggertype:"integer"`
	JobID  numericID `json:"jobId" binding:"required,gt=0" swaggertype:"integer"`
}

// SaveJob godoc
// @Summary      Save a job
// @Tags         saved-jobs
// @Accept       json
// @Produce      json
// @Param        body  body      SavedJobRequest  true  "User and job"
// @Success      201   {object}  domain.SavedJob
// @Failure      400   {object}  response.ErrorBody
// @Router       /saved-jobs [post]
func (h *SavedJobHandler) Save(c *gin.Context) {
	var req SavedJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidBody("Invalid saved job data", err))
		return
	}

	saved, err := h.savedJobUC.SaveJob(c.Request.Context(), req.UserID, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, saved)
}

// UnsaveJob godoc
// @Summary      Remove a saved job
// @Description  Idempotent: removing a job that was never saved succeeds.
// @Tags         saved-jobs
// @Accept       json
// @Produce      json
// @Param        body  body      UnsaveJobRequest  true  "User and job"
// @Success      200   {object}  response.MessageBody
// @Failure      400   {object}  response.ErrorBody
// @Router       /saved-jobs [delete]
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	var req UnsaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.Error(invalidBody("userId and jobId are required", err))
		} else {
			c.Error(invalidBody("Invalid saved job data", err))
		}
		return
	}

	if err := h.savedJobUC.UnsaveJob(c.Request.Context(), int64(req.UserID), int64(req.JobID)); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Job unsaved successfully")
}

// ListSavedJobs godoc
// @Summary      List a user's saved jobs
// @Tags         saved-jobs
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {array}   domain.JobWithCompany
// @Failure      400     {object}  response.ErrorBody
// @Failure      500     {object}  response.ErrorBody
// @Router       /saved-jobs/user/{userId} [get]
func (h *SavedJobHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	jobs, err := h.savedJobUC.ListSavedJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, jobs)
}
