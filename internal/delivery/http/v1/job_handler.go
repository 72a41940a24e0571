package v1

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(api *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/featured", handler.Featured)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("", handler.Create)
	}
}

type CreateJobRequest struct {
	Title           string   `json:"title" binding:"required,no_blank"`
	Description     string   `json:"description" binding:"required,no_blank"`
	CompanyID       int64    `json:"companyId" binding:"required,gt=0"`
	Category        string   `json:"category" binding:"required,no_blank"`
	Type            string   `json:"type" binding:"required,oneof=full-time part-time freelance contract internship"`
	ExperienceLevel string   `json:"experienceLevel" binding:"required,oneof=entry mid senior lead executive"`
	Location        string   `json:"location" binding:"required,no_blank"`
	RemoteType      string   `json:"remoteType" binding:"required,oneof=fully-remote hybrid timezone-specific office"`
	SalaryMin       *int     `json:"salaryMin" binding:"omitempty,gte=0"`
	SalaryMax       *int     `json:"salaryMax" binding:"omitempty,gte=0"`
	Currency        string   `json:"currency" binding:"omitempty,len=3"`
	Skills          []string `json:"skills" binding:"required,dive,no_blank"`
	Featured        bool     `json:"featured"`
	Urgent          bool     `json:"urgent"`
}

// CreateJob godoc
// @Summary      Create a new job
// @Description  Create a new job posting for an existing company
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  domain.Job
// @Failure      400  {object}  response.ErrorBody
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidBody("Invalid job data", err))
		return
	}

	job := &domain.Job{
		Title:           req.Title,
		Description:     req.Description,
		CompanyID:       req.CompanyID,
		Category:        req.Category,
		Type:            req.Type,
		ExperienceLevel: req.ExperienceLevel,
		Location:        req.Location,
		RemoteType:      req.RemoteType,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Currency:        strings.ToUpper(req.Currency),
		Skills:          req.Skills,
		Featured:        req.Featured,
		Urgent:          req.Urgent,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, job)
}

// ListJobs godoc
// @Summary      Search jobs
// @Description  List jobs matching every supplied filter, newest first. The salary filter applies only when both bounds are given and keeps jobs whose whole range lies inside them.
// @Tags         jobs
// @Produce      json
// @Param        category         query  string  false  "Exact category"
// @Param        type             query  string  false  "Employment type"
// @Param        experienceLevel  query  string  false  "Experience level"
// @Param        remoteType       query  string  false  "Remote type"
// @Param        salaryMin        query  int     false  "Lower salary bound"
// @Param        salaryMax        query  int     false  "Upper salary bound"
// @Param        search           query  string  false  "Substring of title, description or a skill"
// @Success      200  {array}   domain.JobWithCompany
// @Failure      500  {object}  response.ErrorBody
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), parseJobFilter(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, jobs)
}

// FeaturedJobs godoc
// @Summary      List featured jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {array}   domain.JobWithCompany
// @Failure      500  {object}  response.ErrorBody
// @Router       /jobs/featured [get]
func (h *JobHandler) Featured(c *gin.Context) {
	jobs, err := h.jobUC.ListFeaturedJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, jobs)
}

// GetJobDetails godoc
// @Summary      Get job details
// @Description  Get a job with its company
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  domain.JobWithCompany
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, job)
}

// parseJobFilter reads the optional filters from the query string. Salary
// bounds that are missing, malformed or not positive are ignored.
func parseJobFilter(c *gin.Context) domain.JobFilter {
	return domain.JobFilter{
		Category:        c.Query("category"),
		Type:            c.Query("type"),
		ExperienceLevel: c.Query("experienceLevel"),
		RemoteType:      c.Query("remoteType"),
		SalaryMin:       positiveIntQuery(c, "salaryMin"),
		SalaryMax:       positiveIntQuery(c, "salaryMax"),
		Search:          c.Query("search"),
	}
}

func positiveIntQuery(c *gin.Context, key string) *int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}
