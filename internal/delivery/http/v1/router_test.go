package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/seed"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	companyRepo := memory.NewCompanyRepository(store)
	jobRepo := memory.NewJobRepository(store)
	validate := validation.New()

	companyUC := usecase.NewCompanyUsecase(companyRepo)
	categoryUC := usecase.NewCategoryUsecase(memory.NewCategoryRepository(store))
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, validate)

	catalog, err := seed.Load("", validate)
	require.NoError(t, err)
	_, err = catalog.Apply(context.Background(), seed.Deps{Companies: companyUC, Categories: categoryUC, Jobs: jobUC})
	require.NoError(t, err)

	return v1.NewRouter(v1.RouterDeps{
		JobUC:         jobUC,
		CompanyUC:     companyUC,
		CategoryUC:    categoryUC,
		ApplicationUC: usecase.NewApplicationUsecase(memory.NewApplicationRepository(store), jobRepo),
		SavedJobUC:    usecase.NewSavedJobUsecase(memory.NewSavedJobRepository(store), jobRepo),
		NewsletterUC:  usecase.NewNewsletterUsecase(memory.NewNewsletterRepository(store), nil, validate),
		UserUC:        usecase.NewUserUsecase(memory.NewUserRepository(store), validate),
		HealthUC:      usecase.NewHealthUsecase(nil),
	})
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
	RequestID string `json:"requestId"`
}

type jobBody struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	SalaryMin        *int     `json:"salaryMin"`
	Currency         string   `json:"currency"`
	Skills           []string `json:"skills"`
	ApplicationCount int      `json:"applicationCount"`
	Company          *struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"company"`
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSearchJobsByCategory(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/jobs?category="+url.QueryEscape("Yazılım Geliştirme"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	jobs := decode[[]jobBody](t, w)
	require.Len(t, jobs, 3)
	for _, j := range jobs {
		assert.Equal(t, "Yazılım Geliştirme", j.Category)
		require.NotNil(t, j.Company)
		assert.NotEmpty(t, j.Company.Name)
	}

	w = do(t, r, http.MethodGet, "/api/jobs?category=Nonexistent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSearchJobsSalaryAndText(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/jobs?salaryMin=50000&salaryMax=150000&search=react", nil)
	require.Equal(t, http.StatusOK, w.Code)
	titles := []string{}
	for _, j := range decode[[]jobBody](t, w) {
		titles = append(titles, j.Title)
	}
	assert.ElementsMatch(t, []string{"Senior React Developer", "Frontend Developer"}, titles)

	// Invalid bounds are ignored rather than rejected.
	w = do(t, r, http.MethodGet, "/api/jobs?salaryMin=abc&salaryMax=-5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]jobBody](t, w), 6)
}

func TestFeaturedAndDetails(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/jobs/featured", nil)
	require.Equal(t, http.StatusOK, w.Code)
	featured := decode[[]jobBody](t, w)
	require.Len(t, featured, 1)
	assert.Equal(t, "Product Designer", featured[0].Title)

	w = do(t, r, http.MethodGet, "/api/jobs/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	job := decode[jobBody](t, w)
	assert.Equal(t, "TechFlow Solutions", job.Company.Name)

	w = do(t, r, http.MethodGet, "/api/jobs/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found", decode[errorBody](t, w).Message)

	w = do(t, r, http.MethodGet, "/api/jobs/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ID format", decode[errorBody](t, w).Message)
}

func TestCreateJob(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/jobs", map[string]any{"title": "Go Developer"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, "Invalid job data", body.Message)
	assert.NotEmpty(t, body.Errors)
	assert.NotEmpty(t, body.RequestID)

	valid := map[string]any{
		"title":           "Go Developer",
		"description":     "Build APIs",
		"companyId":       3,
		"category":        "Yazılım Geliştirme",
		"type":            "contract",
		"experienceLevel": "mid",
		"location":        "Remote",
		"remoteType":      "timezone-specific",
		"salaryMin":       0,
		"skills":          []string{"Go"},
	}
	w = do(t, r, http.MethodPost, "/api/jobs", valid)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	job := decode[jobBody](t, w)
	assert.Equal(t, int64(7), job.ID)
	assert.Equal(t, "USD", job.Currency)
	assert.Nil(t, job.SalaryMin)

	valid["companyId"] = 42
	w = do(t, r, http.MethodPost, "/api/jobs", valid)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "companyId", decode[errorBody](t, w).Errors[0].Field)
}

func TestCreatedJobReadsBack(t *testing.T) {
	r := newTestRouter(t)

	input := map[string]any{
		"title":           "Platform Engineer",
		"description":     "Own the deployment pipeline",
		"companyId":       2,
		"category":        "Yazılım Geliştirme",
		"type":            "full-time",
		"experienceLevel": "senior",
		"location":        "Berlin",
		"remoteType":      "hybrid",
		"salaryMin":       60000,
		"salaryMax":       90000,
		"currency":        "EUR",
		"skills":          []string{"Go", "Kubernetes"},
		"featured":        true,
		"urgent":          true,
	}
	w := do(t, r, http.MethodPost, "/api/jobs", input)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/jobs/%v", created["id"]), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[map[string]any](t, w)

	// compare through JSON so numbers have the same Go type on both sides
	raw, err := json.Marshal(input)
	require.NoError(t, err)
	var want map[string]any
	require.NoError(t, json.Unmarshal(raw, &want))
	for field, value := range want {
		assert.Equal(t, value, got[field], field)
	}
	assert.Equal(t, created["id"], got["id"])
	assert.Equal(t, float64(0), got["applicationCount"])
	assert.NotEmpty(t, got["createdAt"])

	w = do(t, r, http.MethodGet, "/api/companies/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, decode[map[string]any](t, w), got["company"])
}

func TestApplications(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/applications", map[string]any{"userId": 1, "jobId": 4, "coverLetter": "Hello"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	app := decode[map[string]any](t, w)
	assert.Equal(t, "pending", app["status"])

	w = do(t, r, http.MethodPost, "/api/applications", map[string]any{"userId": 1, "jobId": 4})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You have already applied to this job", decode[errorBody](t, w).Message)

	w = do(t, r, http.MethodPost, "/api/applications", map[string]any{"userId": 1, "jobId": 400})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Job does not exist", decode[errorBody](t, w).Message)

	w = do(t, r, http.MethodPost, "/api/applications", map[string]any{"userId": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "jobId", decode[errorBody](t, w).Errors[0].Field)

	w = do(t, r, http.MethodGet, "/api/jobs/4", nil)
	assert.Equal(t, 1, decode[jobBody](t, w).ApplicationCount)

	w = do(t, r, http.MethodGet, "/api/applications/user/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, r, http.MethodGet, "/api/applications/user/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSavedJobs(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/saved-jobs", map[string]any{"userId": 3, "jobId": 5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/saved-jobs", map[string]any{"userId": 3, "jobId": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Job is already saved", decode[errorBody](t, w).Message)

	w = do(t, r, http.MethodGet, "/api/saved-jobs/user/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	saved := decode[[]jobBody](t, w)
	require.Len(t, saved, 1)
	assert.Equal(t, "Frontend Developer", saved[0].Title)
	assert.NotNil(t, saved[0].Company)

	for i := 0; i < 2; i++ {
		w = do(t, r, http.MethodDelete, "/api/saved-jobs", map[string]any{"userId": 3, "jobId": 5})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Job unsaved successfully"}`, w.Body.String())
	}

	w = do(t, r, http.MethodDelete, "/api/saved-jobs", map[string]any{"userId": 3})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "userId and jobId are required", decode[errorBody](t, w).Message)

	w = do(t, r, http.MethodPost, "/api/saved-jobs", map[string]any{"userId": 3, "jobId": 6})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = do(t, r, http.MethodDelete, "/api/saved-jobs", map[string]any{"userId": "3", "jobId": "6"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodDelete, "/api/saved-jobs", map[string]any{"userId": "three", "jobId": 6})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, "Invalid saved job data", body.Message)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "must be of type number", body.Errors[0].Message)

	w = do(t, r, http.MethodGet, "/api/saved-jobs/user/3", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCompaniesAndCategories(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/companies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	companies := decode[[]map[string]any](t, w)
	require.Len(t, companies, 4)
	assert.Equal(t, float64(2), companies[0]["jobCount"])

	w = do(t, r, http.MethodGet, "/api/companies/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Creative Studio", decode[map[string]any](t, w)["name"])

	w = do(t, r, http.MethodGet, "/api/companies/77", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 6)
}

func TestNewsletter(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/newsletter", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is required", decode[errorBody](t, w).Message)

	w = do(t, r, http.MethodPost, "/api/newsletter", map[string]any{"email": "nope"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is not valid", decode[errorBody](t, w).Message)

	for i := 0; i < 2; i++ {
		w = do(t, r, http.MethodPost, "/api/newsletter", map[string]any{"email": "reader@example.com"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Successfully subscribed to newsletter"}`, w.Body.String())
	}
}

func TestUsers(t *testing.T) {
	r := newTestRouter(t)

	form := map[string]any{
		"username": "mehmet",
		"email":    "mehmet@example.com",
		"password": "s3cure-passphrase",
		"fullName": "Mehmet Demir",
	}
	w := do(t, r, http.MethodPost, "/api/users/register", form)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := decode[map[string]any](t, w)
	assert.NotContains(t, user, "password")
	assert.Equal(t, float64(1), user["id"])

	w = do(t, r, http.MethodPost, "/api/users/register", form)
	require.Equal(t, http.StatusBadRequest, w.Code)

	form["username"] = "x"
	form["email"] = "not-an-email"
	w = do(t, r, http.MethodPost, "/api/users/register", form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := []string{}
	for _, e := range decode[errorBody](t, w).Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"username", "email"}, fields)

	w = do(t, r, http.MethodGet, "/api/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mehmet", decode[map[string]any](t, w)["username"])

	w = do(t, r, http.MethodGet, "/api/users/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
