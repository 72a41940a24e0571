package v1

import (
	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/validation"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobUC         domain.JobUsecase
	CompanyUC     domain.CompanyUsecase
	CategoryUC    domain.CategoryUsecase
	ApplicationUC domain.ApplicationUsecase
	SavedJobUC    domain.SavedJobUsecase
	NewsletterUC  domain.NewsletterUsecase
	UserUC        domain.UserUsecase
	HealthUC      usecase.HealthUsecase
	Config        *config.Config
}

var registerBindingOnce sync.Once

// registerBindingValidators installs the custom tags on gin's validator so
// request structs bound with ShouldBindJSON can use them.
func registerBindingValidators() {
	registerBindingOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			validation.RegisterValidators(v)
		}
	})
}

func NewRouter(deps RouterDeps) *gin.Engine {
	registerBindingValidators()

	r := gin.New()

	var origins []string
	rateCfg := middleware.DefaultRateLimitConfig(0, 0)
	if deps.Config != nil {
		origins = deps.Config.AllowedOrigins
		rateCfg = middleware.DefaultRateLimitConfig(deps.Config.RateLimitRPS, deps.Config.RateLimitBurst)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(origins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(rateCfg))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		if deps.HealthUC == nil {
			response.Success(c, http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		response.Success(c, code, status)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewJobHandler(api, deps.JobUC)
	NewCompanyHandler(api, deps.CompanyUC)
	NewCategoryHandler(api, deps.CategoryUC)
	NewApplicationHandler(api, deps.ApplicationUC)
	NewSavedJobHandler(api, deps.SavedJobUC)
	NewNewsletterHandler(api, deps.NewsletterUC)
	NewUserHandler(api, deps.UserUC)

	return r
}
