package main

import (
	"context"
	"errors"
	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/seed"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// repositories groups one storage backend's implementations.
type repositories struct {
	users        domain.UserRepository
	companies    domain.CompanyRepository
	jobs         domain.JobRepository
	applications domain.ApplicationRepository
	savedJobs    domain.SavedJobRepository
	categories   domain.CategoryRepository
	newsletter   domain.NewsletterRepository
}

// @title           Job Board API
// @version         1.0
// @description     Job listings, companies, applications and saved jobs.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "postgres", cfg.UsePostgres())

	ctx := context.Background()

	// 3. Setup Storage
	var (
		repos   repositories
		pinger  usecase.Pinger
		isEmpty = true
	)
	if cfg.UsePostgres() {
		dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		if err := postgres.Migrate(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}
		if isEmpty, err = postgres.IsEmpty(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to inspect database", "error", err)
			os.Exit(1)
		}

		pinger = dbPool
		repos = repositories{
			users:        postgres.NewUserRepository(dbPool),
			companies:    postgres.NewCompanyRepository(dbPool),
			jobs:         postgres.NewJobRepository(dbPool),
			applications: postgres.NewApplicationRepository(dbPool),
			savedJobs:    postgres.NewSavedJobRepository(dbPool),
			categories:   postgres.NewCategoryRepository(dbPool),
			newsletter:   postgres.NewNewsletterRepository(dbPool),
		}
	} else {
		store := memory.NewStore()
		repos = repositories{
			users:        memory.NewUserRepository(store),
			companies:    memory.NewCompanyRepository(store),
			jobs:         memory.NewJobRepository(store),
			applications: memory.NewApplicationRepository(store),
			savedJobs:    memory.NewSavedJobRepository(store),
			categories:   memory.NewCategoryRepository(store),
			newsletter:   memory.NewNewsletterRepository(store),
		}
	}

	// 4. Setup Email Service
	var mailer email.Sender
	if emailService := email.NewEmailService(cfg); emailService.IsConfigured() {
		mailer = emailService
	} else {
		logger.Log.Warn("Email service not configured - newsletter confirmations are disabled")
	}

	// 5. Setup UseCases
	validate := validation.New()
	companyUC := usecase.NewCompanyUsecase(repos.companies)
	categoryUC := usecase.NewCategoryUsecase(repos.categories)
	jobUC := usecase.NewJobUsecase(repos.jobs, repos.companies, validate)
	applicationUC := usecase.NewApplicationUsecase(repos.applications, repos.jobs)
	savedJobUC := usecase.NewSavedJobUsecase(repos.savedJobs, repos.jobs)
	newsletterUC := usecase.NewNewsletterUsecase(repos.newsletter, mailer, validate)
	userUC := usecase.NewUserUsecase(repos.users, validate)
	healthUC := usecase.NewHealthUsecase(pinger)

	// 6. Seed demo data into an empty store
	if cfg.SeedEnabled && isEmpty {
		if err := loadSeed(ctx, cfg.SeedFile, seed.Deps{Companies: companyUC, Categories: categoryUC, Jobs: jobUC}); err != nil {
			logger.Log.Error("Failed to seed catalog", "error", err)
			os.Exit(1)
		}
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:         jobUC,
		CompanyUC:     companyUC,
		CategoryUC:    categoryUC,
		ApplicationUC: applicationUC,
		SavedJobUC:    savedJobUC,
		NewsletterUC:  newsletterUC,
		UserUC:        userUC,
		HealthUC:      healthUC,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func loadSeed(ctx context.Context, path string, deps seed.Deps) error {
	catalog, err := seed.Load(path, validation.New())
	if err != nil {
		return err
	}
	sum, err := catalog.Apply(ctx, deps)
	if err != nil {
		return err
	}
	logger.Log.Info("Seed catalog loaded", "companies", sum.Companies, "categories", sum.Categories, "jobs", sum.Jobs)
	return nil
}
