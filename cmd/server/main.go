package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "renomester/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"renomester/internal/auth"
	"renomester/internal/cache"
	"renomester/internal/config"
	"renomester/internal/db"
	"renomester/internal/handler"
	"renomester/internal/model"
	"renomester/internal/repository"
	"renomester/internal/router"
	"renomester/internal/service"
	"renomester/internal/storage"
)

// @title RenoMester API
// @version 1.0
// @description Renovation project management API with tasks, materials, costs, file attachments and PDF data sheets.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.New(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.AppFile{},
			&model.Cost{},
			&model.Material{},
			&model.Task{},
			&model.Project{},
			&model.CustomStatus{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CustomStatus{},
		&model.Project{},
		&model.Task{},
		&model.Material{},
		&model.Cost{},
		&model.AppFile{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	disk, err := storage.NewDisk(cfg.StoragePath)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	materialRepo := repository.NewMaterialRepository(gormDB)
	costRepo := repository.NewCostRepository(gormDB)
	fileRepo := repository.NewFileRepository(gormDB)
	statusRepo := repository.NewStatusRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo, taskRepo, materialRepo, costRepo, fileRepo, statusRepo, disk, cacheClient)
	taskService := service.NewTaskService(taskRepo, projectRepo)
	materialService := service.NewMaterialService(materialRepo, projectRepo)
	costService := service.NewCostService(costRepo, projectRepo)
	fileService := service.NewFileService(fileRepo, projectRepo, disk)
	statusService := service.NewStatusService(statusRepo)
	reportService := service.NewReportService(projectRepo, taskRepo, materialRepo, costRepo)

	// An empty status registry would reject every project create
	if err := statusService.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("seed default statuses: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	materialHandler := handler.NewMaterialHandler(materialService)
	costHandler := handler.NewCostHandler(costService)
	fileHandler := handler.NewFileHandler(fileService)
	statusHandler := handler.NewStatusHandler(statusService)
	reportHandler := handler.NewReportHandler(reportService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		tokenStore,
		authHandler,
		userHandler,
		projectHandler,
		taskHandler,
		materialHandler,
		costHandler,
		fileHandler,
		statusHandler,
		reportHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
