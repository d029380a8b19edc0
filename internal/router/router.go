package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"renomester/internal/auth"
	"renomester/internal/config"
	"renomester/internal/errors"
	"renomester/internal/handler"
	"renomester/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	projectHandler *handler.ProjectHandler,
	taskHandler *handler.TaskHandler,
	materialHandler *handler.MaterialHandler,
	costHandler *handler.CostHandler,
	fileHandler *handler.FileHandler,
	statusHandler *handler.StatusHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded payloads are served straight off the storage dir; the path
	// under /files is the opaque locator stored on each file record.
	e.Static("/files", cfg.StoragePath)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			if blacklisted, _ := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID); blacklisted {
				return nil, echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}
			return claims, nil
		},
	}))

	secured.GET("/me", func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return c.JSON(http.StatusOK, claims.Actor())
	})

	// Project routes
	secured.GET("/projects", projectHandler.ListProjects)
	secured.GET("/projects/:id", projectHandler.GetProject)
	secured.POST("/projects", projectHandler.CreateProject, RequireAdmin)
	secured.PUT("/projects/:id", projectHandler.UpdateProject)
	secured.DELETE("/projects/:id", projectHandler.DeleteProject, RequireAdmin)

	// Report route
	secured.GET("/projects/:id/report", reportHandler.GetReport)

	// Task routes
	secured.GET("/projects/:id/tasks", taskHandler.ListTasks)
	secured.POST("/projects/:id/tasks", taskHandler.CreateTask)
	secured.POST("/projects/:id/tasks/move", taskHandler.MoveTask)
	secured.DELETE("/projects/:id/tasks/:taskID", taskHandler.DeleteTask)
	secured.PUT("/tasks/:id", taskHandler.UpdateTask)

	// Material routes
	secured.GET("/projects/:id/materials", materialHandler.ListMaterials)
	secured.POST("/projects/:id/materials", materialHandler.CreateMaterial)
	secured.PUT("/projects/:projectID/materials/:id", materialHandler.UpdateMaterial)
	secured.DELETE("/materials/:id", materialHandler.DeleteMaterial)

	// Cost routes
	secured.GET("/projects/:id/costs", costHandler.ListCosts)
	secured.POST("/projects/:id/costs", costHandler.CreateCost)
	secured.PUT("/projects/:projectID/costs/:id", costHandler.UpdateCost)
	secured.DELETE("/costs/:id", costHandler.DeleteCost)

	// File routes
	secured.GET("/projects/:id/files", fileHandler.ListFiles)
	secured.POST("/projects/:id/files", fileHandler.UploadFiles)
	secured.DELETE("/files/:id", fileHandler.DeleteFile)

	// Status routes
	secured.GET("/statuses", statusHandler.ListStatuses)
	secured.POST("/statuses", statusHandler.AddStatus, RequireAdmin)

	// User routes (admin only)
	secured.GET("/users", userHandler.ListUsers, RequireAdmin)
	secured.GET("/users/:id", userHandler.GetUser)
	secured.POST("/users", userHandler.CreateUser, RequireAdmin)
	secured.PUT("/users/:id", userHandler.UpdateUser, RequireAdmin)
}

// RequireAdmin rejects requests whose token does not carry the admin role.
// The services enforce the same rule; this middleware just fails fast.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get("user").(*auth.Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "admin role required",
				Code:  "ADMIN_ONLY",
			})
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
