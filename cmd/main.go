package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"taskboard-backend/internal/config"
	"taskboard-backend/internal/features/activities"
	"taskboard-backend/internal/features/boards"
	"taskboard-backend/internal/features/comments"
	"taskboard-backend/internal/features/realtime"
	system_healthcheck "taskboard-backend/internal/features/system/healthcheck"
	"taskboard-backend/internal/features/tasks"
	users_controllers "taskboard-backend/internal/features/users/controllers"
	users_middleware "taskboard-backend/internal/features/users/middleware"
	users_services "taskboard-backend/internal/features/users/services"
	workspaces_controllers "taskboard-backend/internal/features/workspaces/controllers"
	workspaces_services "taskboard-backend/internal/features/workspaces/services"
	env_utils "taskboard-backend/internal/util/env"
	files_utils "taskboard-backend/internal/util/files"
	"taskboard-backend/internal/util/logger"
	tls_utils "taskboard-backend/internal/util/tls"
	_ "taskboard-backend/swagger" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Taskboard Backend API
// @version 1.0
// @description API for the collaborative task board

// @host localhost:4005
// @BasePath /api/v1
// @schemes http
func main() {
	log := logger.GetLogger()

	runMigrations(log)

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	enableCors(ginApp)
	setUpRoutes(ginApp)
	setUpDependencies()

	startServerWithGracefulShutdown(log, ginApp)
}

func setUpRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Mount Swagger UI
	v1.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes (user auth, healthcheck and the websocket
	// endpoint, which authenticates its own token)
	userController := users_controllers.GetUserController()
	userController.RegisterRoutes(v1)
	system_healthcheck.GetHealthcheckController().RegisterRoutes(v1)
	realtime.GetRealtimeController().RegisterRoutes(v1)

	userService := users_services.GetUserService()
	authMiddleware := users_middleware.AuthMiddleware(userService)

	// Protected routes
	protected := v1.Group("")
	protected.Use(authMiddleware)

	userController.RegisterProtectedRoutes(protected)
	workspaces_controllers.GetWorkspaceController().RegisterRoutes(protected)
	workspaces_controllers.GetMembershipController().RegisterRoutes(protected)
	workspaces_controllers.GetInviteController().RegisterRoutes(protected)
	boards.GetBoardController().RegisterRoutes(protected)
	tasks.GetTaskController().RegisterRoutes(protected)
	comments.GetCommentController().RegisterRoutes(protected)
	activities.GetActivityController().RegisterRoutes(protected)
}

// setUpDependencies wires the cross-feature listeners and the realtime
// hub. Workspace deletion listeners run in registration order, so
// comments are removed before tasks, and tasks before boards.
func setUpDependencies() {
	workspaces_services.SetupDependencies()
	comments.SetupDependencies()
	tasks.SetupDependencies()
	boards.SetupDependencies()
	activities.SetupDependencies()
	realtime.SetupDependencies()
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	cfg := config.GetEnv()
	var srv *http.Server
	var httpRedirectSrv *http.Server

	if cfg.EnableHTTPS && cfg.EnvMode == env_utils.EnvModeProduction {
		if err := files_utils.EnsureDirectories([]string{cfg.CertsDir}); err != nil {
			log.Error("Failed to ensure certificates directory", "error", err)
			os.Exit(1)
		}

		certManager := tls_utils.NewCertificateManager(cfg.CertsDir)
		certPath, keyPath, err := certManager.EnsureCertificates()
		if err != nil {
			log.Error("Failed to setup TLS certificates", "error", err)
			os.Exit(1)
		}
		log.Info("TLS certificates ready", "certPath", certPath, "keyPath", keyPath)

		srv = &http.Server{
			Addr:    host + ":" + cfg.HTTPSPort,
			Handler: app,
		}

		go func() {
			log.Info("Starting HTTPS server", "addr", srv.Addr)
			if err := srv.ListenAndServeTLS(certPath, keyPath); err != nil && err != http.ErrServerClosed {
				log.Error("HTTPS listen error:", "error", err)
			}
		}()

		// HTTP to HTTPS redirect server
		httpRedirectSrv = &http.Server{
			Addr: host + ":" + cfg.HTTPPort,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				target := "https://" + r.Host + r.URL.Path
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
			}),
		}

		go func() {
			log.Info("Starting HTTP redirect server", "addr", httpRedirectSrv.Addr)
			if err := httpRedirectSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("HTTP redirect listen error:", "error", err)
			}
		}()

		log.Info("Taskboard backend is running with HTTPS!", "https", "https://localhost:"+cfg.HTTPSPort)
	} else {
		srv = &http.Server{
			Addr:    host + ":" + cfg.HTTPPort,
			Handler: app,
		}

		go func() {
			log.Info("Starting HTTP server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("listen:", "error", err)
			}
		}()

		log.Info("Taskboard backend is running!", "http", "http://localhost:"+cfg.HTTPPort)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// The context is used to inform the server it has 10 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	if httpRedirectSrv != nil {
		if err := httpRedirectSrv.Shutdown(ctx); err != nil {
			log.Error("HTTP redirect server forced to shutdown:", "error", err)
		}
	}

	log.Info("Server gracefully stopped")
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files. So if we changed files, we generate
// new docs, but still need to restart the server to see them.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	cmd := exec.Command("goose", "up")
	cmd.Env = append(
		os.Environ(),
		"GOOSE_DRIVER=postgres",
		"GOOSE_DBSTRING="+config.GetEnv().DatabaseDsn,
	)
	cmd.Dir = "./migrations"

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to run migrations", "error", err, "output", string(output))
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully", "output", string(output))
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
				"Access-Control-Allow-Methods",
				"Access-Control-Allow-Headers",
				"Access-Control-Allow-Origin",
			},
			AllowCredentials: true,
		}))
	}
}
