package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fittrack/fittrack/internal/api"
	"github.com/fittrack/fittrack/internal/cache"
	"github.com/fittrack/fittrack/internal/config"
	"github.com/fittrack/fittrack/internal/instrumentation"
	"github.com/fittrack/fittrack/internal/logging"
	"github.com/fittrack/fittrack/internal/repository/mongo"
	"github.com/fittrack/fittrack/internal/service"
	"github.com/fittrack/fittrack/internal/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// @title FitTrack API
// @version 1.0
// @description Personal fitness tracking: measurements, workouts, diet logs, goals and a progress dashboard.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	// --- Logging ---
	flushLogs := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.Log.File,
		LogToStdout:      cfg.Log.ToStdout,
		LogLevel:         cfg.Log.Level,
		LogFormatJSON:    cfg.Log.JSON,
		Environment:      cfg.Sentry.Environment,
		SentryEnabled:    cfg.Sentry.Enabled,
		SentryDSN:        cfg.Sentry.DSN,
		SentryServerName: cfg.Sentry.ServerName,
	})
	defer flushLogs()
	log.Infoln("starting FitTrack server...")

	if cfg.JWT.Secret == "" {
		log.Fatalln("jwt.secret must be set (JWT_SECRET)")
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Infoln("disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Infof("connected to database %s", cfg.Database.Name)

	// --- Ensure Indexes ---
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), time.Minute)
	mongo.EnsureIndexes(indexCtx, appDB)
	cancelIndexes()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3)
	if err != nil {
		log.Fatalf("failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	measurementRepo := mongo.NewMongoMeasurementRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	dietRepo := mongo.NewMongoDietRepository(appDB)

	// --- Initialize Services ---
	instr := instrumentation.NewInstrumentation("fittrack", "server")
	dashboardCache := cache.NewDashboardCache(cfg.Cache.SizeMB, cfg.Cache.TTL)

	services := api.Services{
		Auth:      service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration),
		Profile:   service.NewProfileService(userRepo, dashboardCache),
		Logs:      service.NewLogService(measurementRepo, workoutRepo, dietRepo, dashboardCache, instr),
		Dashboard: service.NewDashboardService(userRepo, measurementRepo, workoutRepo, dietRepo, dashboardCache, instr),
		Export:    service.NewExportService(userRepo, measurementRepo, workoutRepo, dietRepo, fileStorage, cfg.S3.URLExpiry, instr),
	}

	// --- Initialize Gin Engine ---
	if cfg.Server.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.SetupRoutes(router, cfg.JWT.Secret, services, instr)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infoln("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Infoln("server exiting")
}
