package api

import (
	"net/http"

	"github.com/fittrack/fittrack/internal/instrumentation"
	"github.com/fittrack/fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles what the handlers depend on.
type Services struct {
	Auth      service.AuthService
	Profile   service.ProfileService
	Logs      service.LogService
	Dashboard service.DashboardService
	Export    service.ExportService
}

func SetupRoutes(router *gin.Engine, jwtSecret string, services Services, instr *instrumentation.Instrumentation) {
	userHandler := NewUserHandler(services.Auth, services.Profile)
	logHandler := NewLogHandler(services.Logs)
	dashboardHandler := NewDashboardHandler(services.Dashboard, services.Export)

	router.Use(RequestID(), RequestLogger())
	if instr != nil {
		router.Use(RequestMetrics(instr))
	}
	router.Use(PanicRecovery(instr))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		usersGroup := apiGroup.Group("/users")
		usersGroup.POST("", userHandler.Signup)
		usersGroup.POST("/login", userHandler.Login)
	}

	protected := apiGroup.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		protected.GET("/users/profile", userHandler.GetProfile)
		protected.PUT("/users/profile", userHandler.UpdateProfile)

		protected.GET("/measurements", logHandler.ListMeasurements)
		protected.POST("/measurements", logHandler.AddMeasurement)
		protected.GET("/workouts", logHandler.ListWorkouts)
		protected.POST("/workouts", logHandler.SaveWorkout)
		protected.GET("/diet", logHandler.ListDiet)
		protected.POST("/diet", logHandler.SaveDiet)

		protected.GET("/dashboard", dashboardHandler.Dashboard)
		protected.POST("/export", dashboardHandler.Export)
	}
}
