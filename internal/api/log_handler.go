package api

import (
	"fmt"
	"net/http"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// LogHandler serves the measurement, workout and diet collections.
type LogHandler struct {
	logService service.LogService
}

func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// ListMeasurements godoc
// @Summary List my measurements
// @Description Newest first.
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Measurement
// @Router /measurements [get]
func (h *LogHandler) ListMeasurements(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	list, err := h.logService.ListMeasurements(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve measurements.")
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddMeasurement godoc
// @Summary Record a measurement
// @Tags Logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param measurement body domain.Measurement true "Measurement"
// @Success 201 {object} domain.Measurement
// @Failure 400 {object} gin.H "Invalid input"
// @Router /measurements [post]
func (h *LogHandler) AddMeasurement(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	var req domain.Measurement
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	saved, err := h.logService.AddMeasurement(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, err, "Failed to save measurement.")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ListWorkouts godoc
// @Summary List my workout logs
// @Description Newest date first.
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.WorkoutLog
// @Router /workouts [get]
func (h *LogHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	list, err := h.logService.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, list)
}

// SaveWorkout godoc
// @Summary Save the workout for a date
// @Description Replaces an existing log for the same date.
// @Tags Logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body domain.WorkoutLog true "Workout"
// @Success 200 {object} domain.WorkoutLog "Replaced"
// @Success 201 {object} domain.WorkoutLog "Created"
// @Failure 400 {object} gin.H "Invalid input"
// @Router /workouts [post]
func (h *LogHandler) SaveWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	var req domain.WorkoutLog
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	saved, created, err := h.logService.SaveWorkout(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, err, "Failed to save workout.")
		return
	}
	c.JSON(savedStatus(created), saved)
}

// ListDiet godoc
// @Summary List my diet logs
// @Description Newest date first.
// @Tags Logs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.DietLog
// @Router /diet [get]
func (h *LogHandler) ListDiet(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	list, err := h.logService.ListDiet(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve diet logs.")
		return
	}
	c.JSON(http.StatusOK, list)
}

// SaveDiet godoc
// @Summary Save the diet log for a date
// @Description Replaces an existing log for the same date. The score is computed by the server.
// @Tags Logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param diet body domain.DietLog true "Diet log"
// @Success 200 {object} domain.DietLog "Replaced"
// @Success 201 {object} domain.DietLog "Created"
// @Failure 400 {object} gin.H "Invalid input"
// @Router /diet [post]
func (h *LogHandler) SaveDiet(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}
	var req domain.DietLog
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	saved, created, err := h.logService.SaveDiet(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, err, "Failed to save diet log.")
		return
	}
	c.JSON(savedStatus(created), saved)
}

func savedStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}
