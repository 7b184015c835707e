package api

import (
	"alcyxob/exercise-tracker/internal/metrics"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler holds the user service dependency for exercise routes.
type ExerciseHandler struct {
	userService service.UserService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(userService service.UserService) *ExerciseHandler {
	return &ExerciseHandler{userService: userService}
}

// --- DTOs for API ---

// AddExerciseRequest accepts form or JSON bodies. Nothing here is
// rejected: bad dates default to today and bad durations become null.
type AddExerciseRequest struct {
	Description FormValue `form:"description" json:"description"`
	Duration    FormValue `form:"duration" json:"duration"`
	Date        FormValue `form:"date" json:"date"`
}

// ExerciseResponse is the user plus the exercise just added.
type ExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    *int   `json:"duration"`
	Description string `json:"description"`
}

// --- Handler Methods ---

// AddExercise godoc
// @Summary Log an exercise for a user
// @Tags Exercises
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param _id path string true "User ID"
// @Param description formData string true "Description"
// @Param duration formData string true "Duration in minutes"
// @Param date formData string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} ExerciseResponse
// @Failure 404 {object} gin.H "User not found"
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /users/{_id}/exercises [post]
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, exercise, err := h.userService.AddExercise(c.Request.Context(), userID, service.ExerciseInput{
		Description: string(req.Description),
		Duration:    string(req.Duration),
		Date:        string(req.Date),
	})
	if err != nil {
		respondWithServiceError(c, "add exercise", err)
		return
	}

	metrics.ExercisesLoggedTotal.Inc()
	c.JSON(http.StatusOK, ExerciseResponse{
		ID:          user.ID.Hex(),
		Username:    user.Username,
		Date:        service.FormatCalendarDate(exercise.Date),
		Duration:    exercise.IntDuration(),
		Description: exercise.Description,
	})
}

// GetLogs godoc
// @Summary Get a user's exercise log
// @Description Newest first. limit selects the first N stored exercises;
// @Description from and to (YYYY-MM-DD) filter only when both are present.
// @Tags Exercises
// @Produce json
// @Param _id path string true "User ID"
// @Param limit query int false "Maximum number of entries"
// @Param from query string false "Inclusive lower date bound"
// @Param to query string false "Inclusive upper date bound"
// @Success 200 {object} domain.ExerciseLog
// @Failure 404 {object} gin.H "User not found"
// @Failure 503 {object} gin.H "Store unavailable"
// @Router /users/{_id}/logs [get]
func (h *ExerciseHandler) GetLogs(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	q := service.LogQuery{
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	if raw, present := c.GetQuery("limit"); present && raw != "" {
		limit := service.ParseLimit(raw)
		q.Limit = &limit
	}

	exerciseLog, err := h.userService.GetExerciseLog(c.Request.Context(), userID, q)
	if err != nil {
		respondWithServiceError(c, "get exercise log", err)
		return
	}

	c.JSON(http.StatusOK, exerciseLog)
}

// userIDParam parses the :_id path segment. Anything that is not an
// ObjectID cannot name a user, so it is answered with 404.
func userIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	userID, err := primitive.ObjectIDFromHex(c.Param("_id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "User not found")
		return primitive.NilObjectID, false
	}
	return userID, true
}
