package api

import (
	"alcyxob/exercise-tracker/internal/metrics"
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondWithServiceError maps a service error to a status code. Internal
// detail only reaches the operator log, never the response body.
func respondWithServiceError(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrUsernameTaken):
		abortWithError(c, http.StatusConflict, "Username already taken")
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStoreUnavailable), errors.Is(err, service.ErrArchiveFailed):
		log.Printf("ERROR: [%s] %s: %v", getRequestIDFromContext(c), operation, err)
		metrics.StoreErrorsTotal.WithLabelValues(operation).Inc()
		abortWithError(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		log.Printf("ERROR: [%s] %s: %v", getRequestIDFromContext(c), operation, err)
		metrics.StoreErrorsTotal.WithLabelValues(operation).Inc()
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
