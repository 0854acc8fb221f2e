package api

import (
	"alcyxob/workout-api/internal/service"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys
const (
	ContextSessionIDKey = "workoutSessionID"
	ContextAthleteIDKey = "athleteID"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithServiceError maps a service error onto its HTTP status.
func abortWithServiceError(c *gin.Context, err error) {
	var internal *service.InternalError
	switch {
	case errors.Is(err, service.ErrAthleteNotFound), errors.Is(err, service.ErrWorkoutSessionNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &internal):
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		abortWithError(c, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("ERROR: %s %s: unexpected error: %v", c.Request.Method, c.Request.URL.Path, err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error.")
	}
}

// SessionIDMiddleware parses the :id path parameter as a UUID and stores it in the context.
func SessionIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid workout session ID format.")
			return
		}
		c.Set(ContextSessionIDKey, id)
		c.Next()
	}
}

// AthleteIDMiddleware parses the :athleteId path parameter as an integer and stores it in the context.
func AthleteIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("athleteId"), 10, 64)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid athlete ID format.")
			return
		}
		c.Set(ContextAthleteIDKey, id)
		c.Next()
	}
}

// Helper function to get the session ID from context (used by handlers)
func getSessionIDFromContext(c *gin.Context) (uuid.UUID, error) {
	idRaw, exists := c.Get(ContextSessionIDKey)
	if !exists {
		return uuid.Nil, errors.New("workout session ID not found in context")
	}
	id, ok := idRaw.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("invalid workout session ID type in context")
	}
	return id, nil
}

// Helper function to get the athlete ID from context (used by handlers)
func getAthleteIDFromContext(c *gin.Context) (int64, error) {
	idRaw, exists := c.Get(ContextAthleteIDKey)
	if !exists {
		return 0, errors.New("athlete ID not found in context")
	}
	id, ok := idRaw.(int64)
	if !ok {
		return 0, errors.New("invalid athlete ID type in context")
	}
	return id, nil
}
