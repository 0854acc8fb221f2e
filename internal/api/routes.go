package api

import (
	"alcyxob/workout-api/internal/repository"
	"alcyxob/workout-api/internal/service"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// readinessTimeout bounds the database ping behind /healthz.
const readinessTimeout = 2 * time.Second

func SetupRoutes(
	router *gin.Engine,
	sessionService service.WorkoutSessionService,
	db repository.Pinger,
) {
	sessionHandler := NewWorkoutSessionHandler(sessionService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			log.Printf("ERROR: readiness check failed: %v", err)
			abortWithError(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// --- Workout Session Routes ---
		sessionGroup := apiV1.Group("/workout-sessions")
		{
			// POST /api/v1/workout-sessions
			sessionGroup.POST("", sessionHandler.CreateWorkoutSession)
			// GET /api/v1/workout-sessions
			sessionGroup.GET("", sessionHandler.ListWorkoutSessions)
			// GET /api/v1/workout-sessions/atleta/{athleteId}
			sessionGroup.GET("/atleta/:athleteId", AthleteIDMiddleware(), sessionHandler.ListWorkoutSessionsByAthlete)

			byID := sessionGroup.Group("/:id")
			byID.Use(SessionIDMiddleware())
			{
				byID.GET("", sessionHandler.GetWorkoutSession)
				byID.PATCH("", sessionHandler.UpdateWorkoutSession)
				byID.DELETE("", sessionHandler.DeleteWorkoutSession)
				// PATCH /api/v1/workout-sessions/{id}/realizar
				byID.PATCH("/realizar", sessionHandler.CompleteWorkoutSession)
			}
		}
	}
}
