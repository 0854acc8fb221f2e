package api

import (
	"alcyxob/workout-api/internal/domain"
	"alcyxob/workout-api/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// WorkoutSessionHandler holds the workout session service dependency.
type WorkoutSessionHandler struct {
	sessionService service.WorkoutSessionService
}

// NewWorkoutSessionHandler creates a new WorkoutSessionHandler.
func NewWorkoutSessionHandler(sessionService service.WorkoutSessionService) *WorkoutSessionHandler {
	return &WorkoutSessionHandler{sessionService: sessionService}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreateWorkoutSessionRequest defines the expected JSON for creating a workout session.
type CreateWorkoutSessionRequest struct {
	Name            string           `json:"name" binding:"required,max=100"`
	Description     *string          `json:"description"`
	ScheduledAt     domain.Timestamp `json:"scheduled_at"` // ISO 8601, e.g. "2024-01-15T14:00:00"; no offset means UTC
	DurationMinutes int              `json:"duration_minutes" binding:"required,gt=0"`
	Notes           *string          `json:"notes"`
	AthleteID       int64            `json:"athlete_id" binding:"required"`
}

// WorkoutSessionResponse is the DTO for returning workout session details.
type WorkoutSessionResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Completed       bool      `json:"completed"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	AthleteID       int64     `json:"athlete_id"`
}

// MapWorkoutSessionToResponse converts a domain.WorkoutSession to its response DTO.
func MapWorkoutSessionToResponse(s *domain.WorkoutSession) WorkoutSessionResponse {
	if s == nil {
		return WorkoutSessionResponse{}
	}
	return WorkoutSessionResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		Description:     s.Description,
		ScheduledAt:     s.ScheduledAt,
		DurationMinutes: s.DurationMinutes,
		Completed:       s.Completed,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		AthleteID:       s.AthleteID,
	}
}

// MapWorkoutSessionsToResponse converts a slice of sessions; the result is never nil.
func MapWorkoutSessionsToResponse(sessions []domain.WorkoutSession) []WorkoutSessionResponse {
	responses := make([]WorkoutSessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = MapWorkoutSessionToResponse(&sessions[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateWorkoutSession godoc
// @Summary Create a workout session
// @Tags WorkoutSessions
// @Accept json
// @Produce json
// @Param session body CreateWorkoutSessionRequest true "Workout session details"
// @Success 201 {object} WorkoutSessionResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "Athlete not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workout-sessions [post]
func (h *WorkoutSessionHandler) CreateWorkoutSession(c *gin.Context) {
	var req CreateWorkoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.sessionService.Create(c.Request.Context(), service.CreateWorkoutSessionInput{
		AthleteID:       req.AthleteID,
		Name:            req.Name,
		Description:     req.Description,
		ScheduledAt:     req.ScheduledAt.Time,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapWorkoutSessionToResponse(session))
}

// ListWorkoutSessions godoc
// @Summary List all workout sessions
// @Tags WorkoutSessions
// @Produce json
// @Success 200 {array} WorkoutSessionResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workout-sessions [get]
func (h *WorkoutSessionHandler) ListWorkoutSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListAll(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionsToResponse(sessions))
}

// ListWorkoutSessionsByAthlete godoc
// @Summary List the workout sessions of one athlete
// @Tags WorkoutSessions
// @Produce json
// @Param athleteId path int true "Athlete ID"
// @Success 200 {array} WorkoutSessionResponse
// @Failure 400 {object} gin.H "Invalid athlete ID"
// @Failure 404 {object} gin.H "Athlete not found"
// @Router /workout-sessions/atleta/{athleteId} [get]
func (h *WorkoutSessionHandler) ListWorkoutSessionsByAthlete(c *gin.Context) {
	athleteID, err := getAthleteIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	sessions, err := h.sessionService.ListByAthlete(c.Request.Context(), athleteID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionsToResponse(sessions))
}

// GetWorkoutSession godoc
// @Summary Get a workout session by ID
// @Tags WorkoutSessions
// @Produce json
// @Param id path string true "Workout session UUID"
// @Success 200 {object} WorkoutSessionResponse
// @Failure 400 {object} gin.H "Invalid ID"
// @Failure 404 {object} gin.H "Workout session not found"
// @Router /workout-sessions/{id} [get]
func (h *WorkoutSessionHandler) GetWorkoutSession(c *gin.Context) {
	id, err := getSessionIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionToResponse(session))
}

// UpdateWorkoutSession godoc
// @Summary Partially update a workout session
// @Description Only the fields present in the body are changed. description and notes accept null.
// @Tags WorkoutSessions
// @Accept json
// @Produce json
// @Param id path string true "Workout session UUID"
// @Param patch body domain.WorkoutSessionPatch true "Fields to change"
// @Success 200 {object} WorkoutSessionResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Workout session not found"
// @Router /workout-sessions/{id} [patch]
func (h *WorkoutSessionHandler) UpdateWorkoutSession(c *gin.Context) {
	id, err := getSessionIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var patch domain.WorkoutSessionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.sessionService.PartialUpdate(c.Request.Context(), id, patch)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionToResponse(session))
}

// CompleteWorkoutSession godoc
// @Summary Mark a workout session as completed
// @Tags WorkoutSessions
// @Produce json
// @Param id path string true "Workout session UUID"
// @Success 200 {object} WorkoutSessionResponse
// @Failure 404 {object} gin.H "Workout session not found"
// @Router /workout-sessions/{id}/realizar [patch]
func (h *WorkoutSessionHandler) CompleteWorkoutSession(c *gin.Context) {
	id, err := getSessionIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.MarkCompleted(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionToResponse(session))
}

// DeleteWorkoutSession godoc
// @Summary Delete a workout session
// @Tags WorkoutSessions
// @Param id path string true "Workout session UUID"
// @Success 204
// @Failure 404 {object} gin.H "Workout session not found"
// @Router /workout-sessions/{id} [delete]
func (h *WorkoutSessionHandler) DeleteWorkoutSession(c *gin.Context) {
	id, err := getSessionIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
