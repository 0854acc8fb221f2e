// internal/domain/workout_session.go
package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNameLength is the longest workout session name accepted, in characters.
const MaxNameLength = 100

// ErrInvalidWorkoutSession is wrapped by every validation failure reported here.
var ErrInvalidWorkoutSession = errors.New("invalid workout session")

// WorkoutSession is a single scheduled training session owned by an Athlete.
type WorkoutSession struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Completed       bool      `json:"completed"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	AthleteID       int64     `json:"athlete_id"` // Set once at creation
}

// NewWorkoutSession builds a session ready to be persisted: fresh ID,
// creation time in UTC and not yet completed. Both timestamps are stored in
// UTC at millisecond precision.
func NewWorkoutSession(athleteID int64, name string, description *string, scheduledAt time.Time, durationMinutes int, notes *string) *WorkoutSession {
	return &WorkoutSession{
		ID:              uuid.New(),
		Name:            name,
		Description:     description,
		ScheduledAt:     normalizeTime(scheduledAt),
		DurationMinutes: durationMinutes,
		Completed:       false,
		Notes:           notes,
		CreatedAt:       normalizeTime(time.Now()),
		AthleteID:       athleteID,
	}
}

// Validate checks the field-level rules of a session.
func (s *WorkoutSession) Validate() error {
	if err := validateName(s.Name); err != nil {
		return err
	}
	if s.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduled_at is required", ErrInvalidWorkoutSession)
	}
	return validateDuration(s.DurationMinutes)
}

// MarkCompleted flags the session as done. Calling it again is a no-op.
func (s *WorkoutSession) MarkCompleted() {
	s.Completed = true
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidWorkoutSession)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidWorkoutSession, MaxNameLength)
	}
	return nil
}

func validateDuration(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be greater than 0", ErrInvalidWorkoutSession)
	}
	return nil
}
