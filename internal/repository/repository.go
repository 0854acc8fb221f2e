package repository

import (
	"alcyxob/workout-api/internal/domain" // Import our defined domain models
	"context"

	"github.com/google/uuid"
)

// Error constants for repository layer
var (
	ErrNotFound   = RepositoryError("not found")
	ErrForeignKey = RepositoryError("referenced athlete does not exist")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AthleteRepository is the read side of the athlete collection the sessions belong to.
type AthleteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Athlete, error)
}

// WorkoutSessionRepository defines the interface for interacting with workout session data.
// Every method is a single unit of work: it is committed or not applied at all.
type WorkoutSessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error)
	List(ctx context.Context) ([]domain.WorkoutSession, error)
	ListByAthleteID(ctx context.Context, athleteID int64) ([]domain.WorkoutSession, error)
	// Update overwrites the mutable fields of the stored session. AthleteID,
	// CreatedAt and ID are never changed.
	Update(ctx context.Context, session *domain.WorkoutSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Pinger is implemented by backends that can report whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
