package service

import (
	"alcyxob/workout-api/internal/domain"
	"alcyxob/workout-api/internal/repository" // Import repository package
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrAthleteNotFound        = errors.New("athlete not found")
	ErrWorkoutSessionNotFound = errors.New("workout session not found")
	ErrValidationFailed       = errors.New("workout session validation failed")
)

// InternalError reports a storage failure during an operation. The
// underlying cause is kept and exposed through Unwrap.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// CreateWorkoutSessionInput carries the caller-supplied fields of a new session.
type CreateWorkoutSessionInput struct {
	AthleteID       int64
	Name            string
	Description     *string
	ScheduledAt     time.Time
	DurationMinutes int
	Notes           *string
}

// --- Service Interface ---
type WorkoutSessionService interface {
	Create(ctx context.Context, input CreateWorkoutSessionInput) (*domain.WorkoutSession, error)
	ListAll(ctx context.Context) ([]domain.WorkoutSession, error)
	ListByAthlete(ctx context.Context, athleteID int64) ([]domain.WorkoutSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error)
	PartialUpdate(ctx context.Context, id uuid.UUID, patch domain.WorkoutSessionPatch) (*domain.WorkoutSession, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// --- Service Implementation ---

// workoutSessionService implements the WorkoutSessionService interface.
type workoutSessionService struct {
	sessionRepo repository.WorkoutSessionRepository
	athleteRepo repository.AthleteRepository
}

// NewWorkoutSessionService creates a new instance of workoutSessionService.
func NewWorkoutSessionService(sessionRepo repository.WorkoutSessionRepository, athleteRepo repository.AthleteRepository) WorkoutSessionService {
	return &workoutSessionService{
		sessionRepo: sessionRepo,
		athleteRepo: athleteRepo,
	}
}

// Create validates the input, checks that the athlete exists and stores a new session.
func (s *workoutSessionService) Create(ctx context.Context, input CreateWorkoutSessionInput) (*domain.WorkoutSession, error) {
	session := domain.NewWorkoutSession(input.AthleteID, input.Name, input.Description, input.ScheduledAt.UTC(), input.DurationMinutes, input.Notes)
	if err := session.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if err := s.ensureAthleteExists(ctx, input.AthleteID); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		// The athlete may have been removed since the lookup above.
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, fmt.Errorf("%w: id %d", ErrAthleteNotFound, input.AthleteID)
		}
		return nil, &InternalError{Op: "insert workout session", Err: err}
	}
	return session, nil
}

// ListAll returns every stored session, never nil.
func (s *workoutSessionService) ListAll(ctx context.Context) ([]domain.WorkoutSession, error) {
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, &InternalError{Op: "list workout sessions", Err: err}
	}
	if sessions == nil {
		sessions = []domain.WorkoutSession{}
	}
	return sessions, nil
}

// ListByAthlete returns the sessions of an existing athlete, never nil.
func (s *workoutSessionService) ListByAthlete(ctx context.Context, athleteID int64) ([]domain.WorkoutSession, error) {
	if err := s.ensureAthleteExists(ctx, athleteID); err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListByAthleteID(ctx, athleteID)
	if err != nil {
		return nil, &InternalError{Op: "list workout sessions by athlete", Err: err}
	}
	if sessions == nil {
		sessions = []domain.WorkoutSession{}
	}
	return sessions, nil
}

// GetByID retrieves a single session.
func (s *workoutSessionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error) {
	return s.load(ctx, id)
}

// PartialUpdate applies the fields present in patch and returns the committed state.
func (s *workoutSessionService) PartialUpdate(ctx context.Context, id uuid.UUID, patch domain.WorkoutSessionPatch) (*domain.WorkoutSession, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(session)

	return s.save(ctx, session, "update workout session")
}

// MarkCompleted sets completed to true. Completing a completed session succeeds.
func (s *workoutSessionService) MarkCompleted(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	session.MarkCompleted()

	return s.save(ctx, session, "mark workout session completed")
}

// Delete removes a session permanently.
func (s *workoutSessionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: id %s", ErrWorkoutSessionNotFound, id)
		}
		return &InternalError{Op: "delete workout session", Err: err}
	}
	return nil
}

// save writes session and re-reads the committed state.
func (s *workoutSessionService) save(ctx context.Context, session *domain.WorkoutSession, op string) (*domain.WorkoutSession, error) {
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrWorkoutSessionNotFound, session.ID)
		}
		return nil, &InternalError{Op: op, Err: err}
	}
	return s.load(ctx, session.ID)
}

func (s *workoutSessionService) load(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrWorkoutSessionNotFound, id)
		}
		return nil, &InternalError{Op: "load workout session", Err: err}
	}
	return session, nil
}

func (s *workoutSessionService) ensureAthleteExists(ctx context.Context, athleteID int64) error {
	if _, err := s.athleteRepo.GetByID(ctx, athleteID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrAthleteNotFound, athleteID)
		}
		return &InternalError{Op: "look up athlete", Err: err}
	}
	return nil
}
