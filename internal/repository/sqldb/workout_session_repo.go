// internal/repository/sqldb/workout_session_repo.go
package sqldb

import (
	"alcyxob/workout-api/internal/domain"
	"alcyxob/workout-api/internal/repository"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// pgErrForeignKeyViolation is the SQLSTATE postgres reports for foreign_key_violation.
const pgErrForeignKeyViolation = "23503"

// gormWorkoutSessionRepository implements repository.WorkoutSessionRepository
type gormWorkoutSessionRepository struct {
	db *gorm.DB
}

// NewWorkoutSessionRepository creates a new WorkoutSession repository.
func NewWorkoutSessionRepository(db *gorm.DB) repository.WorkoutSessionRepository {
	return &gormWorkoutSessionRepository{db: db}
}

// Create inserts a new session inside its own transaction.
func (r *gormWorkoutSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) error {
	row := newWorkoutSessionRow(session)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Athlete").Create(row).Error
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKey
		}
		return err
	}
	return nil
}

// GetByID retrieves a single session by its ID.
func (r *gormWorkoutSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error) {
	var row workoutSessionRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	session := row.toDomain()
	return &session, nil
}

// List retrieves every session.
func (r *gormWorkoutSessionRepository) List(ctx context.Context) ([]domain.WorkoutSession, error) {
	var rows []workoutSessionRow
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainSessions(rows), nil
}

// ListByAthleteID retrieves all sessions owned by an athlete.
func (r *gormWorkoutSessionRepository) ListByAthleteID(ctx context.Context, athleteID int64) ([]domain.WorkoutSession, error) {
	var rows []workoutSessionRow
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainSessions(rows), nil
}

// Update writes the mutable columns of the session.
func (r *gormWorkoutSessionRepository) Update(ctx context.Context, session *domain.WorkoutSession) error {
	// A map is used so that false, zero and nil values are written too.
	result := r.db.WithContext(ctx).
		Model(&workoutSessionRow{}).
		Where("id = ?", session.ID).
		Updates(map[string]any{
			"name":             session.Name,
			"description":      session.Description,
			"scheduled_at":     session.ScheduledAt,
			"duration_minutes": session.DurationMinutes,
			"completed":        session.Completed,
			"notes":            session.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.existsOrNotFound(ctx, session.ID)
	}
	return nil
}

// Delete removes a session permanently.
func (r *gormWorkoutSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&workoutSessionRow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// existsOrNotFound tells an unchanged row (some drivers report 0 affected rows
// when the values are identical) apart from a missing one.
func (r *gormWorkoutSessionRepository) existsOrNotFound(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&workoutSessionRow{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func toDomainSessions(rows []workoutSessionRow) []domain.WorkoutSession {
	sessions := make([]domain.WorkoutSession, len(rows))
	for i := range rows {
		sessions[i] = rows[i].toDomain()
	}
	return sessions
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrForeignKeyViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
