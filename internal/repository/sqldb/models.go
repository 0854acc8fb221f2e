package sqldb

import (
	"alcyxob/workout-api/internal/domain"
	"time"

	"github.com/google/uuid"
)

// athleteRow maps the athletes table. Rows are owned by the athlete service;
// this package only reads them.
type athleteRow struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (athleteRow) TableName() string { return "athletes" }

func (r *athleteRow) toDomain() *domain.Athlete {
	return &domain.Athlete{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

// workoutSessionRow maps the workout_sessions table.
type workoutSessionRow struct {
	ID              uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	Name            string      `gorm:"column:name;type:varchar(100);not null"`
	Description     *string     `gorm:"column:description;type:text"`
	ScheduledAt     time.Time   `gorm:"column:scheduled_at;not null"`
	DurationMinutes int         `gorm:"column:duration_minutes;not null"`
	Completed       bool        `gorm:"column:completed;not null;default:false"`
	Notes           *string     `gorm:"column:notes;type:text"`
	CreatedAt       time.Time   `gorm:"column:created_at;not null;autoCreateTime:false"`
	AthleteID       int64       `gorm:"column:athlete_id;not null;index"`
	Athlete         *athleteRow `gorm:"foreignKey:AthleteID;constraint:OnDelete:RESTRICT"`
}

func (workoutSessionRow) TableName() string { return "workout_sessions" }

func newWorkoutSessionRow(s *domain.WorkoutSession) *workoutSessionRow {
	return &workoutSessionRow{
		ID:              s.ID,
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

func (r *workoutSessionRow) toDomain() domain.WorkoutSession {
	return domain.WorkoutSession{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		ScheduledAt:     r.ScheduledAt.UTC(),
		DurationMinutes: r.DurationMinutes,
		Completed:       r.Completed,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt.UTC(),
		AthleteID:       r.AthleteID,
	}
}
