package sqldb

import (
	"alcyxob/workout-api/internal/domain"
	"alcyxob/workout-api/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

// gormAthleteRepository implements repository.AthleteRepository
type gormAthleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository creates a new Athlete repository.
func NewAthleteRepository(db *gorm.DB) repository.AthleteRepository {
	return &gormAthleteRepository{db: db}
}

// GetByID retrieves an athlete by primary key.
func (r *gormAthleteRepository) GetByID(ctx context.Context, id int64) (*domain.Athlete, error) {
	var row athleteRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}
