// internal/repository/mongo/workout_session_repo.go
package mongo

import (
	"alcyxob/workout-api/internal/domain"
	"alcyxob/workout-api/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutSessionCollectionName = "workout_sessions"

// workoutSessionDocument is the stored shape of a session. The UUID is kept in
// its canonical string form.
type workoutSessionDocument struct {
	ID              string    `bson:"_id"`
	Name            string    `bson:"name"`
	Description     *string   `bson:"description"`
	ScheduledAt     time.Time `bson:"scheduledAt"`
	DurationMinutes int       `bson:"durationMinutes"`
	Completed       bool      `bson:"completed"`
	Notes           *string   `bson:"notes"`
	CreatedAt       time.Time `bson:"createdAt"`
	AthleteID       int64     `bson:"athleteId"`
}

func newWorkoutSessionDocument(s *domain.WorkoutSession) *workoutSessionDocument {
	return &workoutSessionDocument{
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

func (d *workoutSessionDocument) toDomain() (domain.WorkoutSession, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.WorkoutSession{}, fmt.Errorf("stored workout session has invalid id %q: %w", d.ID, err)
	}
	return domain.WorkoutSession{
		ID:              id,
		Name:            d.Name,
		Description:     d.Description,
		ScheduledAt:     d.ScheduledAt.UTC(),
		DurationMinutes: d.DurationMinutes,
		Completed:       d.Completed,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt.UTC(),
		AthleteID:       d.AthleteID,
	}, nil
}

// mongoWorkoutSessionRepository implements repository.WorkoutSessionRepository
type mongoWorkoutSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutSessionRepository creates a new WorkoutSession repository.
func NewMongoWorkoutSessionRepository(db *mongo.Database) repository.WorkoutSessionRepository {
	return &mongoWorkoutSessionRepository{
		collection: db.Collection(workoutSessionCollectionName),
	}
}

// Create inserts a new session. Single document writes are atomic.
func (r *mongoWorkoutSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) error {
	_, err := r.collection.InsertOne(ctx, newWorkoutSessionDocument(session))
	return err
}

// GetByID retrieves a single session by its ID.
func (r *mongoWorkoutSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkoutSession, error) {
	var doc workoutSessionDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	session, err := doc.toDomain()
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// List retrieves every session.
func (r *mongoWorkoutSessionRepository) List(ctx context.Context) ([]domain.WorkoutSession, error) {
	return r.find(ctx, bson.M{})
}

// ListByAthleteID retrieves all sessions owned by an athlete.
func (r *mongoWorkoutSessionRepository) ListByAthleteID(ctx context.Context, athleteID int64) ([]domain.WorkoutSession, error) {
	return r.find(ctx, bson.M{"athleteId": athleteID})
}

func (r *mongoWorkoutSessionRepository) find(ctx context.Context, filter bson.M) ([]domain.WorkoutSession, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []workoutSessionDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	sessions := make([]domain.WorkoutSession, 0, len(docs))
	for i := range docs {
		session, err := docs[i].toDomain()
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// Update writes the mutable fields of the session.
func (r *mongoWorkoutSessionRepository) Update(ctx context.Context, session *domain.WorkoutSession) error {
	// AthleteID and CreatedAt are immutable and never part of $set.
	filter := bson.M{"_id": session.ID.String()}
	updateDoc := bson.M{
		"$set": bson.M{
			"name":            session.Name,
			"description":     session.Description,
			"scheduledAt":     session.ScheduledAt,
			"durationMinutes": session.DurationMinutes,
			"completed":       session.Completed,
			"notes":           session.Notes,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a session permanently.
func (r *mongoWorkoutSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutSessionIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// ListByAthlete, in creation order
			Keys:    bson.D{{Key: "athleteId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes for collection %s: %w", collection.Name(), err)
	}
	return nil
}
