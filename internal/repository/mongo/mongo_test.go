package mongo

import (
	"alcyxob/workout-api/internal/domain"
	"alcyxob/workout-api/internal/repository"
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// setupTestDB connects to the server named by WORKOUT_API_TEST_MONGO_URI and
// returns a throwaway database. Tests are skipped when it is unset.
func setupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("WORKOUT_API_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("WORKOUT_API_TEST_MONGO_URI not set")
	}
	client, err := ConnectDB(uri, 1, 0)
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("workout_api_test_%d", time.Now().UnixNano()))
	require.NoError(t, EnsureIndexes(context.Background(), db))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = DisconnectDB(client)
	})
	return db
}

func TestMongoRepositories(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.Collection(athleteCollectionName).InsertOne(ctx, athleteDocument{ID: 1, Name: "Ana", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	athletes := NewMongoAthleteRepository(db)
	athlete, err := athletes.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", athlete.Name)
	_, err = athletes.GetByID(ctx, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	sessions := NewMongoWorkoutSessionRepository(db)
	s := domain.NewWorkoutSession(1, "Leg Day", nil, time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC), 60, nil)
	require.NoError(t, sessions.Create(ctx, s))

	got, err := sessions.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.True(t, s.CreatedAt.Equal(got.CreatedAt))

	s.DurationMinutes = 75
	require.NoError(t, sessions.Update(ctx, s))
	got, err = sessions.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 75, got.DurationMinutes)

	list, err := sessions.ListByAthleteID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	list, err = sessions.ListByAthleteID(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, sessions.Delete(ctx, s.ID))
	_, err = sessions.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, sessions.Delete(ctx, s.ID), repository.ErrNotFound)
	assert.ErrorIs(t, sessions.Update(ctx, &domain.WorkoutSession{ID: uuid.New()}), repository.ErrNotFound)

	assert.NoError(t, NewHealthChecker(db.Client()).Ping(ctx))
}

func TestWorkoutSessionDocumentRejectsInvalidID(t *testing.T) {
	doc := workoutSessionDocument{ID: "not-a-uuid"}
	_, err := doc.toDomain()
	assert.Error(t, err)
}
