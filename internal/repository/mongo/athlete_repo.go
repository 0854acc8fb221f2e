package mongo

import (
	"alcyxob/workout-api/internal/domain"
	"alcyxob/workout-api/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const athleteCollectionName = "athletes"

// athleteDocument is the stored shape of an athlete. The integer _id matches
// the athlete ids used by the relational backends.
type athleteDocument struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"createdAt"`
}

// mongoAthleteRepository implements repository.AthleteRepository
type mongoAthleteRepository struct {
	collection *mongo.Collection
}

// NewMongoAthleteRepository creates a new Athlete repository.
func NewMongoAthleteRepository(db *mongo.Database) repository.AthleteRepository {
	return &mongoAthleteRepository{
		collection: db.Collection(athleteCollectionName),
	}
}

// GetByID retrieves an athlete by its integer ID.
func (r *mongoAthleteRepository) GetByID(ctx context.Context, id int64) (*domain.Athlete, error) {
	var doc athleteDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &domain.Athlete{ID: doc.ID, Name: doc.Name, CreatedAt: doc.CreatedAt}, nil
}
