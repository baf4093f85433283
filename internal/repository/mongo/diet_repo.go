package mongo

import (
	"context"
	"errors"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoDietRepository struct {
	collection *mongo.Collection
}

// NewMongoDietRepository creates a new DietLog repository.
func NewMongoDietRepository(db *mongo.Database) repository.DietLogRepository {
	return &mongoDietRepository{
		collection: db.Collection(DietCollection),
	}
}

// UpsertByDate replaces the log for (userId, date) or creates it.
func (r *mongoDietRepository) UpsertByDate(ctx context.Context, d *domain.DietLog) (*domain.DietLog, bool, error) {
	if d.UserID == primitive.NilObjectID || d.Date == "" {
		return nil, false, errors.New("diet log requires userId and date")
	}
	d.Meals.Normalize()

	fields := bson.M{
		"meals": d.Meals,
		"eggs":  d.Eggs,
		"water": d.Water,
		"score": d.Score,
	}

	var saved domain.DietLog
	created, err := upsertByDate(ctx, r.collection, d.UserID, d.Date, fields, &saved)
	if err != nil {
		return nil, false, err
	}
	return &saved, created, nil
}

// ListByUser retrieves all diet logs of a user, newest date first.
func (r *mongoDietRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.DietLog, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, newestDateFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []domain.DietLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureDietIndexes creates necessary indexes. Call during startup.
func EnsureDietIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, perDateIndexes())
}
