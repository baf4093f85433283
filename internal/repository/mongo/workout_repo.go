package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoWorkoutRepository implements repository.WorkoutLogRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new WorkoutLog repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(WorkoutsCollection),
	}
}

// UpsertByDate replaces the log for (userId, date) or creates it.
func (r *mongoWorkoutRepository) UpsertByDate(ctx context.Context, w *domain.WorkoutLog) (*domain.WorkoutLog, bool, error) {
	if w.UserID == primitive.NilObjectID || w.Date == "" {
		return nil, false, errors.New("workout log requires userId and date")
	}
	if w.Exercises == nil {
		w.Exercises = []domain.ExerciseEntry{}
	}

	fields := bson.M{
		"type":      w.Type,
		"duration":  w.Duration,
		"exercises": w.Exercises,
		"completed": w.Completed,
	}

	var saved domain.WorkoutLog
	created, err := upsertByDate(ctx, r.collection, w.UserID, w.Date, fields, &saved)
	if err != nil {
		return nil, false, err
	}
	return &saved, created, nil
}

// ListByUser retrieves all workout logs of a user, newest date first.
func (r *mongoWorkoutRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, newestDateFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := []domain.WorkoutLog{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	createIndexes(ctx, collection, perDateIndexes())
}

// upsertByDate applies fields to the document keyed by (userID, date),
// inserting it when missing, and decodes the resulting document into out.
// A concurrent insert of the same key loses the unique index race; the
// second attempt then finds the document and updates it.
func upsertByDate(ctx context.Context, collection *mongo.Collection, userID primitive.ObjectID, date string, fields bson.M, out interface{}) (bool, error) {
	filter := bson.M{"userId": userID, "date": date}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		newID := primitive.NewObjectID()
		now := time.Now().UTC()

		set := bson.M{"updatedAt": now}
		for k, v := range fields {
			set[k] = v
		}
		update := bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"_id": newID, "createdAt": now},
		}

		var raw bson.Raw
		raw, err = collection.FindOneAndUpdate(ctx, filter, update, opts).Raw()
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return false, err
		}
		if err = bson.Unmarshal(raw, out); err != nil {
			return false, err
		}
		id, _ := raw.Lookup("_id").ObjectIDOK()
		return id == newID, nil
	}
	return false, err
}

func newestDateFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "updatedAt", Value: -1}})
}

func perDateIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			// One log per user and day
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
}
