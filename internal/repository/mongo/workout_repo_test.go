//go:build integration_test || all_tests

package mongo

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/fittrack/fittrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func testDBSetup(t *testing.T) (*mongo.Database, func()) {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	t.Logf("using mongo uri: %s", uri)

	client, err := ConnectDB(uri)
	require.NoError(t, err)

	db := client.Database("fittrack_test")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, db.Collection(WorkoutsCollection).Drop(ctx))
	require.NoError(t, db.Collection(DietCollection).Drop(ctx))
	EnsureIndexes(ctx, db)

	return db, func() {
		require.NoError(t, DisconnectDB(client))
	}
}

func TestWorkoutRepository_UpsertByDate(t *testing.T) {
	db, shutdown := testDBSetup(t)
	defer shutdown()

	ctx := context.Background()
	repo := NewMongoWorkoutRepository(db)
	userID := primitive.NewObjectID()

	first, created, err := repo.UpsertByDate(ctx, &domain.WorkoutLog{
		UserID: userID, Date: "2025-01-15", Type: "Push", Duration: 40,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, []domain.ExerciseEntry{}, first.Exercises)

	second, created, err := repo.UpsertByDate(ctx, &domain.WorkoutLog{
		UserID: userID, Date: "2025-01-15", Type: "Pull", Duration: 55, Completed: true,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Pull", second.Type)
	assert.True(t, second.Completed)
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())

	_, created, err = repo.UpsertByDate(ctx, &domain.WorkoutLog{UserID: userID, Date: "2025-01-16", Type: "Legs"})
	require.NoError(t, err)
	assert.True(t, created)

	logs, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2025-01-16", logs[0].Date)
	assert.Equal(t, "2025-01-15", logs[1].Date)
}

func TestWorkoutRepository_UpsertByDate_ConcurrentSameDate(t *testing.T) {
	db, shutdown := testDBSetup(t)
	defer shutdown()

	ctx := context.Background()
	repo := NewMongoWorkoutRepository(db)
	userID := primitive.NewObjectID()

	const writers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		creates  int
		ids      = map[primitive.ObjectID]struct{}{}
		failures []error
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(duration int) {
			defer wg.Done()
			saved, created, err := repo.UpsertByDate(ctx, &domain.WorkoutLog{
				UserID: userID, Date: "2025-01-15", Type: "Run", Duration: duration,
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			if created {
				creates++
			}
			ids[saved.ID] = struct{}{}
		}(i)
	}
	wg.Wait()

	// losers of the unique index race retry and update the winner's document
	require.Empty(t, failures)
	assert.Equal(t, 1, creates)
	assert.Len(t, ids, 1)

	count, err := db.Collection(WorkoutsCollection).CountDocuments(ctx, bson.M{"userId": userID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestDietRepository_UpsertByDate(t *testing.T) {
	db, shutdown := testDBSetup(t)
	defer shutdown()

	ctx := context.Background()
	repo := NewMongoDietRepository(db)
	userID := primitive.NewObjectID()

	first, created, err := repo.UpsertByDate(ctx, &domain.DietLog{UserID: userID, Date: "2025-01-15", Water: 1, Score: 9})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.UpsertByDate(ctx, &domain.DietLog{UserID: userID, Date: "2025-01-15", Water: 3, Score: 10})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 10, second.Score)
}
