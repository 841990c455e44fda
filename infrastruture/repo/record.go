package repo

import (
	"context"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordRepo stores finished runs in MongoDB.
type RecordRepo struct {
	collection *mongo.Collection
}

var _ i.RecordRepo = &RecordRepo{}

// NewRecordRepo creates a RecordRepo on the given database and collection.
func NewRecordRepo(client *mongo.Client, dbName, collectionName string) *RecordRepo {
	return &RecordRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the index used by the leaderboard query.
func (r *RecordRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: leaderboardSort(),
	})
	return err
}

// Save inserts a finished run.
func (r *RecordRepo) Save(ctx context.Context, record *domain.Record) error {
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

// Top returns the best records for a maze size: fewest moves, then fastest.
func (r *RecordRepo) Top(ctx context.Context, rows, cols int, limit int64) ([]domain.Record, error) {
	filter := bson.M{"rows": rows, "cols": cols}
	opts := options.Find().SetSort(leaderboardSort()).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]domain.Record, 0, limit)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	return records, nil
}

// leaderboardSort matches domain.Record.Less.
func leaderboardSort() bson.D {
	return bson.D{
		{Key: "rows", Value: 1},
		{Key: "cols", Value: 1},
		{Key: "moves", Value: 1},
		{Key: "elapsed", Value: 1},
	}
}
