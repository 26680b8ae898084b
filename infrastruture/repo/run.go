package repo

import (
	"context"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxHistory = 100

// RunRepo stores search run summaries, one document per run.
type RunRepo struct {
	collection *mongo.Collection
}

// NewRunRepo creates a RunRepo and ensures the owner/startedAt index used by ByOwner.
func NewRunRepo(ctx context.Context, client *mongo.Client, dbName, collectionName string) (*RunRepo, error) {
	collection := client.Database(dbName).Collection(collectionName)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}, {Key: "startedAt", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("creating run index: %w", err)
	}

	return &RunRepo{collection: collection}, nil
}

// Save inserts run. Runs are immutable once recorded.
func (r *RunRepo) Save(ctx context.Context, run *dmn.Run) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, run); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByOwner lists the newest runs of owner, at most limit of them. A limit
// outside (0, 100] is clamped.
func (r *RunRepo) ByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]*dmn.Run, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "startedAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	defer cursor.Close(ctx)

	runs := make([]*dmn.Run, 0, limit)
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, fmt.Errorf("decoding runs: %w", err)
	}
	return runs, nil
}
