package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

const collectionLogs = "activity_logs"

// LogRepository persists audit entries. Insert-only; there is no update or
// delete path on this collection.
type LogRepository struct {
	col *mongo.Collection
}

func NewLogRepository(db *mongo.Database) *LogRepository {
	return &LogRepository{col: db.Collection(collectionLogs)}
}

func (r *LogRepository) Insert(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	e := *entry
	e.ID = uuid.NewString()
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *LogRepository) List(ctx context.Context) ([]*domain.ActivityLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []*domain.ActivityLog
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureIndexes backs the newest-first dashboard listing.
func (r *LogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
