package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/perkhub/rewards-system/internal/core/domain"
	"github.com/perkhub/rewards-system/internal/core/ports"
)

const collectionClaims = "user_rewards"

type ClaimRepository struct {
	col *mongo.Collection
}

func NewClaimRepository(db *mongo.Database) *ClaimRepository {
	return &ClaimRepository{col: db.Collection(collectionClaims)}
}

func (r *ClaimRepository) FindByID(ctx context.Context, id string) (*domain.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Claim
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClaimRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Claim, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *ClaimRepository) List(ctx context.Context, filter ports.ClaimListFilter) ([]*domain.Claim, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	return r.find(ctx, query)
}

func (r *ClaimRepository) find(ctx context.Context, query bson.M) ([]*domain.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var claims []*domain.Claim
	if err := cur.All(ctx, &claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *ClaimRepository) Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := *claim
	c.ID = uuid.NewString()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateStatus sets the new status and refreshes the update timestamp in a
// single write. UserID and RewardID are deliberately untouchable here.
func (r *ClaimRepository) UpdateStatus(ctx context.Context, id string, status domain.ClaimStatus) (*domain.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}

	var c domain.Claim
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClaimRepository) CountByStatus(ctx context.Context, status domain.ClaimStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"status": string(status)})
}

func (r *ClaimRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the indexes backing the per-user and per-status views.
func (r *ClaimRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
