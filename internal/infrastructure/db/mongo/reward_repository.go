package mongo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

const collectionRewards = "rewards"

type RewardRepository struct {
	col *mongo.Collection
}

func NewRewardRepository(db *mongo.Database) *RewardRepository {
	return &RewardRepository{col: db.Collection(collectionRewards)}
}

func (r *RewardRepository) FindByID(ctx context.Context, id string) (*domain.Reward, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var reward domain.Reward
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&reward); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, err
	}
	return &reward, nil
}

func (r *RewardRepository) List(ctx context.Context) ([]*domain.Reward, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rewards []*domain.Reward
	if err := cur.All(ctx, &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *RewardRepository) Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rw := *reward
	rw.ID = uuid.NewString()
	if _, err := r.col.InsertOne(ctx, rw); err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *RewardRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}
