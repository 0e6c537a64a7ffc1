package ports

import (
	"context"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

// CreateRewardInput carries the fields for a new catalog entry.
type CreateRewardInput struct {
	Title       string
	Points      int
	Description string
	ImageURL    string
}

// RewardService exposes the reward catalog.
type RewardService interface {
	Get(ctx context.Context, id string) (*domain.Reward, error)
	List(ctx context.Context) ([]*domain.Reward, error)
	Create(ctx context.Context, input CreateRewardInput) (*domain.Reward, error)
}
