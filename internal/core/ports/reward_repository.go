package ports

import (
	"context"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

// RewardRepository defines persistence operations for catalog rewards.
type RewardRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Reward, error)
	List(ctx context.Context) ([]*domain.Reward, error)
	Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	Count(ctx context.Context) (int64, error)
}
