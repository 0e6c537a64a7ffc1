package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/perkhub/rewards-system/internal/core/domain"
	"github.com/perkhub/rewards-system/internal/core/ports"
)

type rewardService struct {
	rewards ports.RewardRepository
	log     zerolog.Logger
}

// NewRewardService returns the catalog service.
func NewRewardService(rewards ports.RewardRepository, log zerolog.Logger) ports.RewardService {
	return &rewardService{rewards: rewards, log: log}
}

func (s *rewardService) Get(ctx context.Context, id string) (*domain.Reward, error) {
	return s.rewards.FindByID(ctx, id)
}

func (s *rewardService) List(ctx context.Context) ([]*domain.Reward, error) {
	return s.rewards.List(ctx)
}

func (s *rewardService) Create(ctx context.Context, input ports.CreateRewardInput) (*domain.Reward, error) {
	if input.Title == "" || input.Points <= 0 {
		return nil, domain.ErrInvalidReward
	}

	now := time.Now().UTC()
	reward, err := s.rewards.Create(ctx, &domain.Reward{
		Title:  input.Title,
		Points: input.Points,
		Data: domain.RewardData{
			Description: input.Description,
			ImageURL:    input.ImageURL,
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("reward_id", reward.ID).Str("title", reward.Title).Int("points", reward.Points).Msg("reward created")
	return reward, nil
}
