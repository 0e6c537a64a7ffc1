package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/perkhub/rewards-system/internal/core/domain"
	"github.com/perkhub/rewards-system/internal/core/ports"
)

// joinConcurrency caps the fan-out when enriching claim lists with their
// users and rewards.
const joinConcurrency = 8

// StatsCache abstracts the short-lived dashboard counter cache (Redis).
// Get returns (nil, nil) on a cache miss.
type StatsCache interface {
	Get(ctx context.Context) (*ports.StatsResult, error)
	Set(ctx context.Context, stats *ports.StatsResult) error
}

type claimService struct {
	users   ports.UserRepository
	rewards ports.RewardRepository
	claims  ports.ClaimRepository
	audit   ports.AuditLogger
	cache   StatsCache
	log     zerolog.Logger
}

// NewClaimService returns a ClaimService. cache may be nil, in which case
// Stats always hits the repositories.
func NewClaimService(
	users ports.UserRepository,
	rewards ports.RewardRepository,
	claims ports.ClaimRepository,
	audit ports.AuditLogger,
	cache StatsCache,
	log zerolog.Logger,
) ports.ClaimService {
	return &claimService{
		users:   users,
		rewards: rewards,
		claims:  claims,
		audit:   audit,
		cache:   cache,
		log:     log,
	}
}

// ClaimReward executes a single redemption. Validation happens before any
// write; the balance debit is a conditional atomic write, so two concurrent
// claims can never overspend. The audit append is best-effort: a failure
// there is logged but the claim still succeeds.
func (s *claimService) ClaimReward(ctx context.Context, userID, rewardID string) (*ports.ClaimResult, error) {
	if rewardID == "" {
		return nil, domain.ErrRewardIDRequired
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("claim reward: %w", err)
	}
	reward, err := s.rewards.FindByID(ctx, rewardID)
	if err != nil {
		return nil, fmt.Errorf("claim reward: %w", err)
	}

	if user.Data.Points < reward.Points {
		return nil, domain.ErrInsufficientPoints
	}

	// Conditional debit: fails with ErrInsufficientPoints if a concurrent
	// claim spent the balance between the check above and this write.
	updatedUser, err := s.users.DeductPoints(ctx, userID, reward.Points)
	if err != nil {
		return nil, fmt.Errorf("claim reward: debit: %w", err)
	}

	now := time.Now().UTC()
	claim, err := s.claims.Create(ctx, &domain.Claim{
		UserID:    userID,
		RewardID:  rewardID,
		Status:    domain.ClaimPending,
		Data:      domain.ClaimMeta{ClaimedAt: now},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		// Compensate the debit so the user does not lose points on a
		// half-finished claim.
		if _, refundErr := s.users.AddPoints(ctx, userID, reward.Points); refundErr != nil {
			s.log.Error().Err(refundErr).
				Str("user_id", userID).
				Int("points", reward.Points).
				Msg("refund after failed claim creation also failed")
		}
		return nil, fmt.Errorf("claim reward: create claim: %w", err)
	}

	if _, logErr := s.audit.Record(ctx, ports.LogEntryInput{
		UserID:      userID,
		Action:      domain.ActionClaim,
		Code:        domain.CodeRewardClaim,
		Description: fmt.Sprintf("User %s claimed %s", user.Fullname, reward.Title),
		Data: domain.LogMeta{
			UserID:   userID,
			RewardID: rewardID,
			ClaimID:  claim.ID,
		},
	}); logErr != nil {
		s.log.Warn().Err(logErr).Str("claim_id", claim.ID).Msg("failed to append claim audit entry")
	}

	s.log.Info().
		Str("user_id", userID).
		Str("reward_id", rewardID).
		Str("claim_id", claim.ID).
		Int("points", reward.Points).
		Int("balance", updatedUser.Data.Points).
		Msg("reward claimed")

	return &ports.ClaimResult{Claim: claim, User: updatedUser}, nil
}

// UpdateClaimStatus transitions a claim to any of the enumerated statuses.
// Transitions are unrestricted beyond the enum; rejection does not refund
// the deducted points.
func (s *claimService) UpdateClaimStatus(ctx context.Context, claimID, status, adminID string) (*domain.Claim, error) {
	newStatus, err := domain.ParseClaimStatus(status)
	if err != nil {
		return nil, err
	}

	claim, err := s.claims.FindByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("update claim status: %w", err)
	}

	updated, err := s.claims.UpdateStatus(ctx, claimID, newStatus)
	if err != nil {
		return nil, fmt.Errorf("update claim status: %w", err)
	}

	// Names are a nicety for the audit description; fall back to ids if the
	// lookups fail.
	claimantName, rewardTitle := claim.UserID, claim.RewardID
	if user, userErr := s.users.FindByID(ctx, claim.UserID); userErr == nil {
		claimantName = user.Fullname
	}
	if reward, rewardErr := s.rewards.FindByID(ctx, claim.RewardID); rewardErr == nil {
		rewardTitle = reward.Title
	}

	if _, logErr := s.audit.Record(ctx, ports.LogEntryInput{
		UserID:      adminID,
		Action:      domain.ActionUpdate,
		Code:        domain.CodeRewardUpdate,
		Description: fmt.Sprintf("Admin updated status to %s for %s's claim of %s", newStatus, claimantName, rewardTitle),
		Data: domain.LogMeta{
			AdminID:  adminID,
			UserID:   claim.UserID,
			RewardID: claim.RewardID,
			ClaimID:  claimID,
			Status:   newStatus,
		},
	}); logErr != nil {
		s.log.Warn().Err(logErr).Str("claim_id", claimID).Msg("failed to append status update audit entry")
	}

	s.log.Info().
		Str("claim_id", claimID).
		Str("admin_id", adminID).
		Str("status", string(newStatus)).
		Msg("claim status updated")

	return updated, nil
}

// ListUserClaims returns the caller's claims joined with their rewards.
func (s *claimService) ListUserClaims(ctx context.Context, userID string) ([]ports.UserClaimView, error) {
	claims, err := s.claims.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user claims: %w", err)
	}

	rewardIDs := make([]string, 0, len(claims))
	for _, c := range claims {
		rewardIDs = append(rewardIDs, c.RewardID)
	}
	rewardsByID, err := s.fetchRewards(ctx, rewardIDs)
	if err != nil {
		return nil, fmt.Errorf("list user claims: %w", err)
	}

	views := make([]ports.UserClaimView, 0, len(claims))
	for _, c := range claims {
		views = append(views, ports.UserClaimView{Claim: c, Reward: rewardsByID[c.RewardID]})
	}
	return views, nil
}

// ListClaims returns claims joined with user and reward for admin screens.
// An empty status returns all claims.
func (s *claimService) ListClaims(ctx context.Context, status string) ([]ports.AdminClaimView, error) {
	var filter ports.ClaimListFilter
	if status != "" {
		parsed, err := domain.ParseClaimStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = parsed
	}

	claims, err := s.claims.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	userIDs := make([]string, 0, len(claims))
	rewardIDs := make([]string, 0, len(claims))
	for _, c := range claims {
		userIDs = append(userIDs, c.UserID)
		rewardIDs = append(rewardIDs, c.RewardID)
	}

	usersByID, err := s.fetchUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	rewardsByID, err := s.fetchRewards(ctx, rewardIDs)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}

	views := make([]ports.AdminClaimView, 0, len(claims))
	for _, c := range claims {
		views = append(views, ports.AdminClaimView{
			Claim:  c,
			User:   usersByID[c.UserID],
			Reward: rewardsByID[c.RewardID],
		})
	}
	return views, nil
}

// Stats returns the dashboard counters, served from the cache when fresh.
func (s *claimService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed, falling back to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	pending, err := s.claims.CountByStatus(ctx, domain.ClaimPending)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	totalClaims, err := s.claims.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	totalRewards, err := s.rewards.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	stats := &ports.StatsResult{
		PendingClaims: pending,
		TotalClaims:   totalClaims,
		TotalRewards:  totalRewards,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

// fetchRewards loads the unique rewards for the given ids concurrently.
// Missing rewards are skipped rather than failing the whole listing.
func (s *claimService) fetchRewards(ctx context.Context, ids []string) (map[string]*domain.Reward, error) {
	unique := uniqueStrings(ids)
	out := make(map[string]*domain.Reward, len(unique))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)
	results := make([]*domain.Reward, len(unique))
	for i, id := range unique {
		g.Go(func() error {
			reward, err := s.rewards.FindByID(gctx, id)
			if err != nil {
				if errorsIsNotFound(err) {
					return nil
				}
				return err
			}
			results[i] = reward
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, id := range unique {
		if results[i] != nil {
			out[id] = results[i]
		}
	}
	return out, nil
}

// fetchUsers loads the unique users for the given ids concurrently.
func (s *claimService) fetchUsers(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	unique := uniqueStrings(ids)
	out := make(map[string]*domain.User, len(unique))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)
	results := make([]*domain.User, len(unique))
	for i, id := range unique {
		g.Go(func() error {
			user, err := s.users.FindByID(gctx, id)
			if err != nil {
				if errorsIsNotFound(err) {
					return nil
				}
				return err
			}
			results[i] = user
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, id := range unique {
		if results[i] != nil {
			out[id] = results[i]
		}
	}
	return out, nil
}

func uniqueStrings(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
