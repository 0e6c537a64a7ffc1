package ports

import (
	"context"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

// ClaimResult is returned by ClaimReward: the pending claim plus the user
// with the debited balance.
type ClaimResult struct {
	Claim *domain.Claim
	User  *domain.User
}

// UserClaimView is a claim joined with its reward, for the claimant's own
// history view.
type UserClaimView struct {
	Claim  *domain.Claim  `json:"claim"`
	Reward *domain.Reward `json:"reward,omitempty"`
}

// AdminClaimView is a claim joined with both the claiming user and the
// reward, for admin screens.
type AdminClaimView struct {
	Claim  *domain.Claim  `json:"claim"`
	User   *domain.User   `json:"user,omitempty"`
	Reward *domain.Reward `json:"reward,omitempty"`
}

// StatsResult aggregates the admin dashboard counters.
type StatsResult struct {
	PendingClaims int64 `json:"pending_claims"`
	TotalClaims   int64 `json:"total_claims"`
	TotalRewards  int64 `json:"total_rewards"`
}

// ClaimService defines the reward redemption use cases.
type ClaimService interface {
	// ClaimReward validates and executes a single redemption: debits the
	// user's balance, creates a pending claim, and appends a CLAIM audit
	// entry (best-effort).
	ClaimReward(ctx context.Context, userID, rewardID string) (*ClaimResult, error)

	// UpdateClaimStatus transitions a claim to the given status and appends
	// an UPDATE audit entry attributed to the acting admin. Admin authority
	// is verified by the transport layer before this is called.
	UpdateClaimStatus(ctx context.Context, claimID, status, adminID string) (*domain.Claim, error)

	ListUserClaims(ctx context.Context, userID string) ([]UserClaimView, error)
	ListClaims(ctx context.Context, status string) ([]AdminClaimView, error)
	Stats(ctx context.Context) (*StatsResult, error)
}
