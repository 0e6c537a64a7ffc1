package ports

import (
	"context"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

// ClaimListFilter narrows List results. Zero value means no filtering.
type ClaimListFilter struct {
	Status domain.ClaimStatus // optional: filter by claim status
}

// ClaimRepository defines persistence operations for reward claims.
// Claims are never deleted; only Status (and UpdatedAt) change after creation.
type ClaimRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Claim, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Claim, error)
	List(ctx context.Context, filter ClaimListFilter) ([]*domain.Claim, error)
	Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error)

	// UpdateStatus persists the new status, refreshes UpdatedAt, and returns
	// the updated claim. Unknown id yields domain.ErrClaimNotFound.
	UpdateStatus(ctx context.Context, id string, status domain.ClaimStatus) (*domain.Claim, error)

	CountByStatus(ctx context.Context, status domain.ClaimStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
}
