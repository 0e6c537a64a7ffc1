package ports

import (
	"context"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// DeductPoints atomically decrements the user's balance by amount and
	// returns the updated user. The write is conditional on the stored
	// balance being >= amount, so the balance can never go negative even
	// under concurrent claims. When the condition does not match (balance
	// too low, or user gone) it returns domain.ErrInsufficientPoints and
	// writes nothing.
	DeductPoints(ctx context.Context, id string, amount int) (*domain.User, error)

	// AddPoints unconditionally increments the user's balance by amount.
	// Used to compensate a debit when claim creation fails afterwards.
	AddPoints(ctx context.Context, id string, amount int) (*domain.User, error)
}
