package ports

import (
	"context"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

// RegisterInput carries all data needed to create an account. IsAdmin is an
// explicit, deliberate registration choice.
type RegisterInput struct {
	Fullname    string
	Username    string
	Email       string
	PhoneNumber string
	Password    string
	IsAdmin     bool
}

// AuthService implements registration, login, and session bookkeeping.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout only records the audit entry; token disposal is client-side.
	Logout(ctx context.Context, userID string) error
	Me(ctx context.Context, userID string) (*domain.User, error)
}
