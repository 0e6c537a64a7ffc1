package service

import (
	"errors"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

// errorsIsNotFound reports whether err is one of the entity not-found
// sentinels. Used by list joins to skip dangling references instead of
// failing the whole listing.
func errorsIsNotFound(err error) bool {
	return errors.Is(err, domain.ErrUserNotFound) ||
		errors.Is(err, domain.ErrRewardNotFound) ||
		errors.Is(err, domain.ErrClaimNotFound)
}
