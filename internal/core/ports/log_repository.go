package ports

import (
	"context"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

// LogRepository persists the append-only audit trail. Entries are inserted
// and read, never updated or deleted.
type LogRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error)
	List(ctx context.Context) ([]*domain.ActivityLog, error)
}
