package ports

import (
	"context"

	"github.com/perkhub/rewards-system/internal/core/domain"
)

// LogEntryInput carries a single audit record to append.
type LogEntryInput struct {
	UserID      string
	Action      domain.LogAction
	Code        string
	Description string
	Data        domain.LogMeta
}

// LogView is a stored log entry joined with its acting user.
type LogView struct {
	Log  *domain.ActivityLog `json:"log"`
	User *domain.User        `json:"user,omitempty"`
}

// AuditLogger is the append-only activity trail consumed by the claim and
// approval flows and by the admin dashboard.
type AuditLogger interface {
	// Record appends an entry. It rejects only entries missing UserID,
	// Action, or Code; business rules never cause a rejection.
	Record(ctx context.Context, entry LogEntryInput) (*domain.ActivityLog, error)

	// List returns all entries joined with their acting user, newest first.
	List(ctx context.Context) ([]LogView, error)
}
