package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/perkhub/rewards-system/internal/core/domain"
	"github.com/perkhub/rewards-system/internal/core/ports"
)

type auditService struct {
	logs  ports.LogRepository
	users ports.UserRepository
}

// NewAuditService returns an AuditLogger backed by the given repositories.
func NewAuditService(logs ports.LogRepository, users ports.UserRepository) ports.AuditLogger {
	return &auditService{logs: logs, users: users}
}

// Record appends an audit entry. Only structurally invalid entries are
// rejected; callers decide whether a failure here is fatal.
func (s *auditService) Record(ctx context.Context, entry ports.LogEntryInput) (*domain.ActivityLog, error) {
	if entry.UserID == "" || entry.Action == "" || entry.Code == "" {
		return nil, domain.ErrInvalidLogEntry
	}

	stored, err := s.logs.Insert(ctx, &domain.ActivityLog{
		UserID:      entry.UserID,
		Action:      entry.Action,
		Code:        entry.Code,
		Description: entry.Description,
		Data:        entry.Data,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("record audit entry: %w", err)
	}
	return stored, nil
}

// List returns all audit entries joined with their acting user, newest first.
func (s *auditService) List(ctx context.Context) ([]ports.LogView, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	userIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		userIDs = append(userIDs, e.UserID)
	}
	usersByID, err := s.fetchUsers(ctx, uniqueStrings(userIDs))
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	views := make([]ports.LogView, 0, len(entries))
	for _, e := range entries {
		views = append(views, ports.LogView{Log: e, User: usersByID[e.UserID]})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Log.CreatedAt.After(views[j].Log.CreatedAt)
	})
	return views, nil
}

func (s *auditService) fetchUsers(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)
	results := make([]*domain.User, len(ids))
	for i, id := range ids {
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

	out := make(map[string]*domain.User, len(ids))
	for i, id := range ids {
		if results[i] != nil {
			out[id] = results[i]
		}
	}
	return out, nil
}
