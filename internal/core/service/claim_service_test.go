package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/perkhub/rewards-system/internal/core/domain"
	"github.com/perkhub/rewards-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	nextID    int
	findErr   error
	deductErr error
	addErr    error
	deducts   []int
	refunds   []int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	copy := cloneUser(user)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.byID[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) DeductPoints(_ context.Context, id string, amount int) (*domain.User, error) {
	if r.deductErr != nil {
		return nil, r.deductErr
	}
	u, ok := r.byID[id]
	if !ok || u.Data.Points < amount {
		return nil, domain.ErrInsufficientPoints
	}
	u.Data.Points -= amount
	r.deducts = append(r.deducts, amount)
	return cloneUser(u), nil
}

func (r *stubUserRepo) AddPoints(_ context.Context, id string, amount int) (*domain.User, error) {
	if r.addErr != nil {
		return nil, r.addErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Data.Points += amount
	r.refunds = append(r.refunds, amount)
	return cloneUser(u), nil
}

type stubRewardRepo struct {
	byID    map[string]*domain.Reward
	listErr error
}

func newStubRewardRepo() *stubRewardRepo {
	return &stubRewardRepo{byID: make(map[string]*domain.Reward)}
}

func (r *stubRewardRepo) FindByID(_ context.Context, id string) (*domain.Reward, error) {
	reward, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRewardNotFound
	}
	clone := *reward
	return &clone, nil
}

func (r *stubRewardRepo) List(_ context.Context) ([]*domain.Reward, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Reward, 0, len(r.byID))
	for _, reward := range r.byID {
		clone := *reward
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubRewardRepo) Create(_ context.Context, reward *domain.Reward) (*domain.Reward, error) {
	clone := *reward
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("reward-%d", len(r.byID)+1)
	}
	stored := clone
	r.byID[clone.ID] = &stored
	return &clone, nil
}

func (r *stubRewardRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type stubClaimRepo struct {
	byID      map[string]*domain.Claim
	createErr error
	updateErr error
}

func newStubClaimRepo() *stubClaimRepo {
	return &stubClaimRepo{byID: make(map[string]*domain.Claim)}
}

func (r *stubClaimRepo) FindByID(_ context.Context, id string) (*domain.Claim, error) {
	claim, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClaimNotFound
	}
	clone := *claim
	return &clone, nil
}

func (r *stubClaimRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Claim, error) {
	out := make([]*domain.Claim, 0)
	for _, claim := range r.byID {
		if claim.UserID == userID {
			clone := *claim
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubClaimRepo) List(_ context.Context, filter ports.ClaimListFilter) ([]*domain.Claim, error) {
	out := make([]*domain.Claim, 0)
	for _, claim := range r.byID {
		if filter.Status != "" && claim.Status != filter.Status {
			continue
		}
		clone := *claim
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubClaimRepo) Create(_ context.Context, claim *domain.Claim) (*domain.Claim, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *claim
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("claim-%d", len(r.byID)+1)
	}
	stored := clone
	r.byID[clone.ID] = &stored
	return &clone, nil
}

func (r *stubClaimRepo) UpdateStatus(_ context.Context, id string, status domain.ClaimStatus) (*domain.Claim, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	claim, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClaimNotFound
	}
	claim.Status = status
	claim.UpdatedAt = time.Now().UTC()
	clone := *claim
	return &clone, nil
}

func (r *stubClaimRepo) CountByStatus(_ context.Context, status domain.ClaimStatus) (int64, error) {
	var n int64
	for _, claim := range r.byID {
		if claim.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubClaimRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type stubAudit struct {
	recordErr error
	entries   []ports.LogEntryInput
}

func (a *stubAudit) Record(_ context.Context, entry ports.LogEntryInput) (*domain.ActivityLog, error) {
	if a.recordErr != nil {
		return nil, a.recordErr
	}
	a.entries = append(a.entries, entry)
	return &domain.ActivityLog{
		ID:          fmt.Sprintf("log-%d", len(a.entries)),
		UserID:      entry.UserID,
		Action:      entry.Action,
		Code:        entry.Code,
		Description: entry.Description,
		Data:        entry.Data,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (a *stubAudit) List(_ context.Context) ([]ports.LogView, error) {
	return nil, nil
}

type stubStatsCache struct {
	stored *ports.StatsResult
	getErr error
	setErr error
	gets   int
	sets   int
}

func (c *stubStatsCache) Get(_ context.Context) (*ports.StatsResult, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stored, nil
}

func (c *stubStatsCache) Set(_ context.Context, stats *ports.StatsResult) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.stored = stats
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func seedUser(repo *stubUserRepo, id string, points int) *domain.User {
	now := time.Now().UTC()
	user := &domain.User{
		ID:       id,
		Fullname: "Ana Torres",
		Username: "ana",
		Email:    "ana@example.com",
		Active:   true,
		Data: domain.UserData{
			Points: points,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	repo.byID[id] = user
	return user
}

func seedReward(repo *stubRewardRepo, id, title string, points int) *domain.Reward {
	now := time.Now().UTC()
	reward := &domain.Reward{
		ID:        id,
		Title:     title,
		Points:    points,
		CreatedAt: now,
		UpdatedAt: now,
	}
	repo.byID[id] = reward
	return reward
}

func newClaimSvc(users *stubUserRepo, rewards *stubRewardRepo, claims *stubClaimRepo, audit *stubAudit, cache StatsCache) ports.ClaimService {
	return NewClaimService(users, rewards, claims, audit, cache, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// ClaimReward
// ---------------------------------------------------------------------------

func TestClaimService_ClaimReward_HappyPath(t *testing.T) {
	users := newStubUserRepo()
	rewards := newStubRewardRepo()
	claims := newStubClaimRepo()
	audit := &stubAudit{}

	seedUser(users, "user-1", 2450)
	seedReward(rewards, "reward-1", "Coffee voucher", 500)

	svc := newClaimSvc(users, rewards, claims, audit, nil)
	result, err := svc.ClaimReward(context.Background(), "user-1", "reward-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result.Claim.Status != domain.ClaimPending {
		t.Errorf("expected pending claim, got: %s", result.Claim.Status)
	}
	if result.Claim.UserID != "user-1" || result.Claim.RewardID != "reward-1" {
		t.Errorf("claim references wrong entities: %+v", result.Claim)
	}
	if result.Claim.Data.ClaimedAt.IsZero() {
		t.Error("expected ClaimedAt to be set")
	}
	if result.User.Data.Points != 1950 {
		t.Errorf("expected balance 1950 after debit, got: %d", result.User.Data.Points)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected exactly one audit entry, got: %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Action != domain.ActionClaim || entry.Code != domain.CodeRewardClaim {
		t.Errorf("unexpected audit action/code: %s/%s", entry.Action, entry.Code)
	}
	if entry.Data.ClaimID != result.Claim.ID {
		t.Errorf("audit entry should reference the claim, got: %q", entry.Data.ClaimID)
	}
}

func TestClaimService_ClaimReward_MissingRewardID(t *testing.T) {
	users := newStubUserRepo()
	seedUser(users, "user-1", 2450)

	svc := newClaimSvc(users, newStubRewardRepo(), newStubClaimRepo(), &stubAudit{}, nil)
	_, err := svc.ClaimReward(context.Background(), "user-1", "")
	if !errors.Is(err, domain.ErrRewardIDRequired) {
		t.Errorf("expected ErrRewardIDRequired, got: %v", err)
	}
}

func TestClaimService_ClaimReward_RewardNotFound(t *testing.T) {
	users := newStubUserRepo()
	claims := newStubClaimRepo()
	audit := &stubAudit{}
	seedUser(users, "user-1", 2450)

	svc := newClaimSvc(users, newStubRewardRepo(), claims, audit, nil)
	_, err := svc.ClaimReward(context.Background(), "user-1", "missing")
	if !errors.Is(err, domain.ErrRewardNotFound) {
		t.Fatalf("expected ErrRewardNotFound, got: %v", err)
	}
	if users.byID["user-1"].Data.Points != 2450 {
		t.Error("balance must be untouched when the reward does not exist")
	}
	if len(claims.byID) != 0 || len(audit.entries) != 0 {
		t.Error("no claim or audit entry may be written for an unknown reward")
	}
}

func TestClaimService_ClaimReward_InsufficientPoints(t *testing.T) {
	users := newStubUserRepo()
	rewards := newStubRewardRepo()
	claims := newStubClaimRepo()
	audit := &stubAudit{}

	seedUser(users, "user-1", 100)
	seedReward(rewards, "reward-1", "Concert ticket", 3000)

	svc := newClaimSvc(users, rewards, claims, audit, nil)
	_, err := svc.ClaimReward(context.Background(), "user-1", "reward-1")
	if !errors.Is(err, domain.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got: %v", err)
	}
	if users.byID["user-1"].Data.Points != 100 {
		t.Error("balance must be untouched when points are insufficient")
	}
	if len(claims.byID) != 0 || len(audit.entries) != 0 {
		t.Error("no claim or audit entry may be written for a rejected claim")
	}
}

func TestClaimService_ClaimReward_ConcurrentDebitLoses(t *testing.T) {
	users := newStubUserRepo()
	rewards := newStubRewardRepo()
	claims := newStubClaimRepo()

	seedUser(users, "user-1", 2450)
	seedReward(rewards, "reward-1", "Coffee voucher", 500)

	// Pre-check passes but the conditional write reports the balance was
	// spent by a concurrent claim in between.
	users.deductErr = domain.ErrInsufficientPoints

	svc := newClaimSvc(users, rewards, claims, &stubAudit{}, nil)
	_, err := svc.ClaimReward(context.Background(), "user-1", "reward-1")
	if !errors.Is(err, domain.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints from lost race, got: %v", err)
	}
	if len(claims.byID) != 0 {
		t.Error("no claim may be created when the debit fails")
	}
}

func TestClaimService_ClaimReward_RefundOnCreateFailure(t *testing.T) {
	users := newStubUserRepo()
	rewards := newStubRewardRepo()
	claims := newStubClaimRepo()
	audit := &stubAudit{}

	seedUser(users, "user-1", 2450)
	seedReward(rewards, "reward-1", "Coffee voucher", 500)
	claims.createErr = errors.New("mongo unavailable")

	svc := newClaimSvc(users, rewards, claims, audit, nil)
	_, err := svc.ClaimReward(context.Background(), "user-1", "reward-1")
	if err == nil {
		t.Fatal("expected error when claim creation fails")
	}
	if users.byID["user-1"].Data.Points != 2450 {
		t.Errorf("expected debit to be refunded, balance is: %d", users.byID["user-1"].Data.Points)
	}
	if len(users.refunds) != 1 || users.refunds[0] != 500 {
		t.Errorf("expected one refund of 500, got: %v", users.refunds)
	}
	if len(audit.entries) != 0 {
		t.Error("no audit entry may be written for a failed claim")
	}
}

func TestClaimService_ClaimReward_AuditFailureIsNonFatal(t *testing.T) {
	users := newStubUserRepo()
	rewards := newStubRewardRepo()
	claims := newStubClaimRepo()
	audit := &stubAudit{recordErr: errors.New("mongo unavailable")}

	seedUser(users, "user-1", 2450)
	seedReward(rewards, "reward-1", "Coffee voucher", 500)

	svc := newClaimSvc(users, rewards, claims, audit, nil)
	result, err := svc.ClaimReward(context.Background(), "user-1", "reward-1")
	if err != nil {
		t.Fatalf("expected audit failure to be non-fatal, got: %v", err)
	}
	if result.User.Data.Points != 1950 {
		t.Errorf("expected debit to stand, balance is: %d", result.User.Data.Points)
	}
	if len(claims.byID) != 1 {
		t.Error("expected claim to be created despite audit failure")
	}
}

// ---------------------------------------------------------------------------
// UpdateClaimStatus
// ---------------------------------------------------------------------------

func seedClaim(repo *stubClaimRepo, id, userID, rewardID string, status domain.ClaimStatus) *domain.Claim {
	created := time.Now().UTC().Add(-time.Hour)
	claim := &domain.Claim{
		ID:        id,
		UserID:    userID,
		RewardID:  rewardID,
		Status:    status,
		Data:      domain.ClaimMeta{ClaimedAt: created},
		CreatedAt: created,
		UpdatedAt: created,
	}
	repo.byID[id] = claim
	return claim
}

func TestClaimService_UpdateClaimStatus_HappyPath(t *testing.T) {
	users := newStubUserRepo()
	rewards := newStubRewardRepo()
	claims := newStubClaimRepo()
	audit := &stubAudit{}

	seedUser(users, "user-1", 1950)
	seedReward(rewards, "reward-1", "Coffee voucher", 500)
	original := seedClaim(claims, "claim-1", "user-1", "reward-1", domain.ClaimPending)

	svc := newClaimSvc(users, rewards, claims, audit, nil)
	updated, err := svc.UpdateClaimStatus(context.Background(), "claim-1", "approved", "admin-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if updated.Status != domain.ClaimApproved {
		t.Errorf("expected approved, got: %s", updated.Status)
	}
	if !updated.UpdatedAt.After(original.CreatedAt) {
		t.Error("expected UpdatedAt to be refreshed")
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected one audit entry, got: %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Action != domain.ActionUpdate || entry.Code != domain.CodeRewardUpdate {
		t.Errorf("unexpected audit action/code: %s/%s", entry.Action, entry.Code)
	}
	if entry.Data.AdminID != "admin-1" || entry.Data.Status != domain.ClaimApproved {
		t.Errorf("audit entry should carry admin and new status, got: %+v", entry.Data)
	}
}

func TestClaimService_UpdateClaimStatus_InvalidStatus(t *testing.T) {
	claims := newStubClaimRepo()
	seedClaim(claims, "claim-1", "user-1", "reward-1", domain.ClaimPending)

	svc := newClaimSvc(newStubUserRepo(), newStubRewardRepo(), claims, &stubAudit{}, nil)
	_, err := svc.UpdateClaimStatus(context.Background(), "claim-1", "shipped", "admin-1")
	if !errors.Is(err, domain.ErrInvalidClaimStatus) {
		t.Errorf("expected ErrInvalidClaimStatus, got: %v", err)
	}
	if claims.byID["claim-1"].Status != domain.ClaimPending {
		t.Error("claim must keep its status on an invalid input")
	}
}

func TestClaimService_UpdateClaimStatus_NotFound(t *testing.T) {
	svc := newClaimSvc(newStubUserRepo(), newStubRewardRepo(), newStubClaimRepo(), &stubAudit{}, nil)
	_, err := svc.UpdateClaimStatus(context.Background(), "missing", "approved", "admin-1")
	if !errors.Is(err, domain.ErrClaimNotFound) {
		t.Errorf("expected ErrClaimNotFound, got: %v", err)
	}
}

func TestClaimService_UpdateClaimStatus_RejectionKeepsDebit(t *testing.T) {
	users := newStubUserRepo()
	rewards := newStubRewardRepo()
	claims := newStubClaimRepo()

	seedUser(users, "user-1", 1950)
	seedReward(rewards, "reward-1", "Coffee voucher", 500)
	seedClaim(claims, "claim-1", "user-1", "reward-1", domain.ClaimPending)

	svc := newClaimSvc(users, rewards, claims, &stubAudit{}, nil)
	if _, err := svc.UpdateClaimStatus(context.Background(), "claim-1", "rejected", "admin-1"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if users.byID["user-1"].Data.Points != 1950 {
		t.Errorf("rejection must not refund points, balance is: %d", users.byID["user-1"].Data.Points)
	}
}

// ---------------------------------------------------------------------------
// Listings
// ---------------------------------------------------------------------------

func TestClaimService_ListUserClaims_JoinsRewards(t *testing.T) {
	users := newStubUserRepo()
	rewards := newStubRewardRepo()
	claims := newStubClaimRepo()

	seedUser(users, "user-1", 1950)
	seedReward(rewards, "reward-1", "Coffee voucher", 500)
	seedClaim(claims, "claim-1", "user-1", "reward-1", domain.ClaimPending)
	// Claim for a reward that was since removed from the catalog.
	seedClaim(claims, "claim-2", "user-1", "reward-gone", domain.ClaimApproved)
	// Another user's claim must not appear.
	seedClaim(claims, "claim-3", "user-2", "reward-1", domain.ClaimPending)

	svc := newClaimSvc(users, rewards, claims, &stubAudit{}, nil)
	views, err := svc.ListUserClaims(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 claims for user-1, got: %d", len(views))
	}
	for _, v := range views {
		switch v.Claim.ID {
		case "claim-1":
			if v.Reward == nil || v.Reward.Title != "Coffee voucher" {
				t.Errorf("expected reward joined for claim-1, got: %+v", v.Reward)
			}
		case "claim-2":
			if v.Reward != nil {
				t.Errorf("expected nil reward for removed catalog entry, got: %+v", v.Reward)
			}
		default:
			t.Errorf("unexpected claim in listing: %s", v.Claim.ID)
		}
	}
}

func TestClaimService_ListClaims_FiltersByStatus(t *testing.T) {
	users := newStubUserRepo()
	rewards := newStubRewardRepo()
	claims := newStubClaimRepo()

	seedUser(users, "user-1", 1950)
	seedReward(rewards, "reward-1", "Coffee voucher", 500)
	seedClaim(claims, "claim-1", "user-1", "reward-1", domain.ClaimPending)
	seedClaim(claims, "claim-2", "user-1", "reward-1", domain.ClaimApproved)

	svc := newClaimSvc(users, rewards, claims, &stubAudit{}, nil)
	views, err := svc.ListClaims(context.Background(), "pending")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(views) != 1 || views[0].Claim.ID != "claim-1" {
		t.Fatalf("expected only the pending claim, got: %d entries", len(views))
	}
	if views[0].User == nil || views[0].User.Fullname != "Ana Torres" {
		t.Errorf("expected user joined, got: %+v", views[0].User)
	}
	if views[0].Reward == nil || views[0].Reward.Title != "Coffee voucher" {
		t.Errorf("expected reward joined, got: %+v", views[0].Reward)
	}
}

func TestClaimService_ListClaims_InvalidStatusFilter(t *testing.T) {
	svc := newClaimSvc(newStubUserRepo(), newStubRewardRepo(), newStubClaimRepo(), &stubAudit{}, nil)
	_, err := svc.ListClaims(context.Background(), "bogus")
	if !errors.Is(err, domain.ErrInvalidClaimStatus) {
		t.Errorf("expected ErrInvalidClaimStatus, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

func TestClaimService_Stats_ComputesAndCaches(t *testing.T) {
	users := newStubUserRepo()
	rewards := newStubRewardRepo()
	claims := newStubClaimRepo()
	cache := &stubStatsCache{}

	seedReward(rewards, "reward-1", "Coffee voucher", 500)
	seedReward(rewards, "reward-2", "Concert ticket", 3000)
	seedClaim(claims, "claim-1", "user-1", "reward-1", domain.ClaimPending)
	seedClaim(claims, "claim-2", "user-1", "reward-1", domain.ClaimApproved)

	svc := newClaimSvc(users, rewards, claims, &stubAudit{}, cache)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if stats.PendingClaims != 1 || stats.TotalClaims != 2 || stats.TotalRewards != 2 {
		t.Errorf("unexpected counters: %+v", stats)
	}
	if cache.sets != 1 {
		t.Errorf("expected computed stats to be cached, sets: %d", cache.sets)
	}
}

func TestClaimService_Stats_ServedFromCache(t *testing.T) {
	claims := newStubClaimRepo()
	seedClaim(claims, "claim-1", "user-1", "reward-1", domain.ClaimPending)

	cache := &stubStatsCache{stored: &ports.StatsResult{PendingClaims: 7, TotalClaims: 9, TotalRewards: 3}}
	svc := newClaimSvc(newStubUserRepo(), newStubRewardRepo(), claims, &stubAudit{}, cache)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if stats.PendingClaims != 7 {
		t.Errorf("expected cached counters, got: %+v", stats)
	}
	if cache.sets != 0 {
		t.Error("cache hit must not trigger a write")
	}
}

func TestClaimService_Stats_CacheErrorFallsBack(t *testing.T) {
	claims := newStubClaimRepo()
	seedClaim(claims, "claim-1", "user-1", "reward-1", domain.ClaimPending)

	cache := &stubStatsCache{getErr: errors.New("redis timeout"), setErr: errors.New("redis timeout")}
	svc := newClaimSvc(newStubUserRepo(), newStubRewardRepo(), claims, &stubAudit{}, cache)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("expected cache errors to be non-fatal, got: %v", err)
	}
	if stats.PendingClaims != 1 || stats.TotalClaims != 1 {
		t.Errorf("unexpected counters: %+v", stats)
	}
}
