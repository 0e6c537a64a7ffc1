package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/perkhub/rewards-system/internal/core/domain"
	"github.com/perkhub/rewards-system/internal/core/ports"
)

type stubClaimService struct {
	claimFn    func(ctx context.Context, userID, rewardID string) (*ports.ClaimResult, error)
	updateFn   func(ctx context.Context, claimID, status, adminID string) (*domain.Claim, error)
	listMineFn func(ctx context.Context, userID string) ([]ports.UserClaimView, error)
	listFn     func(ctx context.Context, status string) ([]ports.AdminClaimView, error)
	statsFn    func(ctx context.Context) (*ports.StatsResult, error)
}

func (s *stubClaimService) ClaimReward(ctx context.Context, userID, rewardID string) (*ports.ClaimResult, error) {
	return s.claimFn(ctx, userID, rewardID)
}

func (s *stubClaimService) UpdateClaimStatus(ctx context.Context, claimID, status, adminID string) (*domain.Claim, error) {
	return s.updateFn(ctx, claimID, status, adminID)
}

func (s *stubClaimService) ListUserClaims(ctx context.Context, userID string) ([]ports.UserClaimView, error) {
	return s.listMineFn(ctx, userID)
}

func (s *stubClaimService) ListClaims(ctx context.Context, status string) ([]ports.AdminClaimView, error) {
	return s.listFn(ctx, status)
}

func (s *stubClaimService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	return s.statsFn(ctx)
}

func newClaimContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/v1/claims", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")
	return c, rec
}

func TestClaimHandler_Create_Success(t *testing.T) {
	e := echo.New()
	stub := &stubClaimService{
		claimFn: func(ctx context.Context, userID, rewardID string) (*ports.ClaimResult, error) {
			if userID != "user-1" || rewardID != "reward-1" {
				t.Fatalf("unexpected args: %s %s", userID, rewardID)
			}
			return &ports.ClaimResult{
				Claim: &domain.Claim{ID: "claim-1", UserID: userID, RewardID: rewardID, Status: domain.ClaimPending},
				User:  &domain.User{ID: userID, Data: domain.UserData{Points: 1950}},
			}, nil
		},
	}
	h := NewClaimHandler(stub)

	c, rec := newClaimContext(e, `{"reward_id":"reward-1"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	claim, ok := resp["claim"].(map[string]any)
	if !ok || claim["status"] != "pending" {
		t.Fatalf("unexpected claim payload: %+v", resp["claim"])
	}
}

func TestClaimHandler_Create_InsufficientPoints(t *testing.T) {
	e := echo.New()
	stub := &stubClaimService{
		claimFn: func(ctx context.Context, userID, rewardID string) (*ports.ClaimResult, error) {
			return nil, domain.ErrInsufficientPoints
		},
	}
	h := NewClaimHandler(stub)

	c, _ := newClaimContext(e, `{"reward_id":"reward-1"}`)
	err := h.Create(c)
	if !errors.Is(err, domain.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints to propagate, got: %v", err)
	}
}

func TestClaimHandler_Create_MissingRewardID(t *testing.T) {
	e := echo.New()
	stub := &stubClaimService{
		claimFn: func(ctx context.Context, userID, rewardID string) (*ports.ClaimResult, error) {
			if rewardID != "" {
				t.Fatalf("expected empty reward id, got: %q", rewardID)
			}
			return nil, domain.ErrRewardIDRequired
		},
	}
	h := NewClaimHandler(stub)

	c, _ := newClaimContext(e, `{}`)
	err := h.Create(c)
	if !errors.Is(err, domain.ErrRewardIDRequired) {
		t.Fatalf("expected ErrRewardIDRequired to propagate, got: %v", err)
	}
}

func TestClaimHandler_Create_Unauthenticated(t *testing.T) {
	e := echo.New()
	h := NewClaimHandler(&stubClaimService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/claims", strings.NewReader(`{"reward_id":"reward-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got: %v", err)
	}
}

func TestClaimHandler_ListMine(t *testing.T) {
	e := echo.New()
	stub := &stubClaimService{
		listMineFn: func(ctx context.Context, userID string) ([]ports.UserClaimView, error) {
			return []ports.UserClaimView{
				{Claim: &domain.Claim{ID: "claim-1", UserID: userID}},
			}, nil
		},
	}
	h := NewClaimHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/claims", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")

	if err := h.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var views []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
}
