package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perkhub/rewards-system/internal/api/metrics"
	"github.com/perkhub/rewards-system/internal/core/domain"
	"github.com/perkhub/rewards-system/internal/core/ports"
)

// ClaimHandler handles reward redemption requests.
type ClaimHandler struct {
	service ports.ClaimService
}

func NewClaimHandler(service ports.ClaimService) *ClaimHandler {
	return &ClaimHandler{service: service}
}

type claimRequest struct {
	RewardID string `json:"reward_id"`
}

type claimResponse struct {
	Message string        `json:"message"`
	Claim   *domain.Claim `json:"claim"`
	User    *domain.User  `json:"user"`
}

// Create handles POST /v1/claims — redeems a reward for the caller.
//
// @Summary      Claim a reward
// @Tags         claims
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      claimRequest  true  "Reward to claim"
// @Success      201   {object}  claimResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/claims [post]
func (h *ClaimHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req claimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.ClaimReward(c.Request().Context(), userID, req.RewardID)
	if err != nil {
		metrics.ClaimsRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		return err
	}

	metrics.ClaimsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, claimResponse{
		Message: "Reward claimed successfully",
		Claim:   result.Claim,
		User:    result.User,
	})
}

// ListMine handles GET /v1/claims — the caller's claim history.
//
// @Summary      List the caller's claims
// @Tags         claims
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.UserClaimView
// @Failure      401  {object}  map[string]string
// @Router       /v1/claims [get]
func (h *ClaimHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListUserClaims(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// rejectReason buckets claim failures for the rejection counter.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientPoints):
		return "insufficient_points"
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrRewardNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrRewardIDRequired):
		return "invalid_request"
	default:
		return "error"
	}
}
