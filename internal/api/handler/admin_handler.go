package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perkhub/rewards-system/internal/api/metrics"
	"github.com/perkhub/rewards-system/internal/core/domain"
	"github.com/perkhub/rewards-system/internal/core/ports"
)

// AdminHandler serves the admin dashboard: claim review, catalog management,
// the activity log, and aggregate stats. All routes sit behind RequireAdmin.
type AdminHandler struct {
	claims  ports.ClaimService
	rewards ports.RewardService
	audit   ports.AuditLogger
}

func NewAdminHandler(claims ports.ClaimService, rewards ports.RewardService, audit ports.AuditLogger) *AdminHandler {
	return &AdminHandler{claims: claims, rewards: rewards, audit: audit}
}

// ListClaims handles GET /v1/admin/claims?status=pending.
//
// @Summary      List claims joined with user and reward
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by claim status"
// @Success      200     {array}   ports.AdminClaimView
// @Failure      403     {object}  map[string]string
// @Router       /v1/admin/claims [get]
func (h *AdminHandler) ListClaims(c echo.Context) error {
	views, err := h.claims.ListClaims(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateStatusResponse struct {
	Message string        `json:"message"`
	Claim   *domain.Claim `json:"claim"`
}

// UpdateClaimStatus handles PATCH /v1/admin/claims/:id.
//
// @Summary      Update a claim's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Claim id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  updateStatusResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/claims/{id} [patch]
func (h *AdminHandler) UpdateClaimStatus(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	claim, err := h.claims.UpdateClaimStatus(c.Request().Context(), c.Param("id"), req.Status, adminID)
	if err != nil {
		return err
	}

	metrics.ClaimStatusUpdatesTotal.WithLabelValues(string(claim.Status)).Inc()

	return c.JSON(http.StatusOK, updateStatusResponse{
		Message: "Reward status updated successfully",
		Claim:   claim,
	})
}

type createRewardRequest struct {
	Title       string `json:"title" validate:"required"`
	Points      int    `json:"points" validate:"required,gt=0"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CreateReward handles POST /v1/admin/rewards.
//
// @Summary      Create a catalog reward
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRewardRequest  true  "Reward details"
// @Success      201   {object}  domain.Reward
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/admin/rewards [post]
func (h *AdminHandler) CreateReward(c echo.Context) error {
	var req createRewardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reward, err := h.rewards.Create(c.Request().Context(), ports.CreateRewardInput{
		Title:       req.Title,
		Points:      req.Points,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reward)
}

// ListLogs handles GET /v1/admin/logs — the activity trail, newest first.
//
// @Summary      List activity log entries joined with their user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.LogView
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/logs [get]
func (h *AdminHandler) ListLogs(c echo.Context) error {
	views, err := h.audit.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Dashboard counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.StatsResult
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.claims.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
