package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perkhub/rewards-system/internal/core/ports"
)

// RewardHandler serves the public reward catalog.
type RewardHandler struct {
	service ports.RewardService
}

func NewRewardHandler(service ports.RewardService) *RewardHandler {
	return &RewardHandler{service: service}
}

// List handles GET /v1/rewards.
//
// @Summary      List catalog rewards
// @Tags         rewards
// @Produce      json
// @Success      200  {array}   domain.Reward
// @Failure      500  {object}  map[string]string
// @Router       /v1/rewards [get]
func (h *RewardHandler) List(c echo.Context) error {
	rewards, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rewards)
}

// Get handles GET /v1/rewards/:id.
//
// @Summary      Get a reward by id
// @Tags         rewards
// @Produce      json
// @Param        id   path      string  true  "Reward id"
// @Success      200  {object}  domain.Reward
// @Failure      404  {object}  map[string]string
// @Router       /v1/rewards/{id} [get]
func (h *RewardHandler) Get(c echo.Context) error {
	reward, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reward)
}
