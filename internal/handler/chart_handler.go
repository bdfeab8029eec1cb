package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ouaf-asso/ouaf-api/internal/service"
	"github.com/ouaf-asso/ouaf-api/internal/utils"
)

// ChartHandler serves the public organisation chart.
type ChartHandler struct {
	service service.ChartService
	logger  zerolog.Logger
}

// NewChartHandler constructs an organisation chart handler.
func NewChartHandler(service service.ChartService, logger zerolog.Logger) *ChartHandler {
	return &ChartHandler{
		service: service,
		logger:  logger.With().Str("component", "chart_handler").Logger(),
	}
}

// Register wires the public organisation chart routes.
func (h *ChartHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *ChartHandler) list(c *fiber.Ctx) error {
	entries, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list organisation chart")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list organisation chart")
	}
	return utils.SendSuccess(c, "organisation chart", entries)
}
