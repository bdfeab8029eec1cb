package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ouaf-asso/ouaf-api/internal/service"
	"github.com/ouaf-asso/ouaf-api/internal/utils"
)

// EventHandler serves the public event agenda.
type EventHandler struct {
	service service.EventService
	logger  zerolog.Logger
}

// NewEventHandler constructs an event handler.
func NewEventHandler(service service.EventService, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.With().Str("component", "event_handler").Logger(),
	}
}

// Register wires the public event routes.
func (h *EventHandler) Register(router fiber.Router) {
	router.Get("", h.upcoming)
}

func (h *EventHandler) upcoming(c *fiber.Ctx) error {
	events, err := h.service.Upcoming(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list events")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list events")
	}
	return utils.SendSuccess(c, "events", events)
}
