package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ouaf-asso/ouaf-api/internal/service"
	"github.com/ouaf-asso/ouaf-api/internal/utils"
)

// ActivityHandler serves the public activity catalogue.
type ActivityHandler struct {
	service service.ActivityService
	logger  zerolog.Logger
}

// NewActivityHandler constructs an activity handler.
func NewActivityHandler(service service.ActivityService, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register wires the public activity routes.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("/categories", h.categories)
	router.Get("/categories/:id", h.byCategory)
}

func (h *ActivityHandler) categories(c *fiber.Ctx) error {
	categories, err := h.service.Categories(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list activity categories")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list categories")
	}
	return utils.SendSuccess(c, "categories", categories)
}

func (h *ActivityHandler) byCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid category id")
	}

	category, activities, err := h.service.ByCategory(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "category not found")
		}
		h.logger.Error().Err(err).Int("category_id", id).Msg("failed to load category")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load category")
	}

	return utils.SendSuccess(c, "activities", fiber.Map{
		"category":   category,
		"activities": activities,
	})
}
