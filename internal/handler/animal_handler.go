package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ouaf-asso/ouaf-api/internal/service"
	"github.com/ouaf-asso/ouaf-api/internal/utils"
)

// AnimalHandler serves the public animal catalogue.
type AnimalHandler struct {
	service service.AnimalService
	logger  zerolog.Logger
}

// NewAnimalHandler constructs an animal handler.
func NewAnimalHandler(service service.AnimalService, logger zerolog.Logger) *AnimalHandler {
	return &AnimalHandler{
		service: service,
		logger:  logger.With().Str("component", "animal_handler").Logger(),
	}
}

// Register wires the public animal routes.
func (h *AnimalHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.detail)
}

func (h *AnimalHandler) list(c *fiber.Ctx) error {
	animals, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list animals")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list animals")
	}
	return utils.SendSuccess(c, "animals", animals)
}

func (h *AnimalHandler) detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid animal id")
	}

	animal, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "animal not found")
		}
		h.logger.Error().Err(err).Int("animal_id", id).Msg("failed to load animal")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load animal")
	}
	return utils.SendSuccess(c, "animal", animal)
}
