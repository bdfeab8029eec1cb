package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ouaf-asso/ouaf-api/internal/dto"
	"github.com/ouaf-asso/ouaf-api/internal/service"
	"github.com/ouaf-asso/ouaf-api/internal/utils"
)

// BackofficeHandler exposes the staff CRUD endpoints for animals, events,
// activities and the organisation chart.
type BackofficeHandler struct {
	animals    service.AnimalService
	events     service.EventService
	activities service.ActivityService
	chart      service.ChartService
	media      service.MediaService
	logger     zerolog.Logger
}

// NewBackofficeHandler constructs the backoffice handler.
func NewBackofficeHandler(
	animals service.AnimalService,
	events service.EventService,
	activities service.ActivityService,
	chart service.ChartService,
	media service.MediaService,
	logger zerolog.Logger,
) *BackofficeHandler {
	return &BackofficeHandler{
		animals:    animals,
		events:     events,
		activities: activities,
		chart:      chart,
		media:      media,
		logger:     logger.With().Str("component", "backoffice_handler").Logger(),
	}
}

// Register wires the backoffice routes. The router is expected to be guarded
// by the JWT and role middlewares.
func (h *BackofficeHandler) Register(router fiber.Router) {
	animals := router.Group("/animals")
	animals.Post("", h.createAnimal)
	animals.Put("/:id", h.updateAnimal)
	animals.Delete("/:id", h.deleteAnimal)
	animals.Post("/:id/media", h.uploadAnimalMedia)

	events := router.Group("/events")
	events.Post("", h.createEvent)
	events.Put("/:id", h.updateEvent)
	events.Delete("/:id", h.deleteEvent)

	activities := router.Group("/activities")
	activities.Post("/categories", h.createCategory)
	activities.Put("/categories/:id", h.updateCategory)
	activities.Delete("/categories/:id", h.deleteCategory)
	activities.Post("", h.createActivity)
	activities.Put("/:id", h.updateActivity)
	activities.Delete("/:id", h.deleteActivity)

	chart := router.Group("/organisation-chart")
	chart.Post("", h.createChartEntry)
	chart.Put("/:id", h.updateChartEntry)
	chart.Delete("/:id", h.deleteChartEntry)
}

func (h *BackofficeHandler) createAnimal(c *fiber.Ctx) error {
	var payload dto.AnimalUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	animal, err := h.animals.Create(c.Context(), payload)
	if err != nil {
		return h.fail(c, err, "failed to create animal")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "animal created", animal)
}

func (h *BackofficeHandler) updateAnimal(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.AnimalUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	animal, err := h.animals.Update(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "failed to update animal")
	}
	return utils.SendSuccess(c, "animal updated", animal)
}

func (h *BackofficeHandler) deleteAnimal(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.animals.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "failed to delete animal")
	}
	return utils.SendSuccess(c, "animal deleted", nil)
}

func (h *BackofficeHandler) uploadAnimalMedia(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "file is required")
	}

	var userID *uint
	if uid := userIDFromContext(c); uid > 0 {
		userID = &uid
	}

	upload, err := h.media.Upload(c.Context(), file, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadTooLarge):
			return utils.SendError(c, fiber.StatusRequestEntityTooLarge, "file too large")
		case errors.Is(err, service.ErrUploadTypeNotAllowed):
			return utils.SendError(c, fiber.StatusUnsupportedMediaType, "file type not allowed")
		default:
			return h.fail(c, err, "failed to store media")
		}
	}

	animal, err := h.animals.AttachMedia(c.Context(), id, upload, c.FormValue("caption"))
	if err != nil {
		return h.fail(c, err, "failed to attach media")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "media attached", animal)
}

func (h *BackofficeHandler) createEvent(c *fiber.Ctx) error {
	var payload dto.EventUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	event, err := h.events.Create(c.Context(), payload)
	if err != nil {
		return h.fail(c, err, "failed to create event")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "event created", event)
}

func (h *BackofficeHandler) updateEvent(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.EventUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	event, err := h.events.Update(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "failed to update event")
	}
	return utils.SendSuccess(c, "event updated", event)
}

func (h *BackofficeHandler) deleteEvent(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.events.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "failed to delete event")
	}
	return utils.SendSuccess(c, "event deleted", nil)
}

func (h *BackofficeHandler) createCategory(c *fiber.Ctx) error {
	var payload dto.ActivityCategoryUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	category, err := h.activities.CreateCategory(c.Context(), payload)
	if err != nil {
		return h.fail(c, err, "failed to create category")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "category created", category)
}

func (h *BackofficeHandler) updateCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.ActivityCategoryUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	category, err := h.activities.UpdateCategory(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "failed to update category")
	}
	return utils.SendSuccess(c, "category updated", category)
}

func (h *BackofficeHandler) deleteCategory(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.activities.DeleteCategory(c.Context(), id); err != nil {
		return h.fail(c, err, "failed to delete category")
	}
	return utils.SendSuccess(c, "category deleted", nil)
}

func (h *BackofficeHandler) createActivity(c *fiber.Ctx) error {
	var payload dto.ActivityUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	activity, err := h.activities.CreateActivity(c.Context(), payload)
	if err != nil {
		return h.fail(c, err, "failed to create activity")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "activity created", activity)
}

func (h *BackofficeHandler) updateActivity(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.ActivityUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	activity, err := h.activities.UpdateActivity(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "failed to update activity")
	}
	return utils.SendSuccess(c, "activity updated", activity)
}

func (h *BackofficeHandler) deleteActivity(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.activities.DeleteActivity(c.Context(), id); err != nil {
		return h.fail(c, err, "failed to delete activity")
	}
	return utils.SendSuccess(c, "activity deleted", nil)
}

func (h *BackofficeHandler) createChartEntry(c *fiber.Ctx) error {
	var payload dto.ChartEntryUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := h.chart.Create(c.Context(), payload)
	if err != nil {
		return h.fail(c, err, "failed to create chart entry")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "chart entry created", entry)
}

func (h *BackofficeHandler) updateChartEntry(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload dto.ChartEntryUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := h.chart.Update(c.Context(), id, payload)
	if err != nil {
		return h.fail(c, err, "failed to update chart entry")
	}
	return utils.SendSuccess(c, "chart entry updated", entry)
}

func (h *BackofficeHandler) deleteChartEntry(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := h.chart.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, "failed to delete chart entry")
	}
	return utils.SendSuccess(c, "chart entry deleted", nil)
}

// fail maps service errors to HTTP responses with consistent logging.
func (h *BackofficeHandler) fail(c *fiber.Ctx, err error, message string) error {
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "not found")
	default:
		h.logger.Error().Err(err).Msg(message)
		return utils.SendError(c, fiber.StatusInternalServerError, message)
	}
}
