package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ouaf-asso/ouaf-api/internal/dto"
	"github.com/ouaf-asso/ouaf-api/internal/service"
	"github.com/ouaf-asso/ouaf-api/internal/utils"
)

// IntakeHandler serves the contact/application form: GET renders the copy for
// the requested mode with a fresh timestamp, POST runs the submission workflow.
type IntakeHandler struct {
	service service.IntakeService
	logger  zerolog.Logger
}

// NewIntakeHandler constructs an intake handler.
func NewIntakeHandler(service service.IntakeService, logger zerolog.Logger) *IntakeHandler {
	return &IntakeHandler{
		service: service,
		logger:  logger.With().Str("component", "intake_handler").Logger(),
	}
}

// Register wires intake routes.
func (h *IntakeHandler) Register(router fiber.Router) {
	router.Get("", h.describe)
	router.Post("", h.submit)
}

func (h *IntakeHandler) describe(c *fiber.Ctx) error {
	form := h.service.Describe(c.Query("type"))
	return utils.SendSuccess(c, "formulaire", form)
}

func (h *IntakeHandler) submit(c *fiber.Ctx) error {
	var payload dto.IntakeRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Requête invalide.")
	}

	payload.Mode = c.Query("type")
	payload.ClientIP = clientIP(c)

	receipt, err := h.service.Submit(c.Context(), payload)
	if err != nil {
		var fieldErrs service.FieldErrors
		switch {
		case errors.Is(err, service.ErrIntakeRateLimited):
			return utils.SendError(c, fiber.StatusTooManyRequests,
				"Trop de messages envoyés depuis votre adresse. Merci de réessayer dans quelques minutes.")
		case errors.As(err, &fieldErrs):
			return utils.SendErrorWithData(c, fiber.StatusBadRequest,
				"Le formulaire contient des erreurs.", fiber.Map{
					"errors": fieldErrs,
					"values": echoValues(payload),
				})
		case errors.Is(err, service.ErrIntakeDeliveryFailed):
			return utils.SendErrorWithData(c, fiber.StatusServiceUnavailable,
				"Votre message n'a pas pu être envoyé. Merci de réessayer dans quelques instants.", fiber.Map{
					"values": echoValues(payload),
				})
		default:
			h.logger.Error().Err(err).Msg("failed to process intake submission")
			return utils.SendError(c, fiber.StatusInternalServerError, "Une erreur est survenue.")
		}
	}

	return utils.SendSuccess(c, receipt.SuccessMessage, receipt)
}

// clientIP prefers the first entry of X-Forwarded-For, falling back to the
// direct peer address.
func clientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	return c.IP()
}

// echoValues returns the harmless submitted fields so the form can be
// redisplayed with the entered values intact.
func echoValues(payload dto.IntakeRequest) dto.IntakeValues {
	return dto.IntakeValues{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Message:   payload.Message,
	}
}
