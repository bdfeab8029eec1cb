package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ouaf-asso/ouaf-api/internal/dto"
	"github.com/ouaf-asso/ouaf-api/internal/observability"
)

const (
	// minFormAge rejects submissions faster than a human could type.
	minFormAge = 3 * time.Second
	// maxFormAge rejects stale forms whose page must be reloaded.
	maxFormAge = time.Hour
)

var (
	// ErrIntakeRateLimited indicates the client IP exhausted its submission budget.
	ErrIntakeRateLimited = errors.New("too many submissions from this address")
	// ErrIntakeDeliveryFailed indicates the organization email could not be sent.
	ErrIntakeDeliveryFailed = errors.New("intake delivery failed")
)

// FieldErrors maps form field names to user-facing error messages.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return fmt.Sprintf("intake validation failed on %d field(s)", len(f))
}

// IntakeService exposes the contact/application intake workflow.
type IntakeService interface {
	Describe(rawType string) dto.IntakeFormResponse
	Submit(ctx context.Context, req dto.IntakeRequest) (dto.IntakeReceipt, error)
}

type intakeService struct {
	limiter   *RateLimiter
	notifier  *IntakeNotifier
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
	region    string
	now       func() time.Time
}

// NewIntakeService constructs the intake workflow service. region is the
// default phone-number region (ISO 3166-1 alpha-2), e.g. "FR".
func NewIntakeService(limiter *RateLimiter, notifier *IntakeNotifier, validate *validator.Validate, region string, logger zerolog.Logger) IntakeService {
	if region == "" {
		region = "FR"
	}
	return &intakeService{
		limiter:   limiter,
		notifier:  notifier,
		validator: validate,
		logger:    logger.With().Str("component", "intake_service").Logger(),
		tracer:    otel.Tracer("github.com/ouaf-asso/ouaf-api/internal/service/intake"),
		region:    region,
		now:       time.Now,
	}
}

// Describe resolves the mode for the raw "type" parameter and returns the copy
// plus a fresh render timestamp.
func (s *intakeService) Describe(rawType string) dto.IntakeFormResponse {
	mode := ResolveIntakeMode(rawType)
	profile := mode.Profile()
	return dto.IntakeFormResponse{
		Mode:        string(mode),
		Title:       profile.Title,
		Intro:       profile.Intro,
		Placeholder: profile.Placeholder,
		RenderedAt:  s.now().Unix(),
	}
}

// Submit runs the full workflow: rate gate, validation, then the two-phase
// email dispatch. The organization send is fatal on failure; the
// acknowledgment send is best-effort.
func (s *intakeService) Submit(ctx context.Context, req dto.IntakeRequest) (dto.IntakeReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "intake.submit")
	defer span.End()

	mode := ResolveIntakeMode(req.Mode)
	span.SetAttributes(attribute.String("intake.mode", string(mode)))

	if !s.limiter.Allow(ctx, req.ClientIP) {
		span.SetStatus(codes.Error, "rate limited")
		observability.IntakeSubmissions().WithLabelValues("rate_limited").Inc()
		return dto.IntakeReceipt{}, ErrIntakeRateLimited
	}

	phone, fieldErrs, spam := s.validate(req)
	if len(fieldErrs) > 0 {
		span.SetStatus(codes.Error, "validation failed")
		if spam {
			observability.IntakeSubmissions().WithLabelValues("spam").Inc()
		} else {
			observability.IntakeSubmissions().WithLabelValues("invalid").Inc()
		}
		return dto.IntakeReceipt{}, fieldErrs
	}

	sub := Submission{
		RequestID:   uuid.NewString(),
		Mode:        mode,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       phone,
		Message:     strings.TrimSpace(req.Message),
		SubmittedAt: s.now(),
	}
	span.SetAttributes(attribute.String("intake.request_id", sub.RequestID))

	logger := s.logger.With().Str("request_id", sub.RequestID).Str("mode", string(mode)).Logger()

	if err := s.notifier.SendOrganization(ctx, sub); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "organization send failed")
		observability.IntakeSubmissions().WithLabelValues("org_send_failed").Inc()
		logger.Error().Err(err).Msg("organization email send failed")
		return dto.IntakeReceipt{}, ErrIntakeDeliveryFailed
	}

	if err := s.notifier.SendAcknowledgment(ctx, sub); err != nil {
		span.RecordError(err)
		observability.IntakeSubmissions().WithLabelValues("ack_send_failed").Inc()
		logger.Warn().Err(err).Msg("acknowledgment email send failed")
	}

	observability.IntakeSubmissions().WithLabelValues("accepted").Inc()
	logger.Info().Str("email", maskEmail(sub.Email)).Msg("intake submission processed")
	span.SetStatus(codes.Ok, "delivered")

	return dto.IntakeReceipt{
		RequestID:      sub.RequestID,
		Mode:           string(mode),
		SuccessMessage: mode.Profile().SuccessMessage,
		RedirectTo:     "/contact?type=" + string(mode),
	}, nil
}

// validate applies the anti-abuse checks and field rules. It performs no
// network or storage calls. The returned phone is normalized to E.164.
func (s *intakeService) validate(req dto.IntakeRequest) (string, FieldErrors, bool) {
	if req.Website != "" {
		// Honeypot tripped. The message stays generic on purpose.
		return "", FieldErrors{"website": "Requête invalide."}, true
	}

	errs := FieldErrors{}

	switch age := s.now().Unix() - req.RenderedAt; {
	case req.RenderedAt <= 0:
		errs["ts"] = "Le formulaire est invalide, merci de recharger la page."
	case age < int64(minFormAge/time.Second):
		errs["ts"] = "Veuillez patienter quelques secondes avant d'envoyer le formulaire."
	case age >= int64(maxFormAge/time.Second):
		errs["ts"] = "Le formulaire a expiré, merci de recharger la page."
	}

	if err := s.validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				key := intakeFieldKey(fieldErr.Field())
				if _, exists := errs[key]; !exists {
					errs[key] = intakeFieldMessage(fieldErr)
				}
			}
		} else {
			errs["form"] = "Requête invalide."
		}
	}

	phone := strings.TrimSpace(req.Phone)
	if phone != "" {
		normalized, err := normalizePhone(phone, s.region)
		if err != nil {
			errs["phone"] = "Numéro de téléphone invalide."
		} else {
			phone = normalized
		}
	}

	if len(errs) > 0 {
		return "", errs, false
	}
	return phone, nil, false
}

func normalizePhone(raw, region string) (string, error) {
	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsPossibleNumber(parsed) || !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("number is not valid for region %s", region)
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

func intakeFieldKey(structField string) string {
	switch structField {
	case "FirstName":
		return "first_name"
	case "LastName":
		return "last_name"
	case "Email":
		return "email"
	case "Phone":
		return "phone"
	case "Message":
		return "message"
	default:
		return strings.ToLower(structField)
	}
}

func intakeFieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Ce champ est obligatoire."
	case "email":
		return "Adresse email invalide."
	case "min":
		return "Votre message est trop court."
	case "max":
		return "Ce champ est trop long."
	default:
		return "Valeur invalide."
	}
}

func maskEmail(email string) string {
	if email == "" {
		return ""
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	domain := parts[1]
	if len(local) <= 2 {
		local = local[:1] + "***"
	} else {
		local = local[:1] + "***" + local[len(local)-1:]
	}
	return local + "@" + domain
}
