package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ouaf-asso/ouaf-api/internal/dto"
	"github.com/ouaf-asso/ouaf-api/internal/handler"
	"github.com/ouaf-asso/ouaf-api/internal/service"
)

type intakeServiceStub struct {
	receipt  dto.IntakeReceipt
	err      error
	received dto.IntakeRequest
}

func (s *intakeServiceStub) Describe(rawType string) dto.IntakeFormResponse {
	mode := service.ResolveIntakeMode(rawType)
	profile := mode.Profile()
	return dto.IntakeFormResponse{
		Mode:       string(mode),
		Title:      profile.Title,
		RenderedAt: 1_700_000_000,
	}
}

func (s *intakeServiceStub) Submit(ctx context.Context, req dto.IntakeRequest) (dto.IntakeReceipt, error) {
	s.received = req
	if s.err != nil {
		return dto.IntakeReceipt{}, s.err
	}
	return s.receipt, nil
}

func newIntakeApp(stub *intakeServiceStub) *fiber.App {
	app := fiber.New()
	h := handler.NewIntakeHandler(stub, zerolog.Nop())
	h.Register(app.Group("/api/v1/contact"))
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func postForm(app *fiber.App, target, form string, headers map[string]string) (*http.Response, error) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return app.Test(req)
}

func TestIntakeHandlerDescribe(t *testing.T) {
	app := newIntakeApp(&intakeServiceStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contact?type=benevole", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	require.Equal(t, "benevole", data["mode"])
	require.Equal(t, "Devenir bénévole", data["title"])
	require.NotZero(t, data["ts"])
}

func TestIntakeHandlerSubmitSuccess(t *testing.T) {
	stub := &intakeServiceStub{receipt: dto.IntakeReceipt{
		RequestID:      "req-1",
		Mode:           "contact",
		SuccessMessage: "Merci !",
		RedirectTo:     "/contact?type=contact",
	}}
	app := newIntakeApp(stub)

	resp, err := postForm(app, "/api/v1/contact?type=contact",
		"first_name=Jeanne&last_name=Dupont&email=jeanne%40example.com&message=Bonjour+tout+le+monde&ts=1700000000",
		map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, "contact", stub.received.Mode)
	require.Equal(t, "203.0.113.7", stub.received.ClientIP, "first forwarded address wins")
	require.Equal(t, "Jeanne", stub.received.FirstName)
	require.Equal(t, int64(1_700_000_000), stub.received.RenderedAt)

	body := decodeBody(t, resp)
	require.Equal(t, true, body["success"])
	require.Equal(t, "Merci !", body["message"])
	data := body["data"].(map[string]interface{})
	require.Equal(t, "req-1", data["request_id"])
	require.Equal(t, "/contact?type=contact", data["redirect_to"])
}

func TestIntakeHandlerSubmitRateLimited(t *testing.T) {
	app := newIntakeApp(&intakeServiceStub{err: service.ErrIntakeRateLimited})

	resp, err := postForm(app, "/api/v1/contact", "email=a%40b.fr", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, false, body["success"])
}

func TestIntakeHandlerSubmitFieldErrors(t *testing.T) {
	app := newIntakeApp(&intakeServiceStub{err: service.FieldErrors{
		"email": "Adresse email invalide.",
		"ts":    "Le formulaire a expiré, merci de recharger la page.",
	}})

	resp, err := postForm(app, "/api/v1/contact",
		"first_name=Jeanne&email=broken&message=Bonjour+tout+le+monde", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	fieldErrors := data["errors"].(map[string]interface{})
	require.Equal(t, "Adresse email invalide.", fieldErrors["email"])
	require.Contains(t, fieldErrors, "ts")

	values := data["values"].(map[string]interface{})
	require.Equal(t, "Jeanne", values["first_name"], "submitted values are echoed back")
	require.Equal(t, "broken", values["email"])
}

func TestIntakeHandlerSubmitDeliveryFailure(t *testing.T) {
	app := newIntakeApp(&intakeServiceStub{err: service.ErrIntakeDeliveryFailed})

	resp, err := postForm(app, "/api/v1/contact",
		"first_name=Jeanne&email=jeanne%40example.com&message=Bonjour+tout+le+monde", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	values := data["values"].(map[string]interface{})
	require.Equal(t, "jeanne@example.com", values["email"])
}

func TestIntakeHandlerSubmitMalformedBody(t *testing.T) {
	app := newIntakeApp(&intakeServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
