package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ouaf-asso/ouaf-api/internal/handler"
	"github.com/ouaf-asso/ouaf-api/internal/models"
	"github.com/ouaf-asso/ouaf-api/internal/repository"
	"github.com/ouaf-asso/ouaf-api/internal/service"
)

func newBackofficeApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Animal{},
		&models.AnimalMedia{},
		&models.Event{},
		&models.ActivityCategory{},
		&models.Activity{},
		&models.OrganisationChartEntry{},
		&models.UploadRecord{},
	))

	validate := validator.New(validator.WithRequiredStructEnabled())
	log := zerolog.Nop()

	animals := service.NewAnimalService(repository.NewAnimalRepository(db), validate, log)
	events := service.NewEventService(repository.NewEventRepository(db), validate, log)
	activities := service.NewActivityService(repository.NewActivityRepository(db), validate, log)
	chart := service.NewChartService(repository.NewChartRepository(db), validate, log)
	media := service.NewMediaService(nil, repository.NewUploadRepository(db), 1, log)

	h := handler.NewBackofficeHandler(animals, events, activities, chart, media, log)

	app := fiber.New()
	h.Register(app.Group("/api/backoffice"))
	return app, db
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestBackofficeCreateAnimal(t *testing.T) {
	app, db := newBackofficeApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/backoffice/animals",
		`{"name":"Zelda","species":"chien","presentation":"Chienne de médiation."}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Animal{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestBackofficeCreateAnimalValidation(t *testing.T) {
	app, _ := newBackofficeApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/backoffice/animals", `{"species":"chien"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBackofficeUpdateMissingAnimal(t *testing.T) {
	app, _ := newBackofficeApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/backoffice/animals/999", `{"name":"Zelda"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBackofficeDeleteEvent(t *testing.T) {
	app, db := newBackofficeApp(t)

	event := models.Event{Summary: "Portes ouvertes"}
	require.NoError(t, db.Create(&event).Error)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/backoffice/events/%d", event.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/backoffice/events/%d", event.ID), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBackofficeActivityRequiresExistingCategory(t *testing.T) {
	app, db := newBackofficeApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/backoffice/activities",
		`{"category_id":42,"title":"Visite en classe"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	category := models.ActivityCategory{Name: "Écoles"}
	require.NoError(t, db.Create(&category).Error)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/backoffice/activities",
		fmt.Sprintf(`{"category_id":%d,"title":"Visite en classe","schedule":{"jour":"mardi"}}`, category.ID)))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestBackofficeChartEntryLifecycle(t *testing.T) {
	app, _ := newBackofficeApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/backoffice/organisation-chart",
		`{"full_name":"Claire Bernard","role":"Présidente","position":1}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/backoffice/organisation-chart",
		`{"full_name":"","role":"Présidente"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/backoffice/organisation-chart/abc",
		`{"full_name":"Claire Bernard","role":"Présidente"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBackofficeUploadRequiresFile(t *testing.T) {
	app, db := newBackofficeApp(t)

	animal := models.Animal{Name: "Zelda"}
	require.NoError(t, db.Create(&animal).Error)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/backoffice/animals/%d/media", animal.ID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
