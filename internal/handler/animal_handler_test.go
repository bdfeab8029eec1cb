package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
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

func newAnimalApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Animal{}, &models.AnimalMedia{}))

	svc := service.NewAnimalService(
		repository.NewAnimalRepository(db),
		validator.New(validator.WithRequiredStructEnabled()),
		zerolog.Nop(),
	)

	app := fiber.New()
	handler.NewAnimalHandler(svc, zerolog.Nop()).Register(app.Group("/api/v1/animals"))
	return app, db
}

func TestAnimalHandlerList(t *testing.T) {
	app, db := newAnimalApp(t)

	zelda := models.Animal{Name: "Zelda", Species: "chien"}
	require.NoError(t, db.Create(&zelda).Error)
	require.NoError(t, db.Create(&models.AnimalMedia{
		AnimalID: zelda.ID,
		URL:      "https://cdn.example.com/zelda.jpg",
		MimeType: "image",
		IsImage:  true,
	}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/animals", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	animals := body["data"].([]interface{})
	require.Len(t, animals, 1)
	first := animals[0].(map[string]interface{})
	require.Equal(t, "Zelda", first["name"])
	require.Equal(t, "https://cdn.example.com/zelda.jpg", first["presentation_image"])
}

func TestAnimalHandlerDetailNotFound(t *testing.T) {
	app, _ := newAnimalApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/animals/42", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/animals/abc", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
