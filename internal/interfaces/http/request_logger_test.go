package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

func buildLoggedApp(buf *bytes.Buffer) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "production", Level: "info", Output: buf})))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetRequestID(c))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.ErrTeapot
	})
	return app
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestRequestLogger_GeneraRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)

	reqID := resp.Header.Get(apphttp.HeaderRequestID)
	_, err = uuid.Parse(reqID)
	assert.NoError(t, err, "el request id generado es un UUID")

	line := lastLogLine(t, &buf)
	assert.Equal(t, reqID, line["request_id"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/ping", line["path"])
	assert.Equal(t, float64(200), line["status"])
	assert.Equal(t, "info", line["level"])
}

func TestRequestLogger_RespetaRequestIDEntrante(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
	assert.Equal(t, "abc-123", lastLogLine(t, &buf)["request_id"])
}

func TestRequestLogger_ErrorDelHandlerSeRegistraConSuStatus(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	line := lastLogLine(t, &buf)
	assert.Equal(t, float64(fiber.StatusTeapot), line["status"])
	assert.Equal(t, "warn", line["level"])
}

func TestUseMiddleware_PanicoSeRegistraComo500(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	apphttp.UseMiddleware(app, logger.New(logger.Config{Env: "production", Level: "info", Output: &buf}))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("handler roto")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	line := lastLogLine(t, &buf)
	assert.Equal(t, "/panic", line["path"])
	assert.Equal(t, float64(fiber.StatusInternalServerError), line["status"])
	assert.Equal(t, "error", line["level"])
	assert.Contains(t, line["error"], "handler roto")
}
