package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jnasution/hris-api/internal/interfaces/http"
)

// buildIdentityApp aplikasi Fiber minimal dengan CallerIdentity dan handler
// yang memantulkan identitas hasil resolusi.
func buildIdentityApp() *fiber.App {
	app := fiber.New()
	app.Post("/echo", apphttp.CallerIdentity(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"callerId": apphttp.GetCallerID(c)})
	})
	return app
}

func echoCallerID(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body["callerId"]
}

func TestCallerIdentity_DariHeader(t *testing.T) {
	app := buildIdentityApp()

	req := httptest.NewRequest(http.MethodPost, "/echo", nil)
	req.Header.Set("X-User-Id", "u-header")

	status, caller := echoCallerID(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u-header", caller)
}

func TestCallerIdentity_DariQuery(t *testing.T) {
	app := buildIdentityApp()

	req := httptest.NewRequest(http.MethodPost, "/echo?user_id=u-query", nil)

	status, caller := echoCallerID(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u-query", caller)
}

func TestCallerIdentity_DariBodyUserId(t *testing.T) {
	app := buildIdentityApp()

	req := httptest.NewRequest(http.MethodPost, "/echo",
		strings.NewReader(`{"userId":"u-body"}`))
	req.Header.Set("Content-Type", "application/json")

	status, caller := echoCallerID(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u-body", caller)
}

func TestCallerIdentity_DariBodyCreatedById(t *testing.T) {
	app := buildIdentityApp()

	req := httptest.NewRequest(http.MethodPost, "/echo",
		strings.NewReader(`{"createdById":"u-creator"}`))
	req.Header.Set("Content-Type", "application/json")

	status, caller := echoCallerID(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u-creator", caller)
}

func TestCallerIdentity_HeaderMenangAtasQueryDanBody(t *testing.T) {
	app := buildIdentityApp()

	req := httptest.NewRequest(http.MethodPost, "/echo?user_id=u-query",
		strings.NewReader(`{"userId":"u-body"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "u-header")

	status, caller := echoCallerID(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u-header", caller, "urutan prioritas: header, query, body")
}

func TestCallerIdentity_TanpaIdentitas_401(t *testing.T) {
	app := buildIdentityApp()

	req := httptest.NewRequest(http.MethodPost, "/echo", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNAUTHENTICATED", body["code"])
	assert.Equal(t, "Identitas pemanggil wajib disertakan", body["message"])
}

func TestCallerIdentity_BodyBukanJSON_401(t *testing.T) {
	app := buildIdentityApp()

	req := httptest.NewRequest(http.MethodPost, "/echo",
		strings.NewReader("bukan json"))

	status, _ := echoCallerID(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)
}
