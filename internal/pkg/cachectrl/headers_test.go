package cachectrl

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headersFor(t *testing.T, handler fiber.Handler) http.Header {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	return resp.Header
}

func TestOptIn(t *testing.T) {
	at := time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)
	h := headersFor(t, func(ctx *fiber.Ctx) error {
		OptIn(ctx, at)
		return ctx.SendString("ok")
	})

	assert.Equal(t, "public, max-age=3600", h.Get("Cache-Control"))
	assert.Equal(t, at.Add(time.Hour).Format(time.RFC1123), h.Get("Expires"))
	assert.NotEmpty(t, h.Get("Last-Modified"))
}

func TestOptInCustom(t *testing.T) {
	at := time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)
	h := headersFor(t, func(ctx *fiber.Ctx) error {
		OptInCustom(ctx, at, time.Minute)
		return ctx.SendString("ok")
	})

	assert.Equal(t, "public, max-age=60", h.Get("Cache-Control"))
	assert.Equal(t, at.Add(time.Minute).Format(time.RFC1123), h.Get("Expires"))
}

func TestOptOut(t *testing.T) {
	h := headersFor(t, func(ctx *fiber.Ctx) error {
		OptOut(ctx)
		return ctx.SendString("ok")
	})

	assert.Equal(t, "no-cache, no-store, must-revalidate", h.Get("Cache-Control"))
	assert.Equal(t, "no-cache", h.Get("Pragma"))
	assert.Equal(t, "0", h.Get("Expires"))
}
