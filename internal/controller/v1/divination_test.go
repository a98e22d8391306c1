package v1

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingpan.dev/backend/internal/pkg/mperr"
	"mingpan.dev/backend/internal/service"
)

func TestCastInstant(t *testing.T) {
	at, err := castInstant("1715936400")
	require.NoError(t, err)
	assert.Equal(t, int64(1715936400), at.Unix())

	at, err = castInstant("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), at, time.Second)

	_, err = castInstant("not-a-number")
	var me *mperr.MingpanError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, mperr.CodeInvalidRequest, me.ErrorCode)
}

func TestDivinationCastExplicitInstant(t *testing.T) {
	c := DivinationController{DivinationService: service.NewDivination()}
	app := fiber.New()
	app.Get("/divination", c.Cast)

	first := castBody(t, app, "/divination?t=1715936400")
	second := castBody(t, app, "/divination?t=1715936400")
	assert.Equal(t, first, second, "a fixed t must pin the cast")

	later := castBody(t, app, "/divination?t=1747472400")
	assert.NotEqual(t, first, later)
}

func castBody(t *testing.T, app *fiber.App, target string) string {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
