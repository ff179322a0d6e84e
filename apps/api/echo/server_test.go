package echoapi

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arlahanmanthrao1/school/core"
)

func TestServer_healthz(t *testing.T) {
	app := setup(t)
	rec := app.do(newRequest(http.MethodGet, "/healthz"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_metrics(t *testing.T) {
	app := setup(t)
	app.do(newRequest(http.MethodPost, "/v1/contact", marshalObj(t, validSubmission)))

	rec := app.do(newRequest(http.MethodGet, "/metrics"))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `school_contact_submissions_total{outcome="sent"} 1`)
}

func TestServer_static(t *testing.T) {
	app := setup(t)
	rec := app.do(newRequest(http.MethodGet, "/static/robots.txt"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_shutdownError(t *testing.T) {
	app := setup(t)
	app.server.app.GET("/boom", func(echo.Context) error {
		return core.NewShutdownError("integrity check failed")
	})

	rec := app.do(newRequest(http.MethodGet, "/boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	select {
	case <-app.server.shutdown:
	default:
		t.Error("shutdown was not signalled")
	}
}
