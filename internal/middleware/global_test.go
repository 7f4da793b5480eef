package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/superheroes/internal/errs"
	"github.com/deppfellow/superheroes/internal/middleware"
	"github.com/deppfellow/superheroes/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	global := middleware.NewGlobalMiddlewares(testutil.NewServer(t))

	tests := []struct {
		name       string
		method     string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        errs.NewNotFoundError("Hero not found", nil),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Hero not found"}`,
		},
		{
			name:       "bad request",
			err:        errs.NewBadRequestError("Validation failed", nil, []string{"hero_id is required", "power_id is required"}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":["hero_id is required","power_id is required"]}`,
		},
		{
			name:       "bad request without list",
			err:        errs.NewBadRequestError("Validation errors", nil, nil),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":["Validation errors"]}`,
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Route not found"}`,
		},
		{
			name:       "method not allowed",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"error":"Method Not Allowed"}`,
		},
		{
			name:       "rate limited",
			err:        echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests"),
			wantStatus: http.StatusTooManyRequests,
			wantBody:   `{"error":"Too many requests"}`,
		},
		{
			name:       "echo bad request",
			err:        echo.NewHTTPError(http.StatusBadRequest, "Syntax error"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":["Syntax error"]}`,
		},
		{
			name:       "unknown error is sanitized",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGlobalErrorHandler_Head(t *testing.T) {
	global := middleware.NewGlobalMiddlewares(testutil.NewServer(t))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/heroes/9", nil), rec)

	global.GlobalErrorHandler(errs.NewNotFoundError("Hero not found", nil), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGlobalErrorHandler_Committed(t *testing.T) {
	global := middleware.NewGlobalMiddlewares(testutil.NewServer(t))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	global.GlobalErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.Config.Server.RateLimit = 1

	mw := middleware.NewMiddlewares(srv)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(mw.RateLimit.Limit())
	e.GET("/heroes", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})

	var codes []int
	for range 3 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/heroes", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}

func TestRateLimitDisabled(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.Config.Server.RateLimit = 0

	mw := middleware.NewMiddlewares(srv)

	e := echo.New()
	e.Use(mw.RateLimit.Limit())
	e.GET("/heroes", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for range 20 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/heroes", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestContextEnhancer(t *testing.T) {
	srv := testutil.NewServer(t)
	mw := middleware.NewMiddlewares(srv)

	e := echo.New()
	e.Use(middleware.RequestID(), mw.ContextEnhancer.EnhanceContext())

	var requestID string
	var hasLogger bool
	e.GET("/", func(c echo.Context) error {
		requestID = middleware.GetRequestID(c)
		_, hasLogger = c.Get(middleware.LoggerKey).(*zerolog.Logger)
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "req-42", requestID)
	assert.True(t, hasLogger)
}
