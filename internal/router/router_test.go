package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/superheroes/internal/handler"
	"github.com/deppfellow/superheroes/internal/model"
	"github.com/deppfellow/superheroes/internal/repository"
	"github.com/deppfellow/superheroes/internal/router"
	"github.com/deppfellow/superheroes/internal/service"
	"github.com/deppfellow/superheroes/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flightDescription = "Gives the wielder the ability to fly through the skies at supersonic speed"

type app struct {
	echo  *echo.Echo
	store repository.Store
}

// newApp serves the full router over a database holding Kamala Khan
// with a strong "flight" power, plus an unlinked "super strength".
func newApp(t *testing.T) *app {
	t.Helper()
	ctx := context.Background()

	srv := testutil.NewServer(t)
	repos := repository.NewRepositories(srv)
	services, err := service.NewService(srv, repos)
	require.NoError(t, err)

	store := repos.Store

	hero, err := model.NewHero("Kamala Khan", "Ms. Marvel")
	require.NoError(t, err)
	require.NoError(t, store.CreateHero(ctx, hero))

	flight, err := model.NewPower("flight", flightDescription)
	require.NoError(t, err)
	require.NoError(t, store.CreatePower(ctx, flight))

	strength, err := model.NewPower("super strength", "Gives the wielder super-human strengths")
	require.NoError(t, err)
	require.NoError(t, store.CreatePower(ctx, strength))

	link, err := model.NewHeroPower(hero.ID, flight.ID, "strong")
	require.NoError(t, err)
	require.NoError(t, store.CreateHeroPower(ctx, link))

	return &app{
		echo:  router.NewRouter(srv, handler.NewHandlers(srv, services)),
		store: store,
	}
}

func (a *app) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestGetHero(t *testing.T) {
	a := newApp(t)

	rec, body := a.do(t, http.MethodGet, "/heroes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "Kamala Khan", body["name"])
	assert.Equal(t, "Ms. Marvel", body["super_name"])

	links := body["hero_powers"].([]any)
	require.Len(t, links, 1)

	link := links[0].(map[string]any)
	assert.Equal(t, "strong", link["strength"])
	assert.EqualValues(t, 1, link["hero_id"])
	assert.EqualValues(t, 1, link["power_id"])
	assert.NotContains(t, link, "hero")

	power := link["power"].(map[string]any)
	assert.Equal(t, "flight", power["name"])
	assert.Equal(t, flightDescription, power["description"])
	assert.NotContains(t, power, "hero_powers")
}

func TestListHeroesAndPowers(t *testing.T) {
	a := newApp(t)

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/heroes", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var heroes []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &heroes))
	require.Len(t, heroes, 1)
	assert.Len(t, heroes[0], 3)
	assert.NotContains(t, heroes[0], "hero_powers")

	rec = httptest.NewRecorder()
	a.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/powers", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var powers []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &powers))
	require.Len(t, powers, 2)
	assert.Equal(t, "flight", powers[0]["name"])
	assert.Len(t, powers[0], 3)
}

func TestListHeroesEmpty(t *testing.T) {
	a := newApp(t)
	require.NoError(t, a.store.DeleteAll(context.Background()))

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/heroes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	a := newApp(t)

	tests := []struct {
		target string
		want   string
	}{
		{"/heroes/999", "Hero not found"},
		{"/heroes/0", "Hero not found"},
		{"/heroes/-1", "Hero not found"},
		{"/powers/999", "Power not found"},
		{"/powers/0", "Power not found"},
		{"/villains", "Route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec, body := a.do(t, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, map[string]any{"error": tt.want}, body)
		})
	}
}

func TestMalformedID(t *testing.T) {
	a := newApp(t)

	rec, body := a.do(t, http.MethodGet, "/heroes/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, "errors")
}

func TestUpdatePower(t *testing.T) {
	const updated = "Soars above the clouds faster than any jet"

	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "success",
			target:     "/powers/1",
			body:       `{"description":"` + updated + `"}`,
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"id": float64(1), "name": "flight", "description": updated},
		},
		{
			name:       "too short",
			target:     "/powers/1",
			body:       `{"description":"short"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"errors": []any{"Description must be at least 20 characters long."}},
		},
		{
			name:       "missing description",
			target:     "/powers/1",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"errors": []any{"Validation errors"}},
		},
		{
			name:       "empty description",
			target:     "/powers/1",
			body:       `{"description":""}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"errors": []any{"Validation errors"}},
		},
		{
			name:       "zero id",
			target:     "/powers/0",
			body:       `{"description":"` + updated + `"}`,
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "Power not found"},
		},
		{
			name:       "missing power",
			target:     "/powers/999",
			body:       `{"description":"` + updated + `"}`,
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": "Power not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(t)

			rec, body := a.do(t, http.MethodPatch, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, body)

			if tt.wantStatus != http.StatusOK {
				_, power := a.do(t, http.MethodGet, "/powers/1", "")
				assert.Equal(t, flightDescription, power["description"])
			}
		})
	}
}

func TestCreateHeroPower(t *testing.T) {
	a := newApp(t)

	rec, body := a.do(t, http.MethodPost, "/hero_powers", `{"strength":"average","power_id":2,"hero_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.NotZero(t, body["id"])
	assert.Equal(t, "average", body["strength"])
	assert.EqualValues(t, 1, body["hero_id"])
	assert.EqualValues(t, 2, body["power_id"])
	assert.Equal(t, map[string]any{"id": float64(1), "name": "Kamala Khan", "super_name": "Ms. Marvel"}, body["hero"])
	assert.Equal(t, "super strength", body["power"].(map[string]any)["name"])
	assert.NotContains(t, body["power"], "hero_powers")

	_, hero := a.do(t, http.MethodGet, "/heroes/1", "")
	assert.Len(t, hero["hero_powers"], 2)
}

func TestCreateHeroPowerFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []any
	}{
		{"bad strength", `{"strength":"mighty","power_id":1,"hero_id":1}`, nil},
		{"missing hero", `{"strength":"weak","power_id":1,"hero_id":999}`, []any{"The referenced Hero does not exist"}},
		{"missing power", `{"strength":"weak","power_id":999,"hero_id":1}`, []any{"The referenced Power does not exist"}},
		{"missing ids", `{"strength":"weak"}`, []any{"power_id is required", "hero_id is required"}},
		{"malformed json", `{"strength":`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(t)

			rec, body := a.do(t, http.MethodPost, "/hero_powers", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, body, "errors")
			assert.NotEmpty(t, body["errors"])
			if tt.want != nil {
				assert.Equal(t, tt.want, body["errors"])
			}

			_, hero := a.do(t, http.MethodGet, "/heroes/1", "")
			assert.Len(t, hero["hero_powers"], 1)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	a := newApp(t)

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Code challenge week 1</h1>")

	rec, body := a.do(t, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "healthy", body["checks"].(map[string]any)["database"].(map[string]any)["status"])
}

func TestRequestIDHeader(t *testing.T) {
	a := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/powers/1", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	a.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/powers/1", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMetrics(t *testing.T) {
	a := newApp(t)

	a.do(t, http.MethodGet, "/heroes/1", "")
	a.do(t, http.MethodGet, "/powers/999", "")

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `superheroes_http_requests_total{method="GET",route="/heroes/:id",status="200"} 1`)
	assert.Contains(t, body, `superheroes_http_requests_total{method="GET",route="/powers/:id",status="404"} 1`)
	assert.Contains(t, body, "superheroes_http_request_duration_seconds")
}
