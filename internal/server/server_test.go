package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/citywalk/config"
	"github.com/katalvlaran/citywalk/internal/logging"
	"github.com/katalvlaran/citywalk/internal/server"
)

func newServer(t *testing.T) (*server.Server, *bytes.Buffer) {
	t.Helper()
	f, err := config.Default()
	require.NoError(t, err)
	city, err := f.Build()
	require.NoError(t, err)

	var logs bytes.Buffer
	return server.New(city, logging.New(&logs, slog.LevelInfo)), &logs
}

func get(t *testing.T, s *server.Server, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())

	return rec, body
}

func TestHealth(t *testing.T) {
	s, logs := newServer(t)
	rec, body := get(t, s, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, logs.String(), "INFO request method=GET path=/healthz status=200")
}

func TestTrajectories(t *testing.T) {
	s, _ := newServer(t)
	rec, body := get(t, s, "/api/trajectories/"+url.PathEscape("La Pasión"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Javier", body["earlier"])
	assert.Equal(t, 14.0, body["delta_minutes"])

	a := body["a"].(map[string]interface{})
	assert.Equal(t, 18.0, a["cost"])
	assert.Len(t, a["path"], 4)
}

func TestTrajectories_UnknownDestination(t *testing.T) {
	s, _ := newServer(t)
	rec, body := get(t, s, "/api/trajectories/Nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, body["error"], "unknown destination")
}

func TestDestinationsAndTravelers(t *testing.T) {
	s, _ := newServer(t)
	rec, body := get(t, s, "/api/destinations")
	require.Equal(t, http.StatusOK, rec.Code)
	dests := body["destinations"].([]interface{})
	require.Len(t, dests, 3)
	first := dests[0].(map[string]interface{})
	assert.Equal(t, "La Pasión", first["name"])
	assert.Equal(t, []interface{}{4.0, 1.0}, first["cell"])

	rec, body = get(t, s, "/api/travelers")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["travelers"], 2)
}

func TestGrid(t *testing.T) {
	s, _ := newServer(t)
	rec, body := get(t, s, "/api/grid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6.0, body["height"])
	tiers := body["tiers"].([]interface{})
	row3 := tiers[3].([]interface{})
	row5 := tiers[5].([]interface{})
	assert.Equal(t, "poor_sidewalk", row3[1])
	assert.Equal(t, "commercial", row5[1])
	assert.Equal(t, "normal", row5[0])
}

func TestRoutes(t *testing.T) {
	s, _ := newServer(t)
	cases := []struct {
		name   string
		query  string
		status int
	}{
		{"OK", "traveler=Javier&from=4,4&to=4,1", http.StatusOK},
		{"Malformed", "traveler=Javier&from=4&to=4,1", http.StatusBadRequest},
		{"NotNumber", "traveler=Javier&from=4,4&to=x,1", http.StatusBadRequest},
		{"OffGrid", "traveler=Javier&from=4,4&to=9,1", http.StatusBadRequest},
		{"UnknownTraveler", "traveler=Nadie&from=4,4&to=4,1", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := get(t, s, "/api/routes?"+tc.query)
			assert.Equal(t, tc.status, rec.Code, "body: %v", body)
			if tc.status == http.StatusOK {
				assert.Equal(t, 18.0, body["cost"])
				assert.Equal(t, "Javier", body["traveler"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s, logs := newServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/destinations", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, logs.String(), "INFO request method=POST path=/api/destinations status=405")
}

func TestNotFound_IsLogged(t *testing.T) {
	s, logs := newServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, logs.String(), "INFO request method=GET path=/api/nothing status=404")
}
