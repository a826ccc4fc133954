package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/exercise-tracker/internal/config"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository/memory"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

var today = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.Local)

type testServer struct {
	t *testing.T
	h http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, func(*config.Config) {})
}

func newTestServerWith(t *testing.T, override func(*config.Config)) *testServer {
	t.Helper()
	views := t.TempDir()
	public := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(views, "index.html"), []byte("<h1>Exercise Tracker</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "style.css"), []byte("body{}"), 0o644))

	cfg := config.Config{
		Env:         "test",
		CORSOrigins: []string{"*"},
		ViewsDir:    views,
		PublicDir:   public,
	}
	override(&cfg)
	repos := memory.NewRepositories()
	us := services.NewUserService(repos.Users)
	es := services.NewExerciseService(repos.Users, repos.Exercises).WithClock(func() time.Time { return today })
	return &testServer{t: t, h: NewRouter(cfg, us, es)}
}

func (s *testServer) do(method, target, contentType, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.h.ServeHTTP(w, r)
	return w
}

func (s *testServer) postJSON(target, body string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, target, "application/json", body)
}

func (s *testServer) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, target, "application/x-www-form-urlencoded", form.Encode())
}

func (s *testServer) get(target string) *httptest.ResponseRecorder {
	return s.do(http.MethodGet, target, "", "")
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (s *testServer) createUser(name string) models.User {
	s.t.Helper()
	w := s.postForm("/api/users", url.Values{"username": {name}})
	require.Equal(s.t, http.StatusOK, w.Code)
	return decode[models.User](s.t, w)
}

func TestCreateUser(t *testing.T) {
	s := newTestServer(t)

	w := s.postJSON("/api/users", `{"username":"alice"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"_id":"1","username":"alice"}`, w.Body.String())

	w = s.postForm("/api/users", url.Values{"username": {"bob"}})
	assert.JSONEq(t, `{"_id":"2","username":"bob"}`, w.Body.String())
}

func TestCreateUser_MissingUsername(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{`{}`, `{"username":""}`, `{"username":null}`, ``} {
		w := s.postJSON("/api/users", body)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"error":"Username is required"}`, w.Body.String(), "body %q", body)
	}
	assert.JSONEq(t, `[]`, s.get("/api/users").Body.String())
}

func TestListUsers(t *testing.T) {
	s := newTestServer(t)
	s.createUser("alice")
	s.createUser("bob")
	s.createUser("alice")

	w := s.get("/api/users")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"1","username":"alice"},{"_id":"2","username":"bob"},{"_id":"3","username":"alice"}]`, w.Body.String())
}

func TestAddExercise(t *testing.T) {
	s := newTestServer(t)
	u := s.createUser("alice")

	w := s.postForm("/api/users/"+u.ID+"/exercises", url.Values{
		"description": {"run"},
		"duration":    {"30"},
		"date":        {"2023-01-01"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "add_exercise", w.Body.Bytes())
}

func TestAddExercise_DefaultsToToday(t *testing.T) {
	s := newTestServer(t)
	u := s.createUser("alice")

	w := s.postJSON("/api/users/"+u.ID+"/exercises", `{"description":"yoga","duration":"45abc"}`)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[map[string]any](t, w)
	assert.Equal(t, "Sat Oct 17 2026", got["date"])
	assert.Equal(t, float64(45), got["duration"])
}

func TestAddExercise_JSONNumberDuration(t *testing.T) {
	s := newTestServer(t)
	u := s.createUser("alice")

	w := s.postJSON("/api/users/"+u.ID+"/exercises", `{"description":"row","duration":12.5,"date":"2023-05-05"}`)
	assert.JSONEq(t, `{"_id":"1","username":"alice","description":"row","duration":12,"date":"Fri May 05 2023"}`, w.Body.String())
}

func TestAddExercise_Errors(t *testing.T) {
	s := newTestServer(t)
	u := s.createUser("alice")
	path := "/api/users/" + u.ID + "/exercises"

	tests := []struct {
		name   string
		target string
		body   string
		want   string
	}{
		{"unknown user", "/api/users/99/exercises", `{"description":"run","duration":"10"}`, "User not found"},
		{"unknown user beats bad fields", "/api/users/99/exercises", `{}`, "User not found"},
		{"missing description", path, `{"duration":"10"}`, "Description and duration are required"},
		{"missing duration", path, `{"description":"run"}`, "Description and duration are required"},
		{"zero duration", path, `{"description":"run","duration":0}`, "Description and duration are required"},
		{"non numeric duration", path, `{"description":"run","duration":"abc"}`, "Duration must be a number"},
		{"bad date", path, `{"description":"run","duration":"10","date":"someday"}`, "Invalid date format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.postJSON(tt.target, tt.body)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.want+`"}`, w.Body.String())
		})
	}

	w := s.get(path[:len(path)-len("exercises")] + "logs")
	assert.JSONEq(t, `{"_id":"1","username":"alice","count":0,"log":[]}`, w.Body.String())
}

func seedLog(s *testServer) models.User {
	u := s.createUser("alice")
	for _, d := range []string{"2023-01-01", "2023-02-01", "2023-03-01"} {
		w := s.postForm("/api/users/"+u.ID+"/exercises", url.Values{"description": {"run"}, "duration": {"30"}, "date": {d}})
		require.Equal(s.t, http.StatusOK, w.Code)
	}
	return u
}

func TestLogs_DateRange(t *testing.T) {
	s := newTestServer(t)
	u := seedLog(s)

	w := s.get("/api/users/" + u.ID + "/logs?from=2023-01-15&to=2023-02-15")
	require.Equal(t, http.StatusOK, w.Code)

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "log_date_range", w.Body.Bytes())
}

func TestLogs_LimitTakesFirstInserted(t *testing.T) {
	s := newTestServer(t)
	u := seedLog(s)

	res := decode[models.LogResult](t, s.get("/api/users/"+u.ID+"/logs?limit=1"))
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Sun Jan 01 2023", res.Log[0].Date.String())
}

func TestLogs_MalformedQueryIgnored(t *testing.T) {
	s := newTestServer(t)
	u := seedLog(s)

	w := s.get("/api/users/" + u.ID + "/logs?from=tomorrow&to=2023-99-99&limit=all")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[models.LogResult](t, w)
	assert.Equal(t, 3, res.Count)
	assert.Len(t, res.Log, 3)
}

func TestLogs_EntriesHaveNoIDs(t *testing.T) {
	s := newTestServer(t)
	u := seedLog(s)

	got := decode[map[string]any](t, s.get("/api/users/"+u.ID+"/logs"))
	for _, e := range got["log"].([]any) {
		entry := e.(map[string]any)
		assert.ElementsMatch(t, []string{"description", "duration", "date"}, keys(entry))
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestLogs_UnknownUser(t *testing.T) {
	s := newTestServer(t)
	w := s.get("/api/users/7/logs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/nope"},
		{http.MethodGet, "/api/users/1/unknown"},
		{http.MethodDelete, "/api/users"},
		{http.MethodPost, "/missing.css"},
	} {
		w := s.do(tc.method, tc.target, "", "")
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.target)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	}
}

func TestCreateUser_NonObjectBody(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{`["alice"]`, `"alice"`, `42`} {
		w := s.postJSON("/api/users", body)
		assert.Equal(t, http.StatusOK, w.Code, "body %s", body)
		assert.JSONEq(t, `{"error":"Username is required"}`, w.Body.String(), "body %s", body)
	}
}

func TestMalformedBodyIsServerError(t *testing.T) {
	s := newTestServer(t)
	w := s.postJSON("/api/users", `{"username":`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong!"}`, w.Body.String())
}

func TestStaticAndIndex(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Exercise Tracker")

	w = s.get("/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
}

func TestHead(t *testing.T) {
	s := newTestServer(t)
	s.createUser("alice")

	for _, target := range []string{"/", "/api/users", "/api/users/1/logs", "/style.css", "/health"} {
		w := s.do(http.MethodHead, target, "", "")
		assert.Equal(t, http.StatusOK, w.Code, "HEAD %s", target)
	}
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodHead, "/missing.css", "", "").Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)
	s.createUser("alice")

	assert.Equal(t, "ok", s.get("/health").Body.String())

	w := s.get("/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "users_created_total")
	assert.Contains(t, w.Body.String(), `http_requests_total{method="POST"`)
	assert.Contains(t, w.Body.String(), "exercise_log_queries_total")
}

func TestCORS(t *testing.T) {
	s := newTestServer(t)
	r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	s.h.ServeHTTP(w, r)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitedResponsesCarryCORS(t *testing.T) {
	s := newTestServerWith(t, func(c *config.Config) { c.RateRPS = 1 })

	withOrigin := func(method string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(method, "/api/users", nil)
		r.Header.Set("Origin", "https://example.com")
		if method == http.MethodOptions {
			r.Header.Set("Access-Control-Request-Method", http.MethodPost)
		}
		w := httptest.NewRecorder()
		s.h.ServeHTTP(w, r)
		return w
	}

	var limited *httptest.ResponseRecorder
	for i := 0; i < 20 && limited == nil; i++ {
		if w := withOrigin(http.MethodGet); w.Code == http.StatusTooManyRequests {
			limited = w
		}
	}
	require.NotNil(t, limited, "limiter never engaged")
	assert.Equal(t, "*", limited.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"error":"Too many requests"}`, limited.Body.String())

	for i := 0; i < 5; i++ {
		w := withOrigin(http.MethodOptions)
		assert.NotEqual(t, http.StatusTooManyRequests, w.Code, "preflight %d", i)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
