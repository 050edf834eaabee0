package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/edusphere-backend/internal/config"
	"github.com/heartmarshall/edusphere-backend/internal/transport/rest"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
		Log: config.LogConfig{Level: "error", Format: "json"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         600,
		},
		RateLimit: config.RateLimitConfig{Enabled: false, RequestsPerMinute: 120, CleanupInterval: time.Minute},
		Rules:     config.RulesConfig{MaxTextLength: 500, MaxPatternLength: 200},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	a, err := New(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func patterns(cs []rest.CorrectionResponse) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ErrorPattern)
	}
	return out
}

func TestRouter_InfoAndHealth(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	rec := do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	info := decode[rest.InfoResponse](t, rec)
	assert.Equal(t, "IA EDUSPHERE", info.App)
	assert.Equal(t, "online", info.Status)
	assert.Equal(t, 1, info.SeedVersion)
	assert.Equal(t, 10, info.RuleCount)

	for _, path := range []string{"/sante", "/health"} {
		rec = do(t, h, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		health := decode[rest.HealthResponse](t, rec)
		assert.Equal(t, "healthy", health.Status, path)
		assert.Equal(t, 10, health.Components["rule_store"].Rules, path)
	}

	rec = do(t, h, http.MethodGet, "/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set("X-Request-Id", "trace-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "trace-1", rec.Header().Get("X-Request-Id"))
}

func TestRouter_AnalyseGet(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	rec := do(t, h, http.MethodGet, "/analyser?texte=Salut%2C+SA+VA+%3F", "")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[rest.AnalysisResponse](t, rec)
	assert.True(t, res.Success)
	assert.Equal(t, "Salut, SA VA ?", res.OriginalText)
	assert.Equal(t, "anonymous", res.StudentID)
	assert.Equal(t, []string{"sa va"}, patterns(res.Corrections))
	assert.Equal(t, "ça va", res.Corrections[0].Correction)
	assert.Equal(t, []string{"exercices/homophones/ca-sa"}, res.SuggestedExercises)

	rec = do(t, h, http.MethodGet, "/analyser", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[rest.AnalysisResponse](t, rec)
	assert.Equal(t, "test", res.OriginalText)
	assert.Empty(t, res.Corrections)
}

func TestRouter_AnalysePost_EndToEnd(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	body := `{"text":"je pense que sa va bien et il est aller à l'école","student_id":"eleve-7"}`
	rec := do(t, h, http.MethodPost, "/analyser", body)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[rest.AnalysisResponse](t, rec)
	assert.Equal(t, "eleve-7", res.StudentID)
	assert.Equal(t, []string{"sa va"}, patterns(res.Corrections))
	assert.Equal(t, "1 erreur détectée.", res.Message)
}

func TestRouter_AnalysePost_ExerciseDedup(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	body := `{"text":"il a manger et on a manger"}`
	rec := do(t, h, http.MethodPost, "/analyser", body)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[rest.AnalysisResponse](t, rec)
	assert.Equal(t, []string{"il a manger", "on a manger"}, patterns(res.Corrections))
	assert.Equal(t, []string{"exercices/conjugaison/participe-passe"}, res.SuggestedExercises)
}

func TestRouter_AnalysePost_LanguageFilter(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()
	text := `sa va هاذا`

	rec := do(t, h, http.MethodPost, "/analyser", `{"text":"`+text+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"sa va"}, patterns(decode[rest.AnalysisResponse](t, rec).Corrections))

	rec = do(t, h, http.MethodPost, "/analyser", `{"text":"`+text+`","language":"ar"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"هاذا"}, patterns(decode[rest.AnalysisResponse](t, rec).Corrections))

	rec = do(t, h, http.MethodPost, "/analyser", `{"text":"`+text+`","language":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"sa va", "هاذا"}, patterns(decode[rest.AnalysisResponse](t, rec).Corrections))
}

func TestRouter_AnalysePost_TextTooLong(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	rec := do(t, h, http.MethodPost, "/analyser", `{"text":"`+strings.Repeat("a", 501)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"validation: text: max 500 characters"}`, rec.Body.String())
}

func TestRouter_RulesLifecycle(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	type listResp struct {
		Rules []rest.RuleResponse `json:"rules"`
		Total int                 `json:"total"`
	}

	before := decode[listResp](t, do(t, h, http.MethodGet, "/rules", ""))
	require.Equal(t, 10, before.Total)

	// Listing is idempotent.
	again := decode[listResp](t, do(t, h, http.MethodGet, "/rules", ""))
	assert.Equal(t, before, again)

	text := `{"text":"Quelque soit la réponse."}`
	res := decode[rest.AnalysisResponse](t, do(t, h, http.MethodPost, "/analyser", text))
	require.Empty(t, res.Corrections)

	rec := do(t, h, http.MethodPost, "/rules", `{"error_pattern":"quelque soit","correction":"quel que soit","error_type":"grammar"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[rest.RuleResponse](t, rec)
	assert.Equal(t, "fr", created.Language)
	assert.Equal(t, "all", created.Level)
	assert.Equal(t, "exercices/grammar/general", created.ExerciseID)
	assert.NotNil(t, created.AddedAt)

	after := decode[listResp](t, do(t, h, http.MethodGet, "/rules", ""))
	require.Equal(t, before.Total+1, after.Total)
	assert.Equal(t, created, after.Rules[len(after.Rules)-1])
	assert.Equal(t, before.Rules, after.Rules[:before.Total])

	res = decode[rest.AnalysisResponse](t, do(t, h, http.MethodPost, "/analyser", text))
	assert.Equal(t, []string{"quelque soit"}, patterns(res.Corrections))
}

func TestRouter_RulesByLanguage(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	type listResp struct {
		Rules []rest.RuleResponse `json:"rules"`
		Total int                 `json:"total"`
	}

	ar := decode[listResp](t, do(t, h, http.MethodGet, "/rules?language=ar", ""))
	assert.Equal(t, 2, ar.Total)
	for _, r := range ar.Rules {
		assert.Equal(t, "ar", r.Language)
	}

	none := decode[listResp](t, do(t, h, http.MethodGet, "/rules?language=de", ""))
	assert.Equal(t, 0, none.Total)
	assert.NotNil(t, none.Rules)
}

func TestRouter_AddRule_Invalid(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	rec := do(t, h, http.MethodPost, "/rules", `{"error_pattern":"   ","correction":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid rule: error_pattern: required"}`, rec.Body.String())

	info := decode[rest.InfoResponse](t, do(t, h, http.MethodGet, "/", ""))
	assert.Equal(t, 10, info.RuleCount, "rejected rule must not be stored")
}

func TestRouter_Decision(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	tests := map[string]string{
		`{"score":80}`: "advance",
		`{"score":79}`: "consolidate",
		`{"score":50}`: "consolidate",
		`{"score":49}`: "change_modality",
		`{}`:           "change_modality",
	}
	for body, want := range tests {
		rec := do(t, h, http.MethodPost, "/decision", body)
		require.Equal(t, http.StatusOK, rec.Code, body)
		assert.Equal(t, want, decode[rest.DecisionResponse](t, rec).Decision, body)
	}

	rec := do(t, h, http.MethodGet, "/decision", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/analyser", nil)
	req.Header.Set("Origin", "https://ecole.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://ecole.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimitOnlyOnLimitedRoutes(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 2, CleanupInterval: time.Minute}
	h := newTestApp(t, cfg).Handler()

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/decision", `{"score":1}`).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodPost, "/analyser", `{"text":"x"}`).Code)

	// Reads and probes are not limited.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/rules", "").Code)
		assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/sante", "").Code)
	}
}

func TestNew_SeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	seed := "version: 4\nrules:\n  - error_pattern: \"parmis\"\n    correction: \"parmi\"\n"
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	cfg := testConfig()
	cfg.Rules.SeedPath = path
	h := newTestApp(t, cfg).Handler()

	info := decode[rest.InfoResponse](t, do(t, h, http.MethodGet, "/", ""))
	assert.Equal(t, 4, info.SeedVersion)
	assert.Equal(t, 1, info.RuleCount)
}

func TestNew_BadSeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nrules:\n  - error_pattern: \"\"\n    correction: \"x\"\n"), 0o600))

	cfg := testConfig()
	cfg.Rules.SeedPath = path

	_, err := New(cfg, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load seed file")
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Parallel()

	a, err := New(testConfig(), slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
