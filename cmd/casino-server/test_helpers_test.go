package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"shell-casino/internal/app/session"
	"shell-casino/internal/config"
	"shell-casino/internal/dataset"
)

func testGames() config.GamesConfig {
	cfg := config.DefaultGames()
	// Spins settle inline in tests.
	cfg.SpinDurationMS = 0
	cfg.SpinTickMS = 0
	return cfg
}

func newTestRouter(t *testing.T, games config.GamesConfig, ds *dataset.Dataset) (*session.Service, *chi.Mux) {
	t.Helper()
	svc := session.New(session.ConfigFrom(games), nil)
	t.Cleanup(svc.Close)
	serverCfg := config.ServerConfig{CORSOrigins: []string{"*"}}
	return svc, newRouter(svc, ds, nil, serverCfg)
}

func doJSON(t *testing.T, mux *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func writeDataFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	fixtures := map[string]string{
		"users.json": `[
			{"slack_id":"U1","username":"ada","projects_count":3,"coding_time_seconds":7200,"devlogs_count":9},
			{"slack_id":"U2","username":"grace","projects_count":5,"coding_time_seconds":3600,"devlogs_count":2}
		]`,
		"projects.json": `[
			{"slack_id":"U1","title":"Reef Scanner","description":"Sonar toy","category":"hardware","devlogs_count":7,"created_at":"2025-07-01T00:00:00Z"}
		]`,
		"shells.json": `[
			{"slack_id":"U1","shells":420},
			{"slack_id":"U2","shells":900}
		]`,
	}
	for name, content := range fixtures {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}
