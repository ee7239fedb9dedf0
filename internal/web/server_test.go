package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ikavisbode/v0-iia/internal/content"
)

func newTestHandler(t *testing.T, config Config) http.Handler {
	t.Helper()
	store := content.NewStore(contentServerURL(t), nil)
	handler, err := NewHandler(config, store)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return handler
}

// contentServerURL serves a tiny content tree over HTTP for the store.
func contentServerURL(t *testing.T) string {
	t.Helper()
	mux := http.NewServeMux()
	serveJSON := func(path, body string) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}
	serveJSON("/data/project/manifest.json", `{"projects":["hamlet-2025"]}`)
	serveJSON("/data/project/hamlet-2025.json",
		`{"slug":"hamlet-2025","category":"PERFORMANCE","pt":{"title":"Hamlet"}}`)
	serveJSON("/data/activity/manifest.json", `{"activities":[]}`)
	serveJSON("/data/member/manifest.json", `{"members":[]}`)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestHandlerHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandlerServesStaticAssets(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/static/site.css", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Errorf("Content-Type = %q", ct)
	}
}

// writeContentTree lays out a content dir the way the repository ships it:
// manifests per kind plus an images/ directory.
func writeContentTree(t *testing.T, dir string) {
	t.Helper()
	for path, body := range map[string]string{
		filepath.Join("project", "manifest.json"): `{"projects":[]}`,
		filepath.Join("images", "logo.svg"):       `<svg></svg>`,
	} {
		full := filepath.Join(dir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestHandlerServesContentDir(t *testing.T) {
	dir := t.TempDir()
	writeContentTree(t, dir)
	handler := newTestHandler(t, Config{ContentDir: dir})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data/project/manifest.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("manifest status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"projects"`) {
		t.Errorf("body = %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/logo.svg", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("image status = %d", rec.Code)
	}
}

// A fresh checkout runs with the default content-dir value pointing at the
// repository's data/ tree relative to the working directory.
func TestHandlerServesDefaultContentDir(t *testing.T) {
	root := t.TempDir()
	writeContentTree(t, filepath.Join(root, "data"))
	t.Chdir(root)

	rec := httptest.NewRecorder()
	newTestHandler(t, Config{ContentDir: "data"}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/data/project/manifest.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandlerMountsFeatureModules(t *testing.T) {
	handler := newTestHandler(t, Config{})
	for _, path := range []string{"/", "/projetos", "/atividades", "/equipe", "/contato"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", path, rec.Code)
		}
	}
}

func TestHandlerListsStoreContent(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/projetos", nil))

	if !strings.Contains(rec.Body.String(), "Hamlet") {
		t.Error("project from the content store missing")
	}
}

func TestHandlerUnknownPathReturns404(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/nao-existe", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Error("404 should render the full layout")
	}
}

func TestHandlerSetsRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestNewServerRequiresAddr(t *testing.T) {
	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("NewServer() accepted an empty address")
	}
}

func TestDefaultContentBaseURL(t *testing.T) {
	cases := []struct {
		addr string
		want string
	}{
		{":8080", "http://127.0.0.1:8080"},
		{"localhost:8080", "http://localhost:8080"},
		{"0.0.0.0:9090", "http://0.0.0.0:9090"},
		{"example.test", "http://example.test"},
	}
	for _, tc := range cases {
		if got := defaultContentBaseURL(tc.addr); got != tc.want {
			t.Errorf("defaultContentBaseURL(%q) = %q, want %q", tc.addr, got, tc.want)
		}
	}
}
