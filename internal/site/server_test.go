package site

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sheharyar/portfolio/internal/portfolio"
)

func newTestEngine() *gin.Engine {
	return New(Options{
		Mode:     gin.TestMode,
		Site:     portfolio.Owner,
		Projects: portfolio.Projects,
	})
}

func TestIndexServesPage(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html content type, got %q", ct)
	}
	body := w.Body.String()
	if got := strings.Count(body, `<article class="card">`); got != len(portfolio.Projects) {
		t.Errorf("expected %d cards, got %d", len(portfolio.Projects), got)
	}
	if !strings.Contains(body, portfolio.Owner.Name) {
		t.Errorf("expected hero name in body")
	}
}

func TestIndexIsStableAcrossRequests(t *testing.T) {
	r := newTestEngine()

	var bodies []string
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		bodies = append(bodies, w.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Fatal("expected identical responses")
	}
}

func TestRoutes(t *testing.T) {
	r := newTestEngine()

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{name: "stylesheet", method: http.MethodGet, path: "/static/site.css", status: http.StatusOK},
		{name: "missing asset", method: http.MethodGet, path: "/static/nope.js", status: http.StatusNotFound},
		{name: "unknown page", method: http.MethodGet, path: "/projects", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestRequestIDIsGenerated(t *testing.T) {
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid request id, got %q: %v", id, err)
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "req-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

func TestRequestIDReplacesMalformedValues(t *testing.T) {
	r := newTestEngine()

	tests := []struct {
		name string
		id   string
	}{
		{name: "too long", id: strings.Repeat("a", maxRequestIDLen+1)},
		{name: "control character", id: "req\x01123"},
		{name: "inner space", id: "req 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(requestIDHeader, tt.id)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(requestIDHeader)
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected replacement uuid, got %q", got)
			}
		})
	}
}

func TestIndexRenderFailureReturns500(t *testing.T) {
	broken := template.Must(template.New("index.html").Parse(`<p>{{.Missing}}</p>`))
	r := newEngine(Options{
		Mode:     gin.TestMode,
		Site:     portfolio.Owner,
		Projects: portfolio.Projects,
	}, broken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "<p>") {
		t.Errorf("expected no partial page, got %q", w.Body.String())
	}
}

func TestIndexSkipsRenderForCancelledRequest(t *testing.T) {
	r := newTestEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.Len() != 0 {
		t.Fatalf("expected no body for a cancelled request, got %d bytes", w.Body.Len())
	}
}

func TestExportWritesPageAndAssets(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")

	if err := Export(dir, portfolio.Owner, portfolio.Projects); err != nil {
		t.Fatalf("export: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if got := strings.Count(string(index), `<article class="card">`); got != len(portfolio.Projects) {
		t.Errorf("expected %d cards, got %d", len(portfolio.Projects), got)
	}
	if _, err := os.Stat(filepath.Join(dir, "static", "site.css")); err != nil {
		t.Errorf("expected stylesheet to be exported: %v", err)
	}
}

func TestExportFailsOnFileInPlaceOfDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taken")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Export(path, portfolio.Owner, portfolio.Projects); err == nil {
		t.Fatal("expected error when output path is a file")
	}
}
