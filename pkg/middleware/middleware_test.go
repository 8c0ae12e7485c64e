package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewMetrics(WithRegistry(reg)), reg
}

func TestObserveBuild(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.ObserveBuild("card", 10*time.Millisecond, nil)
	m.ObserveBuild("card", 5*time.Millisecond, nil)
	m.ObserveBuild("card", time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(m.buildsTotal.WithLabelValues("card", "ok")); got != 2 {
		t.Errorf("ok builds = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.buildsTotal.WithLabelValues("card", "error")); got != 1 {
		t.Errorf("failed builds = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.buildDuration); got != 1 {
		t.Errorf("build duration series = %d, want 1", got)
	}
}

func TestReloadMetrics(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.SetReloadClients(3)
	m.RecordReload()
	m.RecordReload()

	if got := testutil.ToFloat64(m.reloadClients); got != 3 {
		t.Errorf("reload clients = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.reloadsTotal); got != 2 {
		t.Errorf("reloads = %v, want 2", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveBuild("x", time.Second, nil)
	m.SetReloadClients(1)
	m.RecordReload()
}

func TestMetricsHandlerUsesRoutePattern(t *testing.T) {
	m, _ := newTestMetrics(t)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/view/{name}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "name") == "missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("ok"))
	})

	for _, path := range []string{"/view/a", "/view/b", "/view/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/view/{name}", "200")); got != 2 {
		t.Errorf("200 requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/view/{name}", "404")); got != 1 {
		t.Errorf("404 requests = %v, want 1", got)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(WithRegistry(reg))

	defer func() {
		if recover() == nil {
			t.Error("registering twice should panic")
		}
	}()
	NewMetrics(WithRegistry(reg))
}

func TestNamespaceOption(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("site"), WithSubsystem("preview"))
	m.RecordReload()

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "site_preview_reloads_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected site_preview_reloads_total to be registered")
	}
}

func TestOpenTelemetryPassesThrough(t *testing.T) {
	var sawSpan bool
	r := chi.NewRouter()
	r.Use(OpenTelemetry(WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/skip"
	})))
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		sawSpan = SpanFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/page", "/skip"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusTeapot {
			t.Errorf("%s: code = %d, want %d", path, rec.Code, http.StatusTeapot)
		}
	}
	if !sawSpan {
		t.Error("handler should see a span in its context")
	}
}

func TestTraceBuild(t *testing.T) {
	called := false
	err := TraceBuild(context.Background(), "card", func(ctx context.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("TraceBuild = %v, called = %v", err, called)
	}

	boom := errors.New("boom")
	if err := TraceBuild(context.Background(), "card", func(context.Context) error { return boom }); err != boom {
		t.Errorf("TraceBuild error = %v, want %v", err, boom)
	}
}
