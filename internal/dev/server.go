package dev

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skooma-dev/skooma/internal/config"
	"github.com/skooma-dev/skooma/internal/errors"
	"github.com/skooma-dev/skooma/pkg/dom"
	"github.com/skooma-dev/skooma/pkg/middleware"
	"github.com/skooma-dev/skooma/pkg/render"
	"github.com/skooma-dev/skooma/pkg/skooma"
	"github.com/skooma-dev/skooma/pkg/tree"
)

// ServerOptions configures the preview server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives server logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Registry holds the server's metrics and backs /metrics. Defaults to
	// a fresh registry.
	Registry *prometheus.Registry

	// OnBuildComplete is called after every tree build.
	OnBuildComplete func(result BuildResult)
}

// BuildResult describes one tree build.
type BuildResult struct {
	Document string
	Duration time.Duration
	Err      error
}

// Server is the preview server. It serves every tree document under the
// configured directory as a page and reloads open pages when a document
// changes.
type Server struct {
	config       *config.Config
	options      ServerOptions
	logger       *slog.Logger
	metrics      *middleware.Metrics
	registry     *prometheus.Registry
	watcher      *Watcher
	reloadServer *ReloadServer
	router       chi.Router
	changeCh     chan Change

	mu         sync.Mutex
	running    bool
	httpServer *http.Server
}

// NewServer creates a new preview server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := options.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	s := &Server{
		config:   cfg,
		options:  options,
		logger:   logger,
		registry: registry,
		metrics:  middleware.NewMetrics(middleware.WithRegistry(registry)),
	}

	if cfg.Dev.HotReload {
		s.reloadServer = NewReloadServer(logger, s.metrics.SetReloadClients)
	}
	s.watcher = NewWatcher(WatcherConfig{
		Paths:    CollectWatchPaths(cfg),
		Debounce: 100 * time.Millisecond,
		Logger:   logger,
	})
	s.router = s.routes()
	return s
}

// routes builds the HTTP router.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(middleware.WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/metrics" && r.URL.Path != ReloadPath
	})))
	r.Use(s.metrics.Handler)

	r.Get("/", s.handleIndex)
	r.Get("/view/{name}", s.handleView)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	if s.reloadEnabled() {
		r.Get(ReloadPath, s.reloadServer.HandleWebSocket)
	}
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.httpServer = &http.Server{
		Addr:    s.config.DevAddress(),
		Handler: s.router,
	}
	s.mu.Unlock()

	if s.reloadEnabled() {
		s.changeCh = make(chan Change, 64)
		s.watcher.OnChange(func(change Change) {
			select {
			case s.changeCh <- change:
			default:
			}
		})
		go func() {
			if err := s.watcher.Start(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
				s.logger.Error("watcher stopped", "error", err)
			}
		}()
		go s.processChanges(ctx)
	}

	s.logger.Info("preview server running", "url", s.config.DevURL(), "trees", s.config.TreesPath())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the preview server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.watcher.Stop()
	if s.reloadServer != nil {
		s.reloadServer.Close()
	}

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// Build decodes the named tree document into a fresh document.
func (s *Server) Build(ctx context.Context, name string) (dom.Element, error) {
	path, err := s.documentPath(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var el dom.Element
	err = middleware.TraceBuild(ctx, name, func(context.Context) error {
		var err error
		el, err = tree.NewDecoder(dom.NewDocument()).DecodeFile(path)
		return err
	})
	result := BuildResult{Document: name, Duration: time.Since(start), Err: err}

	s.metrics.ObserveBuild(name, result.Duration, err)
	if s.options.OnBuildComplete != nil {
		s.options.OnBuildComplete(result)
	}
	if err != nil {
		s.logger.Warn("build failed", "document", name, "error", err)
		return nil, err
	}
	s.logger.Debug("built", "document", name, "duration", result.Duration.Round(time.Microsecond))
	return el, nil
}

// documentPath finds the tree file for name.
func (s *Server) documentPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", os.ErrNotExist
	}
	files, err := tree.Files(s.config.TreesPath())
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if tree.Name(f) == name {
			return f, nil
		}
	}
	return "", os.ErrNotExist
}

// handleIndex lists the tree documents.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	files, err := tree.Files(s.config.TreesPath())
	if err != nil && !os.IsNotExist(err) {
		s.logger.Error("cannot list trees", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h := skooma.NewHTML(dom.NewDocument())
	items := make([]any, 0, len(files))
	for _, f := range files {
		name := tree.Name(f)
		items = append(items, h.Li(h.A(skooma.Props{"href": "/view/" + name}, name)))
	}

	var body dom.Element
	if len(items) == 0 {
		body = h.Main(h.H1("skooma"), h.P("No tree documents in ", h.Code(s.config.TreesPath())))
	} else {
		body = h.Main(h.H1("skooma"), h.Ul(items))
	}
	s.writePage(w, http.StatusOK, "skooma", body)
}

// handleView renders one tree document as a page.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	el, err := s.Build(r.Context(), name)
	switch {
	case os.IsNotExist(err):
		http.NotFound(w, r)
		return
	case err != nil:
		s.writePage(w, http.StatusInternalServerError, name, errorPage(err))
		return
	}
	s.writePage(w, http.StatusOK, name, el)
}

func (s *Server) writePage(w http.ResponseWriter, status int, title string, body dom.Element) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	page := render.PageData{
		Title:       title,
		Lang:        s.config.Render.Lang,
		StyleSheets: s.config.Render.StyleSheets,
		Body:        body,
	}
	if s.reloadEnabled() {
		page.ReloadScript = DevClientScript
	}

	sr := render.NewStreamingRenderer(w, render.RendererConfig{
		Pretty:   s.config.Render.Pretty,
		Sanitize: s.config.Render.Sanitize,
	})
	if err := sr.RenderPage(page); err != nil {
		s.logger.Error("render failed", "page", title, "error", err)
	}
}

// errorPage shows a build error in place of the page.
func errorPage(err error) dom.Element {
	h := skooma.NewHTML(dom.NewDocument())
	return h.Main(
		h.H1("Build error"),
		h.Pre(errors.FormatCompact(err)),
	)
}

// processChanges serializes file change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(ctx, changes)
		}
	}
}

// handleChanges rebuilds changed tree documents and reloads the pages
// showing them, or shows the first build error on those pages.
func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	var css string
	var docs []string
	reloadAll := false

	for _, change := range changes {
		s.logger.Info("changed", "path", change.Path, "type", change.Type)
		switch change.Type {
		case ChangeTree:
			name := tree.Name(change.Path)
			docs = append(docs, name)
			if _, err := os.Stat(change.Path); err != nil {
				continue
			}
			if _, err := s.Build(ctx, name); err != nil {
				s.notifyError(NewBuildError(name, err))
				return
			}
		case ChangeCSS:
			css = change.Path
		default:
			reloadAll = true
		}
	}

	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.ClearError()
	switch {
	case reloadAll:
		s.notifyReload()
	case len(docs) > 0:
		s.notifyReload(docs...)
	case css != "":
		s.reloadServer.NotifyCSS(css)
	}
}

func (s *Server) reloadEnabled() bool {
	return s.reloadServer != nil
}

// notifyReload reloads the pages showing documents, or every page when
// none are given.
func (s *Server) notifyReload(documents ...string) {
	if !s.reloadEnabled() {
		return
	}
	s.metrics.RecordReload()
	s.reloadServer.NotifyReload(documents...)
}

func (s *Server) notifyError(be *BuildError) {
	if !s.reloadEnabled() {
		return
	}
	s.reloadServer.NotifyError(be)
}
