// Package web composes the site's HTTP server from its feature modules.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/ikavisbode/v0-iia/internal/content"
	"github.com/ikavisbode/v0-iia/internal/platform/timeouts"
	"github.com/ikavisbode/v0-iia/internal/web/modules"
	"github.com/ikavisbode/v0-iia/internal/web/platform/httpx"
	"github.com/ikavisbode/v0-iia/internal/web/platform/pagerender"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
	"github.com/ikavisbode/v0-iia/internal/web/static"
)

// Config defines the inputs for the web server.
type Config struct {
	// HTTPAddr is the listen address, e.g. ":8080".
	HTTPAddr string
	// ContentDir is the directory holding the content tree: the project/,
	// activity/ and member/ manifests served under /data/, plus an images/
	// directory served under /images/.
	ContentDir string
	// ContentBaseURL overrides where the content store fetches documents
	// from. Empty means the server's own /data routes.
	ContentBaseURL string
	// AnalyticsID enables the analytics snippet when set.
	AnalyticsID string
}

// Server hosts the site's HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler assembles the site routes: feature modules, static assets, the
// published content tree and the health endpoint.
func NewHandler(config Config, store *content.Store) (http.Handler, error) {
	mux := http.NewServeMux()

	mux.Handle(routepath.StaticPrefix,
		http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))

	contentDir := strings.TrimSpace(config.ContentDir)
	if contentDir != "" {
		contentFS := http.FileServer(http.FS(os.DirFS(contentDir)))
		mux.Handle(routepath.DataPrefix, http.StripPrefix(routepath.DataPrefix, contentFS))
		mux.Handle("/images/", contentFS)
	}

	mux.HandleFunc(routepath.Health, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	deps := modules.Dependencies{
		Store:  store,
		Render: pagerender.Renderer{AnalyticsID: strings.TrimSpace(config.AnalyticsID)},
	}
	for _, m := range modules.DefaultModules(deps) {
		mount, err := m.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", m.ID(), err)
		}
		registerMount(mux, mount)
	}

	return httpx.Chain(mux, httpx.RequestID(), httpx.Trace(nil), httpx.RecoverPanic()), nil
}

// registerMount wires a module mount. Non-root prefixes are registered with
// and without the trailing slash so both the listing and its subtree resolve.
func registerMount(mux *http.ServeMux, mount modules.Mount) {
	if mount.Handler == nil {
		return
	}
	if mount.Prefix == routepath.Home {
		mux.Handle(routepath.Home, mount.Handler)
		return
	}
	mux.Handle(mount.Prefix, mount.Handler)
	mux.Handle(mount.Prefix+"/", mount.Handler)
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	baseURL := strings.TrimSpace(config.ContentBaseURL)
	if baseURL == "" {
		baseURL = defaultContentBaseURL(httpAddr)
	}
	store := content.NewStore(baseURL, nil)

	handler, err := NewHandler(config, store)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{httpAddr: httpAddr, httpServer: httpServer}, nil
}

// defaultContentBaseURL points the content store at the server's own /data
// routes when no external content host is configured.
func defaultContentBaseURL(httpAddr string) string {
	host, port, found := strings.Cut(httpAddr, ":")
	if !found {
		return "http://" + httpAddr
	}
	if host == "" {
		host = "127.0.0.1"
	}
	return "http://" + host + ":" + port
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests are
// drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
