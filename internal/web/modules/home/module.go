// Package home provides the landing page and the site-wide fallback routes.
package home

import (
	"net/http"

	module "github.com/ikavisbode/v0-iia/internal/web/module"
	"github.com/ikavisbode/v0-iia/internal/web/platform/pagerender"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
)

// Dependencies carries the content loaders and renderer the module needs.
type Dependencies struct {
	Projects   ProjectLoader
	Activities ActivityLoader
	Members    MemberLoader
	Render     pagerender.Renderer
}

// Module provides the home page routes.
type Module struct {
	deps Dependencies
}

// New returns a home module.
func New(deps Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires home route handlers. The mount also owns the catch-all, so
// unknown paths get the in-layout not-found page.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.deps), m.deps.Render)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Home, Handler: mux}, nil
}
