// Package team provides the team listing and member profile routes.
package team

import (
	"net/http"

	module "github.com/ikavisbode/v0-iia/internal/web/module"
	"github.com/ikavisbode/v0-iia/internal/web/platform/pagerender"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
)

// Dependencies carries the content loader and renderer the module needs.
type Dependencies struct {
	Content Loader
	Render  pagerender.Renderer
}

// Module provides team routes.
type Module struct {
	deps Dependencies
}

// New returns a team module.
func New(deps Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "team" }

// Mount wires team route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.deps.Content), m.deps.Render)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Team, Handler: mux}, nil
}
