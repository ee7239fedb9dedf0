// Package contact provides the contact page and the mailto form handoff.
package contact

import (
	"net/http"

	module "github.com/ikavisbode/v0-iia/internal/web/module"
	"github.com/ikavisbode/v0-iia/internal/web/platform/pagerender"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
)

// Dependencies carries the renderer the module needs. The contact form keeps
// no server-side state, so there is no storage dependency.
type Dependencies struct {
	Render pagerender.Renderer
}

// Module provides contact routes.
type Module struct {
	deps Dependencies
}

// New returns a contact module.
func New(deps Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires contact route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps.Render)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Contact, Handler: mux}, nil
}
