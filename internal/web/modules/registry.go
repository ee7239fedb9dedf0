// Package modules defines web module registry helpers.
package modules

import (
	"github.com/ikavisbode/v0-iia/internal/content"
	module "github.com/ikavisbode/v0-iia/internal/web/module"
	"github.com/ikavisbode/v0-iia/internal/web/modules/activities"
	"github.com/ikavisbode/v0-iia/internal/web/modules/contact"
	"github.com/ikavisbode/v0-iia/internal/web/modules/home"
	"github.com/ikavisbode/v0-iia/internal/web/modules/projects"
	"github.com/ikavisbode/v0-iia/internal/web/modules/team"
	"github.com/ikavisbode/v0-iia/internal/web/platform/pagerender"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the content store and shared renderer used to compose
// the web module registry.
type Dependencies struct {
	Store  *content.Store
	Render pagerender.Renderer
}

// DefaultModules returns the site's modules in mount order.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		home.New(home.Dependencies{
			Projects:   deps.Store,
			Activities: deps.Store,
			Members:    deps.Store,
			Render:     deps.Render,
		}),
		projects.New(projects.Dependencies{Content: deps.Store, Render: deps.Render}),
		activities.New(activities.Dependencies{Content: deps.Store, Render: deps.Render}),
		team.New(team.Dependencies{Content: deps.Store, Render: deps.Render}),
		contact.New(contact.Dependencies{Render: deps.Render}),
	}
}
