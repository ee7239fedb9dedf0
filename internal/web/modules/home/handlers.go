package home

import (
	"net/http"
	"net/url"

	"github.com/ikavisbode/v0-iia/internal/web/modules/cardview"
	"github.com/ikavisbode/v0-iia/internal/web/platform/httpx"
	webi18n "github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
	"github.com/ikavisbode/v0-iia/internal/web/platform/pagerender"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
	"github.com/ikavisbode/v0-iia/internal/web/templates"
)

// categoryParam selects the home project preview category.
const categoryParam = "categoria"

type handlers struct {
	svc    service
	render pagerender.Renderer
}

func newHandlers(svc service, render pagerender.Renderer) handlers {
	return handlers{svc: svc, render: render}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	loc, lang := webi18n.ResolveLocalizer(w, r)
	category := r.URL.Query().Get(categoryParam)

	// Filter swaps only need the project grid back.
	if httpx.IsHTMXRequest(r) {
		projects := filterProjects(h.svc.loadProjects(ctx), category)
		grid := templates.HomeProjectGrid(cardview.Projects(projects, lang), loc)
		_ = h.render.WritePage(w, r, pagerender.Page{Lang: lang, Loc: loc, Fragment: grid})
		return
	}

	data := h.svc.load(ctx)
	featured, rest := splitFeatured(data.Activities)
	var featuredCard *templates.ActivityCard
	if featured != nil {
		card := cardview.Activity(*featured, lang)
		featuredCard = &card
	}

	props := templates.HomeProps{
		Loc:        loc,
		Filters:    homeFilterChips(loc, category),
		Projects:   cardview.Projects(filterProjects(data.Projects, category), lang),
		Featured:   featuredCard,
		Activities: cardview.Activities(rest, lang),
		Team:       cardview.Members(data.Members, lang),
	}
	_ = h.render.WritePage(w, r, pagerender.Page{
		Lang:     lang,
		Loc:      loc,
		Fragment: templates.HomePage(props),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	_ = h.render.WritePage(w, r, pagerender.Page{
		Title:      loc.T("error.not_found.title"),
		StatusCode: http.StatusNotFound,
		Lang:       lang,
		Loc:        loc,
		Fragment:   templates.NotFoundPanel(loc.T("error.not_found.title"), loc.T("error.not_found.body"), loc),
	})
}

func homeFilterChips(loc webi18n.Localizer, active string) []templates.FilterChip {
	chips := []templates.FilterChip{{
		Label:  loc.T("common.filter_all"),
		URL:    routepath.Home,
		Active: active == "" || !knownHomeCategory(active),
	}}
	for _, category := range homeProjectCategories {
		chips = append(chips, templates.FilterChip{
			Label:  category,
			URL:    routepath.Home + "?" + categoryParam + "=" + url.QueryEscape(category),
			Active: active == category,
		})
	}
	return chips
}
