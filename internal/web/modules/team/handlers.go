package team

import (
	"net/http"
	"net/url"

	"github.com/ikavisbode/v0-iia/internal/content"
	"github.com/ikavisbode/v0-iia/internal/web/modules/cardview"
	"github.com/ikavisbode/v0-iia/internal/web/platform/httpx"
	webi18n "github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
	"github.com/ikavisbode/v0-iia/internal/web/platform/pagerender"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
	"github.com/ikavisbode/v0-iia/internal/web/templates"
)

const (
	// departmentParam selects the listing department.
	departmentParam = "departamento"
	// queryParam carries the free-text search.
	queryParam = "q"
)

type handlers struct {
	svc    service
	render pagerender.Renderer
}

func newHandlers(svc service, render pagerender.Renderer) handlers {
	return handlers{svc: svc, render: render}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	loc, lang := webi18n.ResolveLocalizer(w, r)
	department := r.URL.Query().Get(departmentParam)
	query := r.URL.Query().Get(queryParam)

	cards := cardview.Members(h.svc.list(ctx, department, query, lang), lang)

	if httpx.IsHTMXRequest(r) {
		_ = h.render.WritePage(w, r, pagerender.Page{
			Lang:     lang,
			Loc:      loc,
			Fragment: templates.TeamGrid(cards, loc),
		})
		return
	}

	_ = h.render.WritePage(w, r, pagerender.Page{
		Title: loc.T("team.title") + " — " + templates.SiteName,
		Lang:  lang,
		Loc:   loc,
		Fragment: templates.TeamListPage(templates.TeamListProps{
			Loc:     loc,
			Query:   query,
			Filters: departmentChips(loc, department, query),
			Cards:   cards,
		}),
	})
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	loc, lang := webi18n.ResolveLocalizer(w, r)

	member := h.svc.get(ctx, r.PathValue("slug"))
	if member == nil {
		_ = h.render.WritePage(w, r, pagerender.Page{
			Title:      loc.T("team.not_found.title"),
			StatusCode: http.StatusNotFound,
			Lang:       lang,
			Loc:        loc,
			Fragment: templates.NotFoundPanel(
				loc.T("team.not_found.title"), loc.T("team.not_found.body"), loc),
		})
		return
	}

	props := detailProps(*member, lang, loc)
	_ = h.render.WritePage(w, r, pagerender.Page{
		Title:           props.Name + " — " + templates.SiteName,
		MetaDescription: props.Bio,
		Lang:            lang,
		Loc:             loc,
		Fragment:        templates.MemberDetailPage(props),
	})
}

func detailProps(member content.Member, lang string, loc webi18n.Localizer) templates.MemberDetailProps {
	rec := member.Record(lang)
	projects := make([]templates.MemberProjectView, 0, len(member.CurrentProjects))
	for _, project := range member.CurrentProjects {
		localized := project.Localized(lang)
		projects = append(projects, templates.MemberProjectView{
			Title:  localized.Title,
			Role:   localized.Role,
			Status: localized.Status,
		})
	}
	testimonials := make([]templates.TestimonialView, 0, len(member.Testimonials))
	for _, testimonial := range member.Testimonials {
		testimonials = append(testimonials, templates.TestimonialView{
			Author: testimonial.Author,
			Text:   testimonial.LocalizedText(lang),
		})
	}
	return templates.MemberDetailProps{
		Loc:             loc,
		Name:            rec.Name,
		Role:            rec.Role,
		Department:      member.Department,
		Bio:             rec.Bio,
		Image:           member.Image,
		Email:           member.Email,
		LinkedIn:        member.Social.LinkedIn,
		Instagram:       member.Social.Instagram,
		Specialties:     rec.Specialties,
		Education:       member.Education.Localized(lang),
		Achievements:    member.Achievements.Localized(lang),
		CurrentProjects: projects,
		Testimonials:    testimonials,
	}
}

func departmentChips(loc webi18n.Localizer, active, query string) []templates.FilterChip {
	chips := []templates.FilterChip{{
		Label:  loc.T("common.filter_all"),
		URL:    chipURL("", query),
		Active: active == "" || !knownDepartment(active),
	}}
	for _, department := range departments {
		chips = append(chips, templates.FilterChip{
			Label:  department,
			URL:    chipURL(department, query),
			Active: active == department,
		})
	}
	return chips
}

// chipURL keeps the current search query when switching departments.
func chipURL(department, query string) string {
	values := url.Values{}
	if department != "" {
		values.Set(departmentParam, department)
	}
	if query != "" {
		values.Set(queryParam, query)
	}
	if encoded := values.Encode(); encoded != "" {
		return routepath.Team + "?" + encoded
	}
	return routepath.Team
}
