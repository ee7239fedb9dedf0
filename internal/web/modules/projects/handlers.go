package projects

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

// categoryParam selects the listing category.
const categoryParam = "categoria"

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
	category := r.URL.Query().Get(categoryParam)

	cards := cardview.Projects(h.svc.list(ctx, category), lang)

	if httpx.IsHTMXRequest(r) {
		_ = h.render.WritePage(w, r, pagerender.Page{
			Lang:     lang,
			Loc:      loc,
			Fragment: templates.ProjectGrid(cards, loc),
		})
		return
	}

	_ = h.render.WritePage(w, r, pagerender.Page{
		Title: loc.T("projects.title") + " — " + templates.SiteName,
		Lang:  lang,
		Loc:   loc,
		Fragment: templates.ProjectListPage(templates.ProjectListProps{
			Loc:     loc,
			Filters: filterChips(loc, category),
			Cards:   cards,
		}),
	})
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	loc, lang := webi18n.ResolveLocalizer(w, r)

	project := h.svc.get(ctx, r.PathValue("slug"))
	if project == nil {
		_ = h.render.WritePage(w, r, pagerender.Page{
			Title:      loc.T("projects.not_found.title"),
			StatusCode: http.StatusNotFound,
			Lang:       lang,
			Loc:        loc,
			Fragment: templates.NotFoundPanel(
				loc.T("projects.not_found.title"), loc.T("projects.not_found.body"), loc),
		})
		return
	}

	props := detailProps(*project, lang, loc)
	_ = h.render.WritePage(w, r, pagerender.Page{
		Title:           props.Title + " — " + templates.SiteName,
		MetaDescription: props.Description,
		Lang:            lang,
		Loc:             loc,
		Fragment:        templates.ProjectDetailPage(props),
	})
}

func detailProps(project content.Project, lang string, loc webi18n.Localizer) templates.ProjectDetailProps {
	rec := project.Record(lang)
	schedule := make([]templates.ScheduleEntry, 0, len(project.Schedule))
	for _, session := range project.Schedule {
		schedule = append(schedule, templates.ScheduleEntry{
			Day:  session.LocalizedDay(lang),
			Time: session.LocalizedTime(lang),
		})
	}
	reviews := make([]templates.ReviewEntry, 0, len(project.Reviews))
	for _, review := range project.Reviews {
		reviews = append(reviews, templates.ReviewEntry{
			Author: review.Author,
			Rating: review.Rating,
			Text:   review.LocalizedText(lang),
		})
	}
	return templates.ProjectDetailProps{
		Loc:             loc,
		Title:           rec.Title,
		Category:        project.Category,
		Status:          project.Status,
		Description:     rec.Description,
		FullDescription: rec.FullDescription,
		Director:        rec.Director,
		Cast:            rec.Cast,
		Duration:        rec.Duration,
		Premiere:        rec.Premiere,
		Location:        rec.Location,
		Images:          project.Images,
		Video:           project.Video,
		Schedule:        schedule,
		Reviews:         reviews,
	}
}

func filterChips(loc webi18n.Localizer, active string) []templates.FilterChip {
	chips := []templates.FilterChip{{
		Label:  loc.T("common.filter_all"),
		URL:    routepath.Projects,
		Active: active == "" || !knownCategory(active),
	}}
	for _, category := range categories {
		chips = append(chips, templates.FilterChip{
			Label:  category,
			URL:    routepath.Projects + "?" + categoryParam + "=" + url.QueryEscape(category),
			Active: active == category,
		})
	}
	return chips
}
