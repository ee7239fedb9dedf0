package activities

import (
	"net/http"

	"github.com/ikavisbode/v0-iia/internal/content"
	"github.com/ikavisbode/v0-iia/internal/web/modules/cardview"
	"github.com/ikavisbode/v0-iia/internal/web/platform/httpx"
	webi18n "github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
	"github.com/ikavisbode/v0-iia/internal/web/platform/pagerender"
	"github.com/ikavisbode/v0-iia/internal/web/templates"
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

	featured, rest := h.svc.list(ctx)
	var featuredCard *templates.ActivityCard
	if featured != nil {
		card := cardview.Activity(*featured, lang)
		featuredCard = &card
	}

	_ = h.render.WritePage(w, r, pagerender.Page{
		Title: loc.T("activities.title") + " — " + templates.SiteName,
		Lang:  lang,
		Loc:   loc,
		Fragment: templates.ActivityListPage(templates.ActivityListProps{
			Loc:      loc,
			Featured: featuredCard,
			Cards:    cardview.Activities(rest, lang),
		}),
	})
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	loc, lang := webi18n.ResolveLocalizer(w, r)

	activity := h.svc.get(ctx, r.PathValue("slug"))
	if activity == nil {
		_ = h.render.WritePage(w, r, pagerender.Page{
			Title:      loc.T("activities.not_found.title"),
			StatusCode: http.StatusNotFound,
			Lang:       lang,
			Loc:        loc,
			Fragment: templates.NotFoundPanel(
				loc.T("activities.not_found.title"), loc.T("activities.not_found.body"), loc),
		})
		return
	}

	props := detailProps(*activity, lang, loc)
	_ = h.render.WritePage(w, r, pagerender.Page{
		Title:           props.Title + " — " + templates.SiteName,
		MetaDescription: props.Description,
		Lang:            lang,
		Loc:             loc,
		Fragment:        templates.ActivityDetailPage(props),
	})
}

func detailProps(activity content.Activity, lang string, loc webi18n.Localizer) templates.ActivityDetailProps {
	rec := activity.Record(lang)
	program := make([]templates.ProgramDayView, 0, len(activity.Program))
	for _, day := range activity.Program {
		localized := day.Localized(lang)
		sessions := make([]templates.ProgramSessionView, 0, len(localized.Sessions))
		for _, session := range localized.Sessions {
			sessions = append(sessions, templates.ProgramSessionView{
				Time:  session.Time,
				Topic: session.Topic,
			})
		}
		program = append(program, templates.ProgramDayView{
			Day:      localized.Day,
			Sessions: sessions,
		})
	}
	return templates.ActivityDetailProps{
		Loc:             loc,
		Title:           rec.Title,
		Category:        activity.Category,
		Description:     rec.Description,
		FullDescription: rec.FullDescription,
		Date:            rec.Date,
		Time:            rec.Time,
		Duration:        rec.Duration,
		Location:        rec.Location,
		Price:           rec.Price,
		Images:          activity.Images,
		Instructor: templates.InstructorView{
			Name:    rec.Instructor.Name,
			Picture: rec.Instructor.Picture,
			URL:     rec.Instructor.URL,
		},
		SpotsTaken:   activity.CurrentParticipants,
		SpotsTotal:   activity.MaxParticipants,
		Program:      program,
		Requirements: activity.Requirements.Localized(lang),
		Benefits:     activity.Benefits.Localized(lang),
	}
}
