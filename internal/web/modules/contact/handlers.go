package contact

import (
	"net/http"

	apperrors "github.com/ikavisbode/v0-iia/internal/web/platform/errors"
	"github.com/ikavisbode/v0-iia/internal/web/platform/httpx"
	webi18n "github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
	"github.com/ikavisbode/v0-iia/internal/web/platform/pagerender"
	"github.com/ikavisbode/v0-iia/internal/web/templates"
)

type handlers struct {
	render pagerender.Renderer
}

func newHandlers(render pagerender.Renderer) handlers {
	return handlers{render: render}
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	_ = h.render.WritePage(w, r, pagerender.Page{
		Title:    loc.T("contact.title") + " — " + templates.SiteName,
		Lang:     lang,
		Loc:      loc,
		Fragment: templates.ContactPage(templates.ContactProps{Loc: loc}),
	})
}

// handleSubmit validates the form and hands the visitor off to their mail
// client through a redirect to the built mailto: URI. Nothing is stored.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "malformed form body"))
		return
	}

	submission := Submission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}

	if err := submission.Validate(); err != nil {
		key := apperrors.LocalizationKey(err)
		if key == "" {
			key = "contact.form.missing"
		}
		props := templates.ContactProps{
			Loc:     loc,
			Error:   loc.T(key),
			Name:    submission.Name,
			Email:   submission.Email,
			Subject: submission.Subject,
			Message: submission.Message,
		}
		// HTMX swaps the form back in place; full posts re-render the page.
		page := pagerender.Page{
			Title:      loc.T("contact.title") + " — " + templates.SiteName,
			StatusCode: http.StatusUnprocessableEntity,
			Lang:       lang,
			Loc:        loc,
			Fragment:   templates.ContactPage(props),
		}
		if httpx.IsHTMXRequest(r) {
			page.Fragment = templates.ContactForm(props)
		}
		_ = h.render.WritePage(w, r, page)
		return
	}

	// HTMX follows Location redirects with XHR, which would fetch the
	// mailto URI in-page instead of opening the mail client. WriteRedirect
	// answers those requests with an HX-Redirect header so the browser
	// performs the navigation itself.
	httpx.WriteRedirect(w, r, BuildMailto(submission))
}
