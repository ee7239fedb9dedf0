// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	"github.com/ikavisbode/v0-iia/internal/web/platform/httpx"
	webi18n "github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
	webtemplates "github.com/ikavisbode/v0-iia/internal/web/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Title           string
	MetaDescription string
	StatusCode      int
	Lang            string
	Loc             webi18n.Localizer
	Fragment        templ.Component
}

// Renderer writes pages inside the shared site layout. AnalyticsID, when set,
// enables the analytics snippet in full-page renders.
type Renderer struct {
	AnalyticsID string
}

// WritePage renders a page. HTMX requests receive only the fragment so the
// client can swap it in place; everything else gets the full site layout.
func (re Renderer) WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
		return httpx.WriteHTML(w, statusCode, buf.String())
	}

	path := ""
	query := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
		query = r.URL.RawQuery
	}
	layout := webtemplates.SiteLayout(webtemplates.LayoutProps{
		Title:           page.Title,
		MetaDescription: page.MetaDescription,
		Lang:            page.Lang,
		Loc:             page.Loc,
		Path:            path,
		RawQuery:        query,
		AnalyticsID:     re.AnalyticsID,
	})
	if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}
