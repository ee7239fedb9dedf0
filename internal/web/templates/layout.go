package templates

import (
	"fmt"
	"time"

	"github.com/a-h/templ"

	"github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
)

// SiteName is the institution's display name.
const SiteName = "Instituto Internacional de Atuação"

const (
	instagramURL = "https://www.instagram.com/inst.internacionaldeatuacao/"
	youtubeURL   = "https://www.youtube.com/@InstitutoInternacionaldeAtuacao"
	contactEmail = "contato@institutointernacional.com"
)

// LayoutProps configures the shared site layout.
type LayoutProps struct {
	Title           string
	MetaDescription string
	Lang            string
	Loc             i18n.Localizer
	Path            string
	RawQuery        string
	AnalyticsID     string
}

// SiteLayout renders the document shell around the page body passed as
// children: head, navbar and footer.
func SiteLayout(props LayoutProps) templ.Component {
	title := props.Title
	if title == "" {
		title = props.Loc.T("layout.title")
	}
	metaDesc := props.MetaDescription
	if metaDesc == "" {
		metaDesc = props.Loc.T("layout.meta_description")
	}
	lang := props.Lang
	if lang == "" {
		lang = "pt-BR"
	}

	head := El("head", nil,
		El("meta", []Attr{{Key: "charset", Value: "utf-8"}}),
		El("meta", []Attr{
			{Key: "name", Value: "viewport"},
			{Key: "content", Value: "width=device-width, initial-scale=1"},
		}),
		El("title", nil, Text(title)),
		El("meta", []Attr{
			{Key: "name", Value: "description"},
			{Key: "content", Value: metaDesc},
		}),
		El("link", []Attr{
			{Key: "rel", Value: "stylesheet"},
			{Key: "href", Value: routepath.StaticPrefix + "site.css"},
		}),
		El("script", []Attr{
			{Key: "src", Value: "https://unpkg.com/htmx.org@1.9.12"},
			{Key: "defer", Value: ""},
		}),
		El("script", []Attr{
			{Key: "src", Value: routepath.StaticPrefix + "site.js"},
			{Key: "defer", Value: ""},
		}),
		analyticsSnippet(props.AnalyticsID),
	)

	body := El("body", nil,
		navbar(props),
		El("main", nil, Children()),
		footer(props),
	)

	return Group(
		Raw("<!DOCTYPE html>"),
		El("html", []Attr{{Key: "lang", Value: lang}}, head, body),
	)
}

func navbar(props LayoutProps) templ.Component {
	loc := props.Loc
	links := []struct {
		href string
		key  string
	}{
		{routepath.Navigate(routepath.PageHome, "", ""), "nav.home"},
		{routepath.Navigate(routepath.PageHome, "about", ""), "nav.about"},
		{routepath.Projects, "nav.projects"},
		{routepath.Activities, "nav.activities"},
		{routepath.Team, "nav.team"},
		{routepath.Contact, "nav.contact"},
	}
	items := make([]templ.Component, 0, len(links))
	for _, link := range links {
		items = append(items, El("li", nil,
			El("a", []Attr{{Key: "href", Value: link.href}, {Key: "class", Value: "nav-link"}},
				Text(loc.T(link.key)))))
	}

	return El("header", []Attr{{Key: "class", Value: "navbar"}},
		El("a", []Attr{{Key: "href", Value: routepath.Home}, {Key: "class", Value: "navbar-brand"}},
			El("img", []Attr{
				{Key: "src", Value: "/images/logo.png"},
				{Key: "alt", Value: SiteName},
				{Key: "class", Value: "navbar-logo"},
			})),
		El("nav", []Attr{{Key: "aria-label", Value: "principal"}},
			El("ul", []Attr{{Key: "class", Value: "nav-links"}}, items...)),
		languageToggle(props),
	)
}

func languageToggle(props LayoutProps) templ.Component {
	options := i18n.BuildLanguageOptions(props.Lang, props.Path, props.RawQuery)
	items := make([]templ.Component, 0, len(options))
	for _, option := range options {
		attrs := []Attr{
			{Key: "href", Value: option.URL},
			{Key: "class", Value: classes("lang-option", activeClass(option.Active))},
			{Key: "hreflang", Value: option.Tag},
		}
		items = append(items, El("a", attrs, Text(option.Label)))
	}
	return El("div", []Attr{{Key: "class", Value: "lang-toggle"}}, items...)
}

func activeClass(active bool) string {
	if active {
		return "active"
	}
	return ""
}

func footer(props LayoutProps) templ.Component {
	loc := props.Loc
	year := copyrightYear()

	nav := El("nav", []Attr{{Key: "class", Value: "footer-nav"}},
		El("h3", nil, Text(loc.T("footer.navigation"))),
		El("ul", nil,
			footerLink(routepath.Home, loc.T("nav.home")),
			footerLink(routepath.Projects, loc.T("nav.projects")),
			footerLink(routepath.Activities, loc.T("nav.activities")),
			footerLink(routepath.Team, loc.T("nav.team")),
			footerLink(routepath.Contact, loc.T("nav.contact")),
		),
	)

	social := El("div", []Attr{{Key: "class", Value: "footer-social"}},
		El("h3", nil, Text(loc.T("footer.social"))),
		El("ul", nil,
			footerLink(instagramURL, "Instagram"),
			footerLink(youtubeURL, "YouTube"),
		),
	)

	contact := El("div", []Attr{{Key: "class", Value: "footer-contact"}},
		El("h3", nil, Text(loc.T("footer.contact"))),
		El("a", []Attr{{Key: "href", Value: "mailto:" + contactEmail}}, Text(contactEmail)),
	)

	return El("footer", []Attr{{Key: "class", Value: "site-footer"}},
		El("div", []Attr{{Key: "class", Value: "footer-grid"}},
			El("div", []Attr{{Key: "class", Value: "footer-brand"}},
				El("p", []Attr{{Key: "class", Value: "footer-name"}}, Text(SiteName)),
				El("p", nil, Text(loc.T("footer.blurb"))),
			),
			nav,
			social,
			contact,
		),
		El("p", []Attr{{Key: "class", Value: "footer-copyright"}},
			Text(fmt.Sprintf("© %d %s. %s", year, SiteName, loc.T("footer.rights")))),
	)
}

func copyrightYear() int {
	return time.Now().Year()
}

func footerLink(href, label string) templ.Component {
	return El("li", nil, El("a", []Attr{{Key: "href", Value: href}}, Text(label)))
}

// analyticsSnippet emits the gtag loader when a measurement id is configured.
func analyticsSnippet(measurementID string) templ.Component {
	if measurementID == "" {
		return templ.NopComponent
	}
	return Group(
		El("script", []Attr{
			{Key: "async", Value: ""},
			{Key: "src", Value: "https://www.googletagmanager.com/gtag/js?id=" + templ.EscapeString(measurementID)},
		}),
		El("script", nil, Raw(fmt.Sprintf(
			"window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config',%q);",
			measurementID))),
	)
}
