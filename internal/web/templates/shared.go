package templates

import (
	"github.com/a-h/templ"

	"github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
)

// SectionHeader renders a section title with its subtitle.
func SectionHeader(title, subtitle string) templ.Component {
	return El("div", []Attr{{Key: "class", Value: "section-header"}},
		El("h2", nil, Text(title)),
		If(subtitle != "", El("p", []Attr{{Key: "class", Value: "section-subtitle"}}, Text(subtitle))),
	)
}

// FilterChip is one entry in a category filter bar.
type FilterChip struct {
	Label  string
	URL    string
	Active bool
}

// FilterBar renders filter chips that swap the grid in place for HTMX
// clients and fall back to full navigation otherwise.
func FilterBar(target string, chips []FilterChip) templ.Component {
	items := make([]templ.Component, 0, len(chips))
	for _, chip := range chips {
		items = append(items, El("a", []Attr{
			{Key: "href", Value: chip.URL},
			{Key: "class", Value: classes("filter-chip", activeClass(chip.Active))},
			{Key: "hx-get", Value: chip.URL},
			{Key: "hx-target", Value: target},
			{Key: "hx-push-url", Value: "true"},
		}, Text(chip.Label)))
	}
	return El("div", []Attr{{Key: "class", Value: "filter-bar"}}, items...)
}

// ProjectCard is the list/grid rendering of one project.
type ProjectCard struct {
	Title       string
	Description string
	Category    string
	Status      string
	Image       string
	URL         string
}

// ProjectCardView renders a project card linking to its detail page.
func ProjectCardView(card ProjectCard, loc i18n.Localizer) templ.Component {
	return El("article", []Attr{{Key: "class", Value: "card project-card"}},
		cardImage(card.Image, card.Title),
		El("div", []Attr{{Key: "class", Value: "card-body"}},
			El("span", []Attr{{Key: "class", Value: "card-category"}}, Text(card.Category)),
			El("h3", nil, Text(card.Title)),
			El("p", nil, Text(card.Description)),
			If(card.Status != "",
				El("span", []Attr{{Key: "class", Value: "card-status"}}, Text(card.Status))),
			El("a", []Attr{{Key: "href", Value: card.URL}, {Key: "class", Value: "card-link"}},
				Text(loc.T("common.learn_more"))),
		),
	)
}

// ActivityCard is the list/grid rendering of one activity.
type ActivityCard struct {
	Title       string
	Description string
	Category    string
	Date        string
	Location    string
	Price       string
	Instructor  string
	Image       string
	URL         string
	Featured    bool
}

// ActivityCardView renders an activity card linking to its detail page.
func ActivityCardView(card ActivityCard, loc i18n.Localizer) templ.Component {
	return El("article", []Attr{{Key: "class", Value: classes("card activity-card", featuredClass(card.Featured))}},
		If(card.Featured,
			El("span", []Attr{{Key: "class", Value: "featured-badge"}}, Text(loc.T("home.activities.featured")))),
		cardImage(card.Image, card.Title),
		El("div", []Attr{{Key: "class", Value: "card-body"}},
			El("span", []Attr{{Key: "class", Value: "card-category"}}, Text(card.Category)),
			El("h3", nil, Text(card.Title)),
			El("p", nil, Text(card.Description)),
			El("dl", []Attr{{Key: "class", Value: "card-meta"}},
				metaEntry(loc.T("label.date"), card.Date),
				metaEntry(loc.T("label.location"), card.Location),
				metaEntry(loc.T("label.price"), card.Price),
				metaEntry(loc.T("label.instructor"), card.Instructor),
			),
			El("a", []Attr{{Key: "href", Value: card.URL}, {Key: "class", Value: "card-link"}},
				Text(loc.T("common.learn_more"))),
		),
	)
}

// MemberCard is the list/grid rendering of one team member.
type MemberCard struct {
	Name        string
	Role        string
	Department  string
	Specialties []string
	Image       string
	URL         string
}

// MemberCardView renders a member card linking to their profile page.
func MemberCardView(card MemberCard) templ.Component {
	specialties := make([]templ.Component, 0, len(card.Specialties))
	for _, specialty := range card.Specialties {
		specialties = append(specialties,
			El("li", []Attr{{Key: "class", Value: "specialty-tag"}}, Text(specialty)))
	}
	return El("article", []Attr{{Key: "class", Value: "card member-card"}},
		El("a", []Attr{{Key: "href", Value: card.URL}},
			cardImage(card.Image, card.Name),
			El("div", []Attr{{Key: "class", Value: "card-body"}},
				El("h3", nil, Text(card.Name)),
				El("p", []Attr{{Key: "class", Value: "member-role"}}, Text(card.Role)),
				El("span", []Attr{{Key: "class", Value: "member-department"}}, Text(card.Department)),
				If(len(specialties) > 0,
					El("ul", []Attr{{Key: "class", Value: "specialty-list"}}, specialties...)),
			),
		),
	)
}

// EmptyState renders the message shown when a grid has nothing to display.
func EmptyState(message string) templ.Component {
	return El("p", []Attr{{Key: "class", Value: "empty-state"}}, Text(message))
}

// NotFoundPanel renders the in-layout panel for a missing page or item.
func NotFoundPanel(title, body string, loc i18n.Localizer) templ.Component {
	return El("section", []Attr{{Key: "class", Value: "not-found"}},
		El("h1", nil, Text(title)),
		El("p", nil, Text(body)),
		El("a", []Attr{{Key: "href", Value: routepath.Home}, {Key: "class", Value: "button"}},
			Text(loc.T("common.back_home"))),
	)
}

func cardImage(src, alt string) templ.Component {
	if src == "" {
		return El("div", []Attr{{Key: "class", Value: "card-image placeholder"}})
	}
	return El("img", []Attr{
		{Key: "src", Value: src},
		{Key: "alt", Value: alt},
		{Key: "class", Value: "card-image"},
		{Key: "loading", Value: "lazy"},
	})
}

func metaEntry(label, value string) templ.Component {
	if value == "" {
		return templ.NopComponent
	}
	return Group(
		El("dt", nil, Text(label)),
		El("dd", nil, Text(value)),
	)
}

func featuredClass(featured bool) string {
	if featured {
		return "featured"
	}
	return ""
}
