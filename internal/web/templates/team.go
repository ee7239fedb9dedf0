package templates

import (
	"github.com/a-h/templ"

	"github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
)

// TeamListProps carries the team listing page data.
type TeamListProps struct {
	Loc     i18n.Localizer
	Query   string
	Filters []FilterChip
	Cards   []MemberCard
}

// TeamListPage renders the team listing with department filter and text
// search. The search input swaps the grid in place for HTMX clients.
func TeamListPage(props TeamListProps) templ.Component {
	loc := props.Loc
	search := El("form", []Attr{
		{Key: "class", Value: "team-search"},
		{Key: "method", Value: "get"},
		{Key: "action", Value: routepath.Team},
	},
		El("label", []Attr{{Key: "for", Value: "team-search-input"}, {Key: "class", Value: "visually-hidden"}},
			Text(loc.T("team.search.label"))),
		El("input", []Attr{
			{Key: "id", Value: "team-search-input"},
			{Key: "type", Value: "search"},
			{Key: "name", Value: "q"},
			{Key: "value", Value: props.Query},
			{Key: "placeholder", Value: loc.T("team.search.placeholder")},
			{Key: "hx-get", Value: routepath.Team},
			{Key: "hx-target", Value: "#team-grid"},
			{Key: "hx-trigger", Value: "input changed delay:300ms, search"},
			{Key: "hx-push-url", Value: "true"},
		}),
	)
	return El("section", []Attr{{Key: "class", Value: "list-page team-page"}},
		SectionHeader(loc.T("team.title"), loc.T("team.subtitle")),
		search,
		FilterBar("#team-grid", props.Filters),
		TeamGrid(props.Cards, loc),
	)
}

// TeamGrid renders the member grid. It is the HTMX swap target of both the
// department filter and the search input.
func TeamGrid(cards []MemberCard, loc i18n.Localizer) templ.Component {
	if len(cards) == 0 {
		return El("div", []Attr{{Key: "id", Value: "team-grid"}, {Key: "class", Value: "card-grid"}},
			EmptyState(loc.T("team.empty")))
	}
	items := make([]templ.Component, 0, len(cards))
	for _, card := range cards {
		items = append(items, MemberCardView(card))
	}
	return El("div", []Attr{{Key: "id", Value: "team-grid"}, {Key: "class", Value: "card-grid"}}, items...)
}

// MemberDetailProps carries a single member's profile page data.
type MemberDetailProps struct {
	Loc             i18n.Localizer
	Name            string
	Role            string
	Department      string
	Bio             string
	Image           string
	Email           string
	LinkedIn        string
	Instagram       string
	Specialties     []string
	Education       []string
	Achievements    []string
	CurrentProjects []MemberProjectView
	Testimonials    []TestimonialView
}

// MemberProjectView is one rendered current-project row.
type MemberProjectView struct {
	Title  string
	Role   string
	Status string
}

// TestimonialView is one rendered testimonial.
type TestimonialView struct {
	Author string
	Text   string
}

// MemberDetailPage renders a team member's profile page.
func MemberDetailPage(props MemberDetailProps) templ.Component {
	loc := props.Loc

	contact := El("ul", []Attr{{Key: "class", Value: "member-links"}},
		If(props.Email != "",
			El("li", nil, El("a", []Attr{{Key: "href", Value: "mailto:" + props.Email}}, Text(props.Email)))),
		If(props.LinkedIn != "",
			El("li", nil, El("a", []Attr{{Key: "href", Value: props.LinkedIn}}, Text("LinkedIn")))),
		If(props.Instagram != "",
			El("li", nil, El("a", []Attr{{Key: "href", Value: props.Instagram}}, Text("Instagram")))),
	)

	return El("article", []Attr{{Key: "class", Value: "detail-page member-detail"}},
		El("header", []Attr{{Key: "class", Value: "member-header"}},
			If(props.Image != "", El("img", []Attr{
				{Key: "src", Value: props.Image},
				{Key: "alt", Value: props.Name},
				{Key: "class", Value: "member-portrait"},
			})),
			El("div", nil,
				El("h1", nil, Text(props.Name)),
				El("p", []Attr{{Key: "class", Value: "member-role"}}, Text(props.Role)),
				El("span", []Attr{{Key: "class", Value: "member-department"}}, Text(props.Department)),
				contact,
			),
		),
		El("section", []Attr{{Key: "class", Value: "member-bio"}},
			El("h2", nil, Text(loc.T("team.detail.bio"))),
			El("p", nil, Text(props.Bio)),
		),
		bulletSection("member-specialties", loc.T("team.detail.specialties"), props.Specialties),
		bulletSection("member-education", loc.T("team.detail.education"), props.Education),
		bulletSection("member-achievements", loc.T("team.detail.achievements"), props.Achievements),
		memberProjectsSection(props.CurrentProjects, loc),
		testimonialsSection(props.Testimonials, loc),
	)
}

func memberProjectsSection(projects []MemberProjectView, loc i18n.Localizer) templ.Component {
	if len(projects) == 0 {
		return templ.NopComponent
	}
	rows := make([]templ.Component, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, El("li", []Attr{{Key: "class", Value: "member-project"}},
			El("strong", nil, Text(project.Title)),
			El("span", nil, Text(project.Role)),
			El("span", []Attr{{Key: "class", Value: "card-status"}}, Text(project.Status)),
		))
	}
	return El("section", []Attr{{Key: "class", Value: "member-projects"}},
		El("h2", nil, Text(loc.T("team.detail.projects"))),
		El("ul", nil, rows...),
	)
}

func testimonialsSection(testimonials []TestimonialView, loc i18n.Localizer) templ.Component {
	if len(testimonials) == 0 {
		return templ.NopComponent
	}
	items := make([]templ.Component, 0, len(testimonials))
	for _, testimonial := range testimonials {
		items = append(items, El("blockquote", []Attr{{Key: "class", Value: "testimonial"}},
			El("p", nil, Text(testimonial.Text)),
			El("footer", nil, Text(testimonial.Author)),
		))
	}
	return El("section", []Attr{{Key: "class", Value: "member-testimonials"}},
		El("h2", nil, Text(loc.T("team.detail.testimonials"))),
		Group(items...),
	)
}
