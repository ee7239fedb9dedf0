package templates

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
)

// HeroImages are the key-visual slides of the home carousel, in order.
var HeroImages = []string{
	"/images/2025_IIA_KV_1.png",
	"/images/2025_IIA_KV_3.png",
	"/images/2025_IIA_KV_4.png",
}

// heroIntervalMS is how long each carousel slide stays up.
const heroIntervalMS = 5000

// HomeProps carries everything the home page renders.
type HomeProps struct {
	Loc        i18n.Localizer
	Filters    []FilterChip
	Projects   []ProjectCard
	Featured   *ActivityCard
	Activities []ActivityCard
	Team       []MemberCard
}

// HomePage renders the landing page: hero carousel, about, project and
// activity previews, the team strip and a contact section.
func HomePage(props HomeProps) templ.Component {
	return Group(
		heroSection(props.Loc),
		aboutSection(props.Loc),
		homeProjectsSection(props),
		homeActivitiesSection(props),
		homeTeamSection(props),
		homeContactSection(props.Loc),
	)
}

func heroSection(loc i18n.Localizer) templ.Component {
	slides := make([]templ.Component, 0, len(HeroImages))
	for idx, src := range HeroImages {
		slides = append(slides, El("div", []Attr{
			{Key: "class", Value: classes("hero-slide", activeClass(idx == 0))},
			{Key: "style", Value: "background-image:url('" + src + "')"},
		}))
	}
	return El("section", []Attr{{Key: "id", Value: "home"}, {Key: "class", Value: "hero"}},
		El("div", []Attr{
			{Key: "class", Value: "hero-carousel"},
			{Key: "data-carousel-interval", Value: strconv.Itoa(heroIntervalMS)},
		}, slides...),
		El("div", []Attr{{Key: "class", Value: "hero-content"}},
			El("h1", nil, Text(SiteName)),
			El("p", []Attr{{Key: "class", Value: "hero-tagline"}}, Text(loc.T("home.hero.tagline"))),
			El("p", []Attr{{Key: "class", Value: "hero-lead"}}, Text(loc.T("home.hero.lead"))),
			El("a", []Attr{{Key: "href", Value: "#projects"}, {Key: "class", Value: "button hero-cta"}},
				Text(loc.T("home.hero.cta"))),
		),
	)
}

func aboutSection(loc i18n.Localizer) templ.Component {
	pillars := []struct{ title, body string }{
		{loc.T("home.about.history.title"), loc.T("home.about.history.body")},
		{loc.T("home.about.mission.title"), loc.T("home.about.mission.body")},
		{loc.T("home.about.vision.title"), loc.T("home.about.vision.body")},
		{loc.T("home.about.values.title"), loc.T("home.about.values.body")},
	}
	cards := make([]templ.Component, 0, len(pillars))
	for _, pillar := range pillars {
		cards = append(cards, El("div", []Attr{{Key: "class", Value: "pillar"}},
			El("h3", nil, Text(pillar.title)),
			El("p", nil, Text(pillar.body)),
		))
	}
	return El("section", []Attr{{Key: "id", Value: "about"}, {Key: "class", Value: "about"}},
		SectionHeader(loc.T("home.about.title"), loc.T("home.about.subtitle")),
		El("div", []Attr{{Key: "class", Value: "pillar-grid"}}, cards...),
	)
}

func homeProjectsSection(props HomeProps) templ.Component {
	loc := props.Loc
	return El("section", []Attr{{Key: "id", Value: "projects"}, {Key: "class", Value: "home-projects"}},
		SectionHeader(loc.T("home.projects.title"), loc.T("home.projects.subtitle")),
		FilterBar("#home-project-grid", props.Filters),
		HomeProjectGrid(props.Projects, loc),
		El("div", []Attr{{Key: "class", Value: "section-cta"}},
			El("a", []Attr{{Key: "href", Value: routepath.Projects}, {Key: "class", Value: "button"}},
				Text(loc.T("home.projects.all")))),
	)
}

// HomeProjectGrid renders the home project preview grid. It is the HTMX swap
// target of the home filter bar.
func HomeProjectGrid(cards []ProjectCard, loc i18n.Localizer) templ.Component {
	if len(cards) == 0 {
		return El("div", []Attr{{Key: "id", Value: "home-project-grid"}, {Key: "class", Value: "card-grid"}},
			EmptyState(loc.T("home.projects.empty")))
	}
	items := make([]templ.Component, 0, len(cards))
	for _, card := range cards {
		items = append(items, ProjectCardView(card, loc))
	}
	return El("div", []Attr{{Key: "id", Value: "home-project-grid"}, {Key: "class", Value: "card-grid"}}, items...)
}

func homeActivitiesSection(props HomeProps) templ.Component {
	loc := props.Loc
	var featured templ.Component = templ.NopComponent
	if props.Featured != nil {
		featured = El("div", []Attr{{Key: "class", Value: "featured-activity"}},
			ActivityCardView(*props.Featured, loc))
	}
	var grid templ.Component
	if len(props.Activities) == 0 && props.Featured == nil {
		grid = EmptyState(loc.T("home.activities.empty"))
	} else {
		items := make([]templ.Component, 0, len(props.Activities))
		for _, card := range props.Activities {
			items = append(items, ActivityCardView(card, loc))
		}
		grid = El("div", []Attr{{Key: "class", Value: "card-grid"}}, items...)
	}
	return El("section", []Attr{{Key: "id", Value: "activities"}, {Key: "class", Value: "home-activities"}},
		SectionHeader(loc.T("home.activities.title"), loc.T("home.activities.subtitle")),
		featured,
		grid,
		El("div", []Attr{{Key: "class", Value: "section-cta"}},
			El("a", []Attr{{Key: "href", Value: routepath.Activities}, {Key: "class", Value: "button"}},
				Text(loc.T("home.activities.all")))),
	)
}

func homeTeamSection(props HomeProps) templ.Component {
	loc := props.Loc
	var strip templ.Component
	if len(props.Team) == 0 {
		strip = EmptyState(loc.T("home.team.empty"))
	} else {
		items := make([]templ.Component, 0, len(props.Team))
		for _, card := range props.Team {
			items = append(items, El("div", []Attr{{Key: "class", Value: "team-strip-item"}},
				MemberCardView(card)))
		}
		strip = El("div", []Attr{{Key: "class", Value: "team-strip"}, {Key: "data-team-strip", Value: "true"}},
			El("div", []Attr{{Key: "class", Value: "team-strip-track"}}, items...))
	}
	return El("section", []Attr{{Key: "id", Value: "team"}, {Key: "class", Value: "home-team"}},
		SectionHeader(loc.T("home.team.title"), loc.T("home.team.subtitle")),
		strip,
		El("div", []Attr{{Key: "class", Value: "section-cta"}},
			El("a", []Attr{{Key: "href", Value: routepath.Team}, {Key: "class", Value: "button"}},
				Text(loc.T("home.team.all")))),
	)
}

func homeContactSection(loc i18n.Localizer) templ.Component {
	return El("section", []Attr{{Key: "id", Value: "contact"}, {Key: "class", Value: "home-contact"}},
		SectionHeader(loc.T("contact.title"), loc.T("contact.subtitle")),
		El("div", []Attr{{Key: "class", Value: "contact-links"}},
			El("a", []Attr{{Key: "href", Value: "mailto:" + contactEmail}}, Text(contactEmail)),
			El("a", []Attr{{Key: "href", Value: instagramURL}}, Text("Instagram")),
			El("a", []Attr{{Key: "href", Value: youtubeURL}}, Text("YouTube")),
		),
		El("div", []Attr{{Key: "class", Value: "section-cta"}},
			El("a", []Attr{{Key: "href", Value: routepath.Contact}, {Key: "class", Value: "button"}},
				Text(loc.T("contact.form.title")))),
	)
}
