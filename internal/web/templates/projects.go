package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
)

// ProjectListProps carries the project listing page data.
type ProjectListProps struct {
	Loc     i18n.Localizer
	Filters []FilterChip
	Cards   []ProjectCard
}

// ProjectListPage renders the full project listing with its category filter.
func ProjectListPage(props ProjectListProps) templ.Component {
	return El("section", []Attr{{Key: "class", Value: "list-page projects-page"}},
		SectionHeader(props.Loc.T("projects.title"), props.Loc.T("projects.subtitle")),
		FilterBar("#project-grid", props.Filters),
		ProjectGrid(props.Cards, props.Loc),
	)
}

// ProjectGrid renders the listing grid. It is the HTMX swap target of the
// project filter bar.
func ProjectGrid(cards []ProjectCard, loc i18n.Localizer) templ.Component {
	if len(cards) == 0 {
		return El("div", []Attr{{Key: "id", Value: "project-grid"}, {Key: "class", Value: "card-grid"}},
			EmptyState(loc.T("projects.empty")))
	}
	items := make([]templ.Component, 0, len(cards))
	for _, card := range cards {
		items = append(items, ProjectCardView(card, loc))
	}
	return El("div", []Attr{{Key: "id", Value: "project-grid"}, {Key: "class", Value: "card-grid"}}, items...)
}

// ProjectDetailProps carries a single project's detail page data.
type ProjectDetailProps struct {
	Loc             i18n.Localizer
	Title           string
	Category        string
	Status          string
	Description     string
	FullDescription string
	Director        string
	Cast            []string
	Duration        string
	Premiere        string
	Location        string
	Images          []string
	Video           string
	Schedule        []ScheduleEntry
	Reviews         []ReviewEntry
}

// ScheduleEntry is one localized session row.
type ScheduleEntry struct {
	Day  string
	Time string
}

// ReviewEntry is one localized review.
type ReviewEntry struct {
	Author string
	Rating int
	Text   string
}

// ProjectDetailPage renders a project's detail page.
func ProjectDetailPage(props ProjectDetailProps) templ.Component {
	loc := props.Loc

	facts := El("dl", []Attr{{Key: "class", Value: "detail-facts"}},
		metaEntry(loc.T("label.director"), props.Director),
		metaEntry(loc.T("label.duration"), props.Duration),
		metaEntry(loc.T("label.premiere"), props.Premiere),
		metaEntry(loc.T("label.location"), props.Location),
		metaEntry(loc.T("label.status"), props.Status),
	)

	description := props.FullDescription
	if description == "" {
		description = props.Description
	}

	return El("article", []Attr{{Key: "class", Value: "detail-page project-detail"}},
		detailGallery(props.Images, props.Title),
		El("header", []Attr{{Key: "class", Value: "detail-header"}},
			El("span", []Attr{{Key: "class", Value: "card-category"}}, Text(props.Category)),
			El("h1", nil, Text(props.Title)),
		),
		El("section", []Attr{{Key: "class", Value: "detail-about"}},
			El("h2", nil, Text(loc.T("projects.detail.about"))),
			El("p", nil, Text(description)),
			facts,
			castList(props.Cast, loc),
		),
		If(props.Video != "", videoEmbed(props.Video)),
		scheduleSection(props.Schedule, loc),
		reviewsSection(props.Reviews, loc),
	)
}

func castList(cast []string, loc i18n.Localizer) templ.Component {
	if len(cast) == 0 {
		return templ.NopComponent
	}
	items := make([]templ.Component, 0, len(cast))
	for _, name := range cast {
		items = append(items, El("li", nil, Text(name)))
	}
	return El("div", []Attr{{Key: "class", Value: "detail-cast"}},
		El("h3", nil, Text(loc.T("label.cast"))),
		El("ul", nil, items...),
	)
}

func videoEmbed(src string) templ.Component {
	return El("section", []Attr{{Key: "class", Value: "detail-video"}},
		El("iframe", []Attr{
			{Key: "src", Value: src},
			{Key: "loading", Value: "lazy"},
			{Key: "allowfullscreen", Value: ""},
		}),
	)
}

func scheduleSection(entries []ScheduleEntry, loc i18n.Localizer) templ.Component {
	if len(entries) == 0 {
		return templ.NopComponent
	}
	rows := make([]templ.Component, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, El("li", []Attr{{Key: "class", Value: "schedule-row"}},
			El("span", []Attr{{Key: "class", Value: "schedule-day"}}, Text(entry.Day)),
			El("span", []Attr{{Key: "class", Value: "schedule-time"}}, Text(entry.Time)),
		))
	}
	return El("section", []Attr{{Key: "class", Value: "detail-schedule"}},
		El("h2", nil, Text(loc.T("projects.detail.schedule"))),
		El("ul", nil, rows...),
	)
}

func reviewsSection(reviews []ReviewEntry, loc i18n.Localizer) templ.Component {
	if len(reviews) == 0 {
		return templ.NopComponent
	}
	items := make([]templ.Component, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, El("blockquote", []Attr{{Key: "class", Value: "review"}},
			El("p", nil, Text(review.Text)),
			El("footer", nil,
				Text(review.Author),
				If(review.Rating > 0, ratingStars(review.Rating)),
			),
		))
	}
	return El("section", []Attr{{Key: "class", Value: "detail-reviews"}},
		El("h2", nil, Text(loc.T("projects.detail.reviews"))),
		Group(items...),
	)
}

func ratingStars(rating int) templ.Component {
	if rating > 5 {
		rating = 5
	}
	return El("span", []Attr{
		{Key: "class", Value: "review-rating"},
		{Key: "aria-label", Value: fmt.Sprintf("%d/5", rating)},
	}, Text(strings.Repeat("★", rating)))
}

func detailGallery(images []string, alt string) templ.Component {
	if len(images) == 0 {
		return templ.NopComponent
	}
	items := make([]templ.Component, 0, len(images))
	for _, src := range images {
		items = append(items, El("img", []Attr{
			{Key: "src", Value: src},
			{Key: "alt", Value: alt},
			{Key: "loading", Value: "lazy"},
		}))
	}
	return El("div", []Attr{{Key: "class", Value: "detail-gallery"}}, items...)
}
