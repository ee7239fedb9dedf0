package templates

import (
	"github.com/a-h/templ"

	"github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
)

// ActivityListProps carries the activity listing page data.
type ActivityListProps struct {
	Loc      i18n.Localizer
	Featured *ActivityCard
	Cards    []ActivityCard
}

// ActivityListPage renders the full activity listing. The featured activity,
// when present, leads the page.
func ActivityListPage(props ActivityListProps) templ.Component {
	loc := props.Loc
	var featured templ.Component = templ.NopComponent
	if props.Featured != nil {
		featured = El("div", []Attr{{Key: "class", Value: "featured-activity"}},
			ActivityCardView(*props.Featured, loc))
	}
	var grid templ.Component
	if len(props.Cards) == 0 && props.Featured == nil {
		grid = EmptyState(loc.T("activities.empty"))
	} else {
		items := make([]templ.Component, 0, len(props.Cards))
		for _, card := range props.Cards {
			items = append(items, ActivityCardView(card, loc))
		}
		grid = El("div", []Attr{{Key: "class", Value: "card-grid"}}, items...)
	}
	return El("section", []Attr{{Key: "class", Value: "list-page activities-page"}},
		SectionHeader(loc.T("activities.title"), loc.T("activities.subtitle")),
		El("p", []Attr{{Key: "class", Value: "page-lead"}}, Text(loc.T("activities.lead"))),
		featured,
		grid,
	)
}

// ActivityDetailProps carries a single activity's detail page data.
type ActivityDetailProps struct {
	Loc             i18n.Localizer
	Title           string
	Category        string
	Description     string
	FullDescription string
	Date            string
	Time            string
	Duration        string
	Location        string
	Price           string
	Images          []string
	Instructor      InstructorView
	SpotsTaken      int
	SpotsTotal      int
	Program         []ProgramDayView
	Requirements    []string
	Benefits        []string
}

// InstructorView is the rendered instructor block.
type InstructorView struct {
	Name    string
	Picture string
	URL     string
}

// ProgramDayView is one rendered program day.
type ProgramDayView struct {
	Day      string
	Sessions []ProgramSessionView
}

// ProgramSessionView is one rendered program slot.
type ProgramSessionView struct {
	Time  string
	Topic string
}

// ActivityDetailPage renders an activity's detail page.
func ActivityDetailPage(props ActivityDetailProps) templ.Component {
	loc := props.Loc

	description := props.FullDescription
	if description == "" {
		description = props.Description
	}

	facts := El("dl", []Attr{{Key: "class", Value: "detail-facts"}},
		metaEntry(loc.T("label.date"), props.Date),
		metaEntry(loc.T("label.time"), props.Time),
		metaEntry(loc.T("label.duration"), props.Duration),
		metaEntry(loc.T("label.location"), props.Location),
		metaEntry(loc.T("label.price"), props.Price),
	)

	return El("article", []Attr{{Key: "class", Value: "detail-page activity-detail"}},
		detailGallery(props.Images, props.Title),
		El("header", []Attr{{Key: "class", Value: "detail-header"}},
			El("span", []Attr{{Key: "class", Value: "card-category"}}, Text(props.Category)),
			El("h1", nil, Text(props.Title)),
		),
		El("section", []Attr{{Key: "class", Value: "detail-about"}},
			El("h2", nil, Text(loc.T("activities.detail.about"))),
			El("p", nil, Text(description)),
			facts,
			spotsIndicator(props.SpotsTaken, props.SpotsTotal, loc),
		),
		instructorBlock(props.Instructor, loc),
		programSection(props.Program, loc),
		bulletSection("detail-requirements", loc.T("activities.detail.requirements"), props.Requirements),
		bulletSection("detail-benefits", loc.T("activities.detail.benefits"), props.Benefits),
	)
}

// spotsIndicator shows enrollment as informational text. Enrollment itself
// happens off-site, so the numbers are display-only.
func spotsIndicator(taken, total int, loc i18n.Localizer) templ.Component {
	if total <= 0 {
		return templ.NopComponent
	}
	return El("p", []Attr{{Key: "class", Value: "spots-indicator"}},
		Text(loc.T("activities.detail.spots", taken, total)))
}

func instructorBlock(instructor InstructorView, loc i18n.Localizer) templ.Component {
	if instructor.Name == "" {
		return templ.NopComponent
	}
	name := templ.Component(Text(instructor.Name))
	if instructor.URL != "" {
		name = El("a", []Attr{{Key: "href", Value: instructor.URL}}, Text(instructor.Name))
	}
	return El("section", []Attr{{Key: "class", Value: "detail-instructor"}},
		El("h2", nil, Text(loc.T("label.instructor"))),
		If(instructor.Picture != "", El("img", []Attr{
			{Key: "src", Value: instructor.Picture},
			{Key: "alt", Value: instructor.Name},
			{Key: "loading", Value: "lazy"},
		})),
		El("p", nil, name),
	)
}

func programSection(days []ProgramDayView, loc i18n.Localizer) templ.Component {
	if len(days) == 0 {
		return templ.NopComponent
	}
	blocks := make([]templ.Component, 0, len(days))
	for _, day := range days {
		sessions := make([]templ.Component, 0, len(day.Sessions))
		for _, session := range day.Sessions {
			sessions = append(sessions, El("li", nil,
				El("span", []Attr{{Key: "class", Value: "program-time"}}, Text(session.Time)),
				El("span", []Attr{{Key: "class", Value: "program-topic"}}, Text(session.Topic)),
			))
		}
		blocks = append(blocks, El("div", []Attr{{Key: "class", Value: "program-day"}},
			El("h3", nil, Text(day.Day)),
			El("ul", nil, sessions...),
		))
	}
	return El("section", []Attr{{Key: "class", Value: "detail-program"}},
		El("h2", nil, Text(loc.T("activities.detail.program"))),
		Group(blocks...),
	)
}

func bulletSection(class, title string, entries []string) templ.Component {
	if len(entries) == 0 {
		return templ.NopComponent
	}
	items := make([]templ.Component, 0, len(entries))
	for _, entry := range entries {
		items = append(items, El("li", nil, Text(entry)))
	}
	return El("section", []Attr{{Key: "class", Value: class}},
		El("h2", nil, Text(title)),
		El("ul", nil, items...),
	)
}
