// Package routepath centralizes the site's URL space. Handlers register the
// pattern constants and templates build links through the helpers, so a route
// never exists in two spellings.
package routepath

import (
	"net/url"
	"strings"
)

// Route pattern constants as registered on the mux. Patterns with a {slug}
// wildcard pair with a helper below that fills it in.
const (
	Home            = "/"
	Projects        = "/projetos"
	ProjectPattern  = "/projetos/{slug}"
	Activities      = "/atividades"
	ActivityPattern = "/atividades/{slug}"
	Team            = "/equipe"
	MemberPattern   = "/equipe/{slug}"
	Contact         = "/contato"
	Health          = "/up"
	StaticPrefix    = "/static/"
	DataPrefix      = "/data/"
)

// ProjectDetail returns the URL of a project's detail page.
func ProjectDetail(slug string) string {
	return Projects + "/" + escapeSegment(slug)
}

// ActivityDetail returns the URL of an activity's detail page.
func ActivityDetail(slug string) string {
	return Activities + "/" + escapeSegment(slug)
}

// MemberDetail returns the URL of a team member's detail page.
func MemberDetail(slug string) string {
	return Team + "/" + escapeSegment(slug)
}

// Page identifiers accepted by Navigate.
const (
	PageHome           = "home"
	PageProjectsList   = "projects-list"
	PageActivitiesList = "activities-list"
	PageTeamList       = "team-list"
	PageProjectDetail  = "project-detail"
	PageActivityDetail = "activity-detail"
	PageMemberDetail   = "member-detail"
)

// Navigate resolves a page identifier, an optional home-page section and an
// optional item slug into a URL. Detail pages require the slug; without one
// they fall back to their list page. Sections only apply to the home page and
// become fragment identifiers there. Unknown pages and unknown sections
// resolve to the home page, so a stale link degrades instead of breaking.
func Navigate(page, section, slug string) string {
	switch page {
	case PageProjectsList:
		return Projects
	case PageActivitiesList:
		return Activities
	case PageTeamList:
		return Team
	case PageProjectDetail:
		if slug == "" {
			return Projects
		}
		return ProjectDetail(slug)
	case PageActivityDetail:
		if slug == "" {
			return Activities
		}
		return ActivityDetail(slug)
	case PageMemberDetail:
		if slug == "" {
			return Team
		}
		return MemberDetail(slug)
	case PageHome, "":
		// The *-list aliases carried by older links resolve to the
		// dedicated list pages, not their home preview sections.
		switch strings.TrimSpace(section) {
		case PageProjectsList:
			return Projects
		case PageActivitiesList:
			return Activities
		case PageTeamList:
			return Team
		}
		if anchor := homeAnchor(section); anchor != "" {
			return Home + "#" + anchor
		}
		return Home
	default:
		return Home
	}
}

// homeAnchor maps a section name to its anchor on the home page.
func homeAnchor(section string) string {
	switch strings.TrimSpace(section) {
	case "home":
		return ""
	case "about", "projects", "activities", "team", "contact":
		return section
	default:
		return ""
	}
}

func escapeSegment(s string) string {
	return url.PathEscape(s)
}
