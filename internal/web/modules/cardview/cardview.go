// Package cardview maps content entities to shared card view models.
package cardview

import (
	"github.com/ikavisbode/v0-iia/internal/content"
	"github.com/ikavisbode/v0-iia/internal/web/routepath"
	"github.com/ikavisbode/v0-iia/internal/web/templates"
)

// Project maps a project to its card for lang.
func Project(p content.Project, lang string) templates.ProjectCard {
	rec := p.Record(lang)
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return templates.ProjectCard{
		Title:       rec.Title,
		Description: rec.Description,
		Category:    p.Category,
		Status:      p.Status,
		Image:       image,
		URL:         routepath.ProjectDetail(p.Slug),
	}
}

// Projects maps projects to cards preserving order.
func Projects(items []content.Project, lang string) []templates.ProjectCard {
	cards := make([]templates.ProjectCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, Project(item, lang))
	}
	return cards
}

// Activity maps an activity to its card for lang.
func Activity(a content.Activity, lang string) templates.ActivityCard {
	rec := a.Record(lang)
	image := ""
	if len(a.Images) > 0 {
		image = a.Images[0]
	}
	return templates.ActivityCard{
		Title:       rec.Title,
		Description: rec.Description,
		Category:    a.Category,
		Date:        rec.Date,
		Location:    rec.Location,
		Price:       rec.Price,
		Instructor:  rec.Instructor.Name,
		Image:       image,
		URL:         routepath.ActivityDetail(a.Slug),
		Featured:    a.Featured,
	}
}

// Activities maps activities to cards preserving order.
func Activities(items []content.Activity, lang string) []templates.ActivityCard {
	cards := make([]templates.ActivityCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, Activity(item, lang))
	}
	return cards
}

// Member maps a team member to their card for lang.
func Member(m content.Member, lang string) templates.MemberCard {
	rec := m.Record(lang)
	return templates.MemberCard{
		Name:        rec.Name,
		Role:        rec.Role,
		Department:  m.Department,
		Specialties: rec.Specialties,
		Image:       m.Image,
		URL:         routepath.MemberDetail(m.Slug),
	}
}

// Members maps team members to cards preserving order.
func Members(items []content.Member, lang string) []templates.MemberCard {
	cards := make([]templates.MemberCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, Member(item, lang))
	}
	return cards
}
