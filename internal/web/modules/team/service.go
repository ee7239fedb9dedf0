package team

import (
	"context"
	"strings"

	"github.com/ikavisbode/v0-iia/internal/content"
)

// departments are the listing filter options, in display order.
var departments = []string{"Direção", "Educação", "Pesquisa", "Produção", "Audiovisual"}

// Loader loads published team members.
type Loader interface {
	LoadMembers(ctx context.Context) []content.Member
	GetMemberBySlug(ctx context.Context, slug string) *content.Member
}

type service struct {
	loader Loader
}

func newService(loader Loader) service {
	return service{loader: loader}
}

// list returns members narrowed by department and free-text query, in
// manifest order. The query matches name, role and specialties of the
// active-language record, case-insensitively.
func (s service) list(ctx context.Context, department, query, lang string) []content.Member {
	if s.loader == nil {
		return nil
	}
	items := s.loader.LoadMembers(ctx)
	if department != "" && knownDepartment(department) {
		narrowed := make([]content.Member, 0, len(items))
		for _, item := range items {
			if item.Department == department {
				narrowed = append(narrowed, item)
			}
		}
		items = narrowed
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	matched := make([]content.Member, 0, len(items))
	for _, item := range items {
		if memberMatches(item, query, lang) {
			matched = append(matched, item)
		}
	}
	return matched
}

// get returns one member, or nil when absent.
func (s service) get(ctx context.Context, slug string) *content.Member {
	if s.loader == nil {
		return nil
	}
	return s.loader.GetMemberBySlug(ctx, slug)
}

func memberMatches(member content.Member, query, lang string) bool {
	rec := member.Record(lang)
	if containsFold(rec.Name, query) || containsFold(rec.Role, query) {
		return true
	}
	for _, specialty := range rec.Specialties {
		if containsFold(specialty, query) {
			return true
		}
	}
	return false
}

func containsFold(value, query string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

func knownDepartment(department string) bool {
	for _, known := range departments {
		if known == department {
			return true
		}
	}
	return false
}
