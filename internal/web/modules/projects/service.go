package projects

import (
	"context"

	"github.com/ikavisbode/v0-iia/internal/content"
)

// categories are the listing filter options, in display order.
var categories = []string{"PERFORMANCE", "PESQUISA", "LABORATÓRIO", "AUDIOVISUAL"}

// Loader loads published projects.
type Loader interface {
	LoadProjects(ctx context.Context) []content.Project
	GetProjectBySlug(ctx context.Context, slug string) *content.Project
}

type service struct {
	loader Loader
}

func newService(loader Loader) service {
	return service{loader: loader}
}

// list returns projects narrowed to category. An empty or unknown category
// keeps everything, preserving manifest order.
func (s service) list(ctx context.Context, category string) []content.Project {
	if s.loader == nil {
		return nil
	}
	items := s.loader.LoadProjects(ctx)
	if category == "" || !knownCategory(category) {
		return items
	}
	filtered := make([]content.Project, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// get returns one project, or nil when absent.
func (s service) get(ctx context.Context, slug string) *content.Project {
	if s.loader == nil {
		return nil
	}
	return s.loader.GetProjectBySlug(ctx, slug)
}

func knownCategory(category string) bool {
	for _, known := range categories {
		if known == category {
			return true
		}
	}
	return false
}
