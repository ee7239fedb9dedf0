package home

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ikavisbode/v0-iia/internal/content"
)

// homeProjectCategories are the categories offered by the home preview
// filter, in display order.
var homeProjectCategories = []string{"PERFORMANCE", "PESQUISA"}

// ProjectLoader loads the published project list.
type ProjectLoader interface {
	LoadProjects(ctx context.Context) []content.Project
}

// ActivityLoader loads the published activity list.
type ActivityLoader interface {
	LoadActivities(ctx context.Context) []content.Activity
}

// MemberLoader loads the published team list.
type MemberLoader interface {
	LoadMembers(ctx context.Context) []content.Member
}

type homeData struct {
	Projects   []content.Project
	Activities []content.Activity
	Members    []content.Member
}

type service struct {
	projects   ProjectLoader
	activities ActivityLoader
	members    MemberLoader
}

func newService(deps Dependencies) service {
	return service{
		projects:   deps.Projects,
		activities: deps.Activities,
		members:    deps.Members,
	}
}

// load gathers the three content kinds concurrently. Loaders are fail-soft,
// so a missing kind renders as an empty section rather than an error page.
func (s service) load(ctx context.Context) homeData {
	var data homeData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if s.projects != nil {
			data.Projects = s.projects.LoadProjects(ctx)
		}
		return nil
	})
	g.Go(func() error {
		if s.activities != nil {
			data.Activities = s.activities.LoadActivities(ctx)
		}
		return nil
	})
	g.Go(func() error {
		if s.members != nil {
			data.Members = s.members.LoadMembers(ctx)
		}
		return nil
	})
	_ = g.Wait()
	return data
}

// loadProjects loads only the project list, for filter swaps.
func (s service) loadProjects(ctx context.Context) []content.Project {
	if s.projects == nil {
		return nil
	}
	return s.projects.LoadProjects(ctx)
}

// filterProjects narrows projects to one category. An empty or unknown
// category keeps everything, preserving order.
func filterProjects(items []content.Project, category string) []content.Project {
	if category == "" || !knownHomeCategory(category) {
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

func knownHomeCategory(category string) bool {
	for _, known := range homeProjectCategories {
		if known == category {
			return true
		}
	}
	return false
}

// splitFeatured pulls the first featured activity out of the list. The rest
// keep their manifest order.
func splitFeatured(items []content.Activity) (*content.Activity, []content.Activity) {
	for idx, item := range items {
		if item.Featured {
			featured := item
			rest := make([]content.Activity, 0, len(items)-1)
			rest = append(rest, items[:idx]...)
			rest = append(rest, items[idx+1:]...)
			return &featured, rest
		}
	}
	return nil, items
}
