package activities

import (
	"context"

	"github.com/ikavisbode/v0-iia/internal/content"
)

// Loader loads published activities.
type Loader interface {
	LoadActivities(ctx context.Context) []content.Activity
	GetActivityBySlug(ctx context.Context, slug string) *content.Activity
}

type service struct {
	loader Loader
}

func newService(loader Loader) service {
	return service{loader: loader}
}

// list returns activities split into the leading featured one and the rest,
// both in manifest order.
func (s service) list(ctx context.Context) (*content.Activity, []content.Activity) {
	if s.loader == nil {
		return nil, nil
	}
	items := s.loader.LoadActivities(ctx)
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

// get returns one activity, or nil when absent.
func (s service) get(ctx context.Context, slug string) *content.Activity {
	if s.loader == nil {
		return nil
	}
	return s.loader.GetActivityBySlug(ctx, slug)
}
