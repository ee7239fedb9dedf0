package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ikavisbode/v0-iia/internal/platform/timeouts"
)

// itemFetchLimit caps how many item documents are fetched in parallel while
// resolving a manifest.
const itemFetchLimit = 4

// manifest document shapes, one key per kind.
type (
	projectManifest  struct{ Projects []string `json:"projects"` }
	activityManifest struct{ Activities []string `json:"activities"` }
	memberManifest   struct{ Members []string `json:"members"` }
)

// Store retrieves content entities over HTTP from a static file tree laid out
// as /data/<kind>/manifest.json plus /data/<kind>/<slug>.json.
//
// The public methods never fail: a manifest that cannot be fetched yields an
// empty list, an item that cannot be fetched is omitted from its list, and a
// slug lookup that misses returns nil. Failures are logged and otherwise
// absorbed so a broken document can never take a page down with it.
type Store struct {
	baseURL string
	client  *http.Client
}

// NewStore returns a Store reading from baseURL, e.g. "http://localhost:8080".
// The /data prefix is appended by the store. client may be nil, in which case
// a client with a short timeout is used.
func NewStore(baseURL string, client *http.Client) *Store {
	if client == nil {
		client = &http.Client{Timeout: timeouts.ContentFetch}
	}
	return &Store{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// LoadProjects returns all projects in manifest order. Unfetchable entries
// are omitted.
func (s *Store) LoadProjects(ctx context.Context) []Project {
	items, err := s.fetchProjects(ctx)
	if err != nil {
		log.Printf("msg=\"load projects\" err=%q", err)
		return nil
	}
	return items
}

// GetProjectBySlug returns the project with the given slug, or nil if it does
// not exist or cannot be fetched.
func (s *Store) GetProjectBySlug(ctx context.Context, slug string) *Project {
	var p Project
	if err := s.fetchItem(ctx, "project", slug, &p); err != nil {
		log.Printf("msg=\"get project\" slug=%q err=%q", slug, err)
		return nil
	}
	return &p
}

// LoadActivities returns all activities in manifest order. Unfetchable
// entries are omitted.
func (s *Store) LoadActivities(ctx context.Context) []Activity {
	items, err := s.fetchActivities(ctx)
	if err != nil {
		log.Printf("msg=\"load activities\" err=%q", err)
		return nil
	}
	return items
}

// GetActivityBySlug returns the activity with the given slug, or nil if it
// does not exist or cannot be fetched.
func (s *Store) GetActivityBySlug(ctx context.Context, slug string) *Activity {
	var a Activity
	if err := s.fetchItem(ctx, "activity", slug, &a); err != nil {
		log.Printf("msg=\"get activity\" slug=%q err=%q", slug, err)
		return nil
	}
	return &a
}

// LoadMembers returns all team members in manifest order. Unfetchable entries
// are omitted.
func (s *Store) LoadMembers(ctx context.Context) []Member {
	items, err := s.fetchMembers(ctx)
	if err != nil {
		log.Printf("msg=\"load members\" err=%q", err)
		return nil
	}
	return items
}

// GetMemberBySlug returns the member with the given slug, or nil if it does
// not exist or cannot be fetched.
func (s *Store) GetMemberBySlug(ctx context.Context, slug string) *Member {
	var m Member
	if err := s.fetchItem(ctx, "member", slug, &m); err != nil {
		log.Printf("msg=\"get member\" slug=%q err=%q", slug, err)
		return nil
	}
	return &m
}

func (s *Store) fetchProjects(ctx context.Context) ([]Project, error) {
	var m projectManifest
	if err := s.fetchJSON(ctx, s.manifestURL("project"), &m); err != nil {
		return nil, err
	}
	return fetchItems[Project](ctx, s, "project", m.Projects), nil
}

func (s *Store) fetchActivities(ctx context.Context) ([]Activity, error) {
	var m activityManifest
	if err := s.fetchJSON(ctx, s.manifestURL("activity"), &m); err != nil {
		return nil, err
	}
	return fetchItems[Activity](ctx, s, "activity", m.Activities), nil
}

func (s *Store) fetchMembers(ctx context.Context) ([]Member, error) {
	var m memberManifest
	if err := s.fetchJSON(ctx, s.manifestURL("member"), &m); err != nil {
		return nil, err
	}
	return fetchItems[Member](ctx, s, "member", m.Members), nil
}

// fetchItems resolves manifest slugs into items, concurrently but preserving
// manifest order. Slugs whose documents cannot be fetched are dropped.
func fetchItems[T any](ctx context.Context, s *Store, kind string, slugs []string) []T {
	results := make([]*T, len(slugs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(itemFetchLimit)
	for i, slug := range slugs {
		g.Go(func() error {
			var item T
			if err := s.fetchItem(ctx, kind, slug, &item); err != nil {
				log.Printf("msg=\"fetch item\" kind=%s slug=%q err=%q", kind, slug, err)
				return nil
			}
			mu.Lock()
			results[i] = &item
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	items := make([]T, 0, len(slugs))
	for _, r := range results {
		if r != nil {
			items = append(items, *r)
		}
	}
	return items
}

func (s *Store) fetchItem(ctx context.Context, kind, slug string, target any) error {
	return s.fetchJSON(ctx, s.itemURL(kind, slug), target)
}

func (s *Store) fetchJSON(ctx context.Context, rawURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: status %d", rawURL, res.StatusCode)
	}
	if !isJSONContentType(res.Header.Get("Content-Type")) {
		return fmt.Errorf("fetch %s: content type %q is not JSON", rawURL, res.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", rawURL, err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return nil
}

// isJSONContentType reports whether a Content-Type header advertises JSON.
// Static hosts sometimes serve missing files as HTML error pages with a 200
// status; the check keeps those out of the decoder.
func isJSONContentType(value string) bool {
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func (s *Store) manifestURL(kind string) string {
	return fmt.Sprintf("%s/data/%s/manifest.json", s.baseURL, kind)
}

func (s *Store) itemURL(kind, slug string) string {
	return fmt.Sprintf("%s/data/%s/%s.json", s.baseURL, kind, url.PathEscape(slug))
}
