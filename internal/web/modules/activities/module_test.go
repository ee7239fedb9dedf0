package activities

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ikavisbode/v0-iia/internal/content"
	"github.com/ikavisbode/v0-iia/internal/web/platform/pagerender"
)

type fakeLoader struct {
	activities []content.Activity
}

func (f fakeLoader) LoadActivities(context.Context) []content.Activity { return f.activities }

func (f fakeLoader) GetActivityBySlug(_ context.Context, slug string) *content.Activity {
	for _, item := range f.activities {
		if item.Slug == slug {
			found := item
			return &found
		}
	}
	return nil
}

func mountHandler(t *testing.T, loader Loader) http.Handler {
	t.Helper()
	mount, err := New(Dependencies{Content: loader, Render: pagerender.Renderer{}}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func sampleActivities() []content.Activity {
	return []content.Activity{
		{
			Slug: "curso-atuacao-camera",
			PT:   content.ActivityRecord{Title: "Curso de Atuação para Câmera"},
		},
		{
			Slug:                "oficina-teatro-fisico",
			Featured:            true,
			CurrentParticipants: 14,
			MaxParticipants:     20,
			PT: content.ActivityRecord{
				Title:      "Oficina de Teatro Físico",
				Instructor: content.Instructor{Name: "Maria Santos", URL: "https://example.com/maria"},
			},
			Program: []content.ProgramDay{{
				PT: content.ProgramDayRecord{
					Day: "Dia 1",
					Sessions: []content.ProgramSession{
						{Time: "09h", Topic: "Aquecimento e consciência corporal"},
					},
				},
			}},
			Requirements: &content.LocalizedList{PT: []string{"Roupas confortáveis"}},
			Benefits:     &content.LocalizedList{PT: []string{"Certificado de participação"}},
		},
	}
}

func TestListLeadsWithFeatured(t *testing.T) {
	rec := httptest.NewRecorder()
	mountHandler(t, fakeLoader{activities: sampleActivities()}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/atividades", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	featuredAt := strings.Index(body, "Oficina de Teatro Físico")
	regularAt := strings.Index(body, "Curso de Atuação para Câmera")
	if featuredAt < 0 || regularAt < 0 {
		t.Fatal("both activities should be listed")
	}
	if featuredAt > regularAt {
		t.Error("featured activity should come first")
	}
}

func TestDetailRendersActivity(t *testing.T) {
	rec := httptest.NewRecorder()
	mountHandler(t, fakeLoader{activities: sampleActivities()}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/atividades/oficina-teatro-fisico", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Oficina de Teatro Físico",
		"Maria Santos",
		"14 de 20 vagas preenchidas",
		"Dia 1",
		"Aquecimento e consciência corporal",
		"Roupas confortáveis",
		"Certificado de participação",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("detail missing %q", want)
		}
	}
	if !strings.Contains(body, `href="https://example.com/maria"`) {
		t.Error("instructor link missing")
	}
}

func TestDetailWithoutCapacityHidesSpots(t *testing.T) {
	loader := fakeLoader{activities: []content.Activity{{
		Slug: "workshop",
		PT:   content.ActivityRecord{Title: "Workshop"},
	}}}
	rec := httptest.NewRecorder()
	mountHandler(t, loader).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/atividades/workshop", nil))

	if strings.Contains(rec.Body.String(), "vagas preenchidas") {
		t.Error("spots indicator should be hidden without a capacity")
	}
}

func TestDetailUnknownSlugReturns404(t *testing.T) {
	rec := httptest.NewRecorder()
	mountHandler(t, fakeLoader{activities: sampleActivities()}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/atividades/nao-existe", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Atividade não encontrada") {
		t.Error("not-found page missing localized title")
	}
}

func TestListSplitWithoutFeatured(t *testing.T) {
	svc := newService(fakeLoader{activities: []content.Activity{
		{Slug: "a"}, {Slug: "b"},
	}})
	featured, rest := svc.list(context.Background())
	if featured != nil {
		t.Errorf("featured = %+v, want nil", featured)
	}
	if len(rest) != 2 {
		t.Errorf("rest = %+v", rest)
	}
}
