package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/ikavisbode/v0-iia/internal/web/platform/i18n"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func pt(t *testing.T) i18n.Localizer {
	t.Helper()
	return i18n.NewLocalizer(language.MustParse("pt-BR"))
}

func TestElEscapesAttributesAndText(t *testing.T) {
	got := render(t, El("div", []Attr{{Key: "title", Value: `a"b`}}, Text("<script>")))
	if strings.Contains(got, "<script>") {
		t.Errorf("text not escaped: %s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("escaped text missing: %s", got)
	}
	if strings.Contains(got, `title="a"b"`) {
		t.Errorf("attribute not escaped: %s", got)
	}
}

func TestElVoidElementHasNoClosingTag(t *testing.T) {
	got := render(t, El("img", []Attr{{Key: "src", Value: "/images/logo.png"}}))
	if strings.Contains(got, "</img>") {
		t.Errorf("void element closed: %s", got)
	}
}

func TestElBooleanAttribute(t *testing.T) {
	got := render(t, El("script", []Attr{{Key: "defer", Value: ""}}))
	if !strings.Contains(got, "<script defer>") {
		t.Errorf("boolean attribute missing: %s", got)
	}
}

func TestSiteLayoutRendersChromeAroundChildren(t *testing.T) {
	loc := pt(t)
	layout := SiteLayout(LayoutProps{Lang: "pt-BR", Loc: loc, Path: "/"})
	ctx := templ.WithChildren(context.Background(), Text("page-body-marker"))

	var sb strings.Builder
	if err := layout.Render(ctx, &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := sb.String()

	for _, want := range []string{
		`<html lang="pt-BR">`,
		"<title>" + SiteName + "</title>",
		"page-body-marker",
		`href="/projetos"`,
		`href="/atividades"`,
		`href="/equipe"`,
		`href="/contato"`,
		"INÍCIO",
		"lang-toggle",
		"site-footer",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("layout missing %q", want)
		}
	}
	if strings.Contains(got, "googletagmanager") {
		t.Error("analytics rendered without an id")
	}
}

func TestHomePageSections(t *testing.T) {
	loc := pt(t)
	got := render(t, HomePage(HomeProps{
		Loc: loc,
		Filters: []FilterChip{
			{Label: "TODOS", URL: "/", Active: true},
			{Label: "PERFORMANCE", URL: "/?categoria=PERFORMANCE"},
		},
		Projects: []ProjectCard{{Title: "Hamlet", URL: "/projetos/hamlet-2025"}},
		Team:     []MemberCard{{Name: "Ana Silva", URL: "/equipe/ana-silva"}},
	}))

	for _, want := range []string{
		`id="home"`, `id="about"`, `id="projects"`, `id="activities"`, `id="team"`, `id="contact"`,
		`data-carousel-interval="5000"`,
		"/images/2025_IIA_KV_1.png",
		"/images/2025_IIA_KV_3.png",
		"/images/2025_IIA_KV_4.png",
		"Hamlet",
		"Ana Silva",
		"data-team-strip",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("home missing %q", want)
		}
	}
}

func TestHomePageEmptyStates(t *testing.T) {
	loc := pt(t)
	got := render(t, HomePage(HomeProps{Loc: loc}))
	if !strings.Contains(got, loc.T("home.projects.empty")) {
		t.Error("missing projects empty state")
	}
	if !strings.Contains(got, loc.T("home.activities.empty")) {
		t.Error("missing activities empty state")
	}
	if !strings.Contains(got, loc.T("home.team.empty")) {
		t.Error("missing team empty state")
	}
}

func TestProjectDetailPageOptionalSections(t *testing.T) {
	loc := pt(t)

	full := render(t, ProjectDetailPage(ProjectDetailProps{
		Loc:      loc,
		Title:    "Hamlet",
		Video:    "https://example.com/embed",
		Schedule: []ScheduleEntry{{Day: "Sexta-feira", Time: "20h"}},
		Reviews:  []ReviewEntry{{Author: "Crítica", Rating: 5, Text: "Excelente."}},
	}))
	for _, want := range []string{"detail-video", "detail-schedule", "detail-reviews", "★★★★★"} {
		if !strings.Contains(full, want) {
			t.Errorf("detail missing %q", want)
		}
	}

	bare := render(t, ProjectDetailPage(ProjectDetailProps{Loc: loc, Title: "Hamlet"}))
	for _, absent := range []string{"detail-video", "detail-schedule", "detail-reviews"} {
		if strings.Contains(bare, absent) {
			t.Errorf("bare detail should not render %q", absent)
		}
	}
}

func TestActivityDetailPageSpots(t *testing.T) {
	loc := pt(t)
	got := render(t, ActivityDetailPage(ActivityDetailProps{
		Loc:        loc,
		Title:      "Oficina",
		SpotsTaken: 14,
		SpotsTotal: 20,
	}))
	if !strings.Contains(got, "14 de 20 vagas preenchidas") {
		t.Errorf("spots indicator missing: %s", got)
	}

	noCap := render(t, ActivityDetailPage(ActivityDetailProps{Loc: loc, Title: "Oficina"}))
	if strings.Contains(noCap, "spots-indicator") {
		t.Error("spots indicator rendered without capacity")
	}
}

func TestContactFormPreservesValuesAndError(t *testing.T) {
	loc := pt(t)
	got := render(t, ContactForm(ContactProps{
		Loc:     loc,
		Error:   "Preencha todos os campos obrigatórios.",
		Name:    "Maria",
		Email:   "maria@example.com",
		Subject: "Aulas",
		Message: "Olá",
	}))
	for _, want := range []string{
		`value="Maria"`,
		`value="maria@example.com"`,
		`value="Aulas"`,
		">Olá</textarea>",
		"form-error",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("form missing %q", want)
		}
	}
}

func TestNotFoundPanel(t *testing.T) {
	loc := pt(t)
	got := render(t, NotFoundPanel("Página não encontrada", "Não existe.", loc))
	if !strings.Contains(got, "Página não encontrada") || !strings.Contains(got, `href="/"`) {
		t.Errorf("not-found panel incomplete: %s", got)
	}
}
