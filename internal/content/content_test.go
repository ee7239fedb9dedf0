package content

import (
	"slices"
	"testing"
)

func TestIsEnglish(t *testing.T) {
	tests := []struct {
		lang string
		want bool
	}{
		{"en", true},
		{"EN", true},
		{"en-US", true},
		{"pt", false},
		{"pt-BR", false},
		{"", false},
		{"es", false},
	}
	for _, tt := range tests {
		if got := IsEnglish(tt.lang); got != tt.want {
			t.Errorf("IsEnglish(%q) = %v, want %v", tt.lang, got, tt.want)
		}
	}
}

func TestProjectRecordFallsBackPerField(t *testing.T) {
	p := Project{
		PT: ProjectRecord{
			Title:    "Hamlet",
			Director: "Carlos Mendes",
			Duration: "2h30",
			Cast:     []string{"Ana Silva", "João Costa"},
		},
		EN: ProjectRecord{
			Title: "Hamlet (EN)",
		},
	}

	rec := p.Record("en-US")
	if rec.Title != "Hamlet (EN)" {
		t.Errorf("Title = %q, want the English title", rec.Title)
	}
	if rec.Director != "Carlos Mendes" {
		t.Errorf("Director = %q, want the Portuguese fallback", rec.Director)
	}
	if !slices.Equal(rec.Cast, p.PT.Cast) {
		t.Errorf("Cast = %v, want the Portuguese fallback", rec.Cast)
	}

	if got := p.Record("pt-BR"); got.Title != "Hamlet" {
		t.Errorf("pt Record Title = %q, want %q", got.Title, "Hamlet")
	}
}

func TestActivityRecordFallsBackInstructor(t *testing.T) {
	a := Activity{
		PT: ActivityRecord{
			Title:      "Oficina de Teatro",
			Instructor: Instructor{Name: "Maria Santos", URL: "/equipe/maria-santos"},
		},
		EN: ActivityRecord{
			Title: "Theater Workshop",
		},
	}

	rec := a.Record("en")
	if rec.Title != "Theater Workshop" {
		t.Errorf("Title = %q, want the English title", rec.Title)
	}
	if rec.Instructor.Name != "Maria Santos" {
		t.Errorf("Instructor.Name = %q, want the Portuguese fallback", rec.Instructor.Name)
	}
}

func TestMemberRecordFallsBackSpecialties(t *testing.T) {
	m := Member{
		PT: MemberRecord{
			Name:        "Ana Silva",
			Role:        "Diretora Artística",
			Specialties: []string{"Direção", "Dramaturgia"},
		},
		EN: MemberRecord{
			Role: "Artistic Director",
		},
	}

	rec := m.Record("en-US")
	if rec.Name != "Ana Silva" {
		t.Errorf("Name = %q, want the Portuguese fallback", rec.Name)
	}
	if rec.Role != "Artistic Director" {
		t.Errorf("Role = %q, want the English role", rec.Role)
	}
	if !slices.Equal(rec.Specialties, m.PT.Specialties) {
		t.Errorf("Specialties = %v, want the Portuguese fallback", rec.Specialties)
	}
}

func TestShowTimeLocalized(t *testing.T) {
	s := ShowTime{Day: "Sexta-feira", Time: "20h", DayEN: "Friday", TimeEN: "8pm"}

	if got := s.LocalizedDay("en"); got != "Friday" {
		t.Errorf("LocalizedDay(en) = %q, want %q", got, "Friday")
	}
	if got := s.LocalizedDay("pt"); got != "Sexta-feira" {
		t.Errorf("LocalizedDay(pt) = %q, want %q", got, "Sexta-feira")
	}

	partial := ShowTime{Day: "Sábado", Time: "19h"}
	if got := partial.LocalizedDay("en"); got != "Sábado" {
		t.Errorf("LocalizedDay(en) without translation = %q, want %q", got, "Sábado")
	}
}

func TestLocalizedList(t *testing.T) {
	l := &LocalizedList{PT: []string{"um", "dois"}, EN: []string{"one", "two"}}

	if got := l.Localized("en"); !slices.Equal(got, l.EN) {
		t.Errorf("Localized(en) = %v, want %v", got, l.EN)
	}
	if got := l.Localized("pt"); !slices.Equal(got, l.PT) {
		t.Errorf("Localized(pt) = %v, want %v", got, l.PT)
	}

	var empty *LocalizedList
	if got := empty.Localized("pt"); got != nil {
		t.Errorf("nil list Localized = %v, want nil", got)
	}
}

func TestMemberProjectLocalized(t *testing.T) {
	p := MemberProject{
		PT: MemberProjectRecord{Title: "Hamlet", Role: "Direção", Status: "Em cartaz"},
		EN: MemberProjectRecord{Title: "Hamlet", Role: "Director", Status: "Running"},
	}
	if got := p.Localized("en").Role; got != "Director" {
		t.Errorf("Localized(en).Role = %q, want %q", got, "Director")
	}

	ptOnly := MemberProject{PT: MemberProjectRecord{Title: "Vozes"}}
	if got := ptOnly.Localized("en").Title; got != "Vozes" {
		t.Errorf("Localized(en).Title without translation = %q, want %q", got, "Vozes")
	}
}
