// Package content defines the site's published content entities and the
// store that retrieves them from static JSON endpoints.
//
// Entities are authored out-of-band as JSON documents, one file per item plus
// a manifest per kind. Every entity carries a full Portuguese and English
// record; Portuguese is the authoring language and the fallback for any field
// the English record leaves blank.
package content

import "strings"

// LangPT and LangEN are the two content languages.
const (
	LangPT = "pt"
	LangEN = "en"
)

// Project is a production or research project.
type Project struct {
	ID       string         `json:"id"`
	Slug     string         `json:"slug"`
	Category string         `json:"category"`
	Status   string         `json:"status"`
	Images   []string       `json:"images"`
	Video    string         `json:"video,omitempty"`
	PT       ProjectRecord  `json:"pt"`
	EN       ProjectRecord  `json:"en"`
	Schedule []ShowTime     `json:"schedule,omitempty"`
	Reviews  []Review       `json:"reviews,omitempty"`
}

// ProjectRecord is the localized portion of a Project.
type ProjectRecord struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription,omitempty"`
	Director        string   `json:"director"`
	Cast            []string `json:"cast"`
	Duration        string   `json:"duration"`
	Premiere        string   `json:"premiere"`
	Location        string   `json:"location"`
}

// ShowTime is one scheduled session of a project, localized inline.
type ShowTime struct {
	Day    string `json:"day"`
	Time   string `json:"time"`
	DayEN  string `json:"dayEn"`
	TimeEN string `json:"timeEn"`
}

// LocalizedDay returns the session day for the given language.
func (s ShowTime) LocalizedDay(lang string) string {
	if IsEnglish(lang) && s.DayEN != "" {
		return s.DayEN
	}
	return s.Day
}

// LocalizedTime returns the session time for the given language.
func (s ShowTime) LocalizedTime(lang string) string {
	if IsEnglish(lang) && s.TimeEN != "" {
		return s.TimeEN
	}
	return s.Time
}

// Review is a press or audience review of a project.
type Review struct {
	Author string     `json:"author"`
	Rating int        `json:"rating"`
	PT     ReviewText `json:"pt"`
	EN     ReviewText `json:"en"`
}

// ReviewText is the localized body of a review.
type ReviewText struct {
	Text string `json:"text"`
}

// LocalizedText returns the review body for the given language.
func (r Review) LocalizedText(lang string) string {
	if IsEnglish(lang) && r.EN.Text != "" {
		return r.EN.Text
	}
	return r.PT.Text
}

// Activity is a workshop, course or event.
type Activity struct {
	ID                  string          `json:"id"`
	Slug                string          `json:"slug"`
	Category            string          `json:"category"`
	MaxParticipants     int             `json:"maxParticipants"`
	CurrentParticipants int             `json:"currentParticipants"`
	Featured            bool            `json:"featured"`
	Images              []string        `json:"images"`
	PT                  ActivityRecord  `json:"pt"`
	EN                  ActivityRecord  `json:"en"`
	Program             []ProgramDay    `json:"program,omitempty"`
	Requirements        *LocalizedList  `json:"requirements,omitempty"`
	Benefits            *LocalizedList  `json:"benefits,omitempty"`
}

// ActivityRecord is the localized portion of an Activity.
type ActivityRecord struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	FullDescription string     `json:"fullDescription,omitempty"`
	Instructor      Instructor `json:"instructor"`
	Duration        string     `json:"duration"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	Location        string     `json:"location"`
	Price           string     `json:"price"`
}

// Instructor describes who leads an activity. URL may point at an internal
// team-member page or an external profile.
type Instructor struct {
	Name    string           `json:"name"`
	Picture string           `json:"picture"`
	Social  *InstructorLinks `json:"social,omitempty"`
	URL     string           `json:"url"`
}

// InstructorLinks holds optional social profiles for an instructor.
type InstructorLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// ProgramDay is one day of a multi-day activity program.
type ProgramDay struct {
	PT ProgramDayRecord `json:"pt"`
	EN ProgramDayRecord `json:"en"`
}

// Localized returns the day record for the given language.
func (p ProgramDay) Localized(lang string) ProgramDayRecord {
	if IsEnglish(lang) && p.EN.Day != "" {
		return p.EN
	}
	return p.PT
}

// ProgramDayRecord is a localized program day with its sessions in order.
type ProgramDayRecord struct {
	Day      string           `json:"day"`
	Sessions []ProgramSession `json:"sessions"`
}

// ProgramSession is one time slot within a program day.
type ProgramSession struct {
	Time  string `json:"time"`
	Topic string `json:"topic"`
}

// LocalizedList is an ordered list of strings kept per language.
type LocalizedList struct {
	PT []string `json:"pt"`
	EN []string `json:"en"`
}

// Localized returns the list for the given language.
func (l *LocalizedList) Localized(lang string) []string {
	if l == nil {
		return nil
	}
	if IsEnglish(lang) && len(l.EN) > 0 {
		return l.EN
	}
	return l.PT
}

// Member is a team member.
type Member struct {
	ID              string          `json:"id"`
	Slug            string          `json:"slug"`
	Department      string          `json:"department"`
	Image           string          `json:"image"`
	Email           string          `json:"email"`
	Social          MemberLinks     `json:"social"`
	PT              MemberRecord    `json:"pt"`
	EN              MemberRecord    `json:"en"`
	Education       *LocalizedList  `json:"education,omitempty"`
	Achievements    *LocalizedList  `json:"achievements,omitempty"`
	CurrentProjects []MemberProject `json:"currentProjects,omitempty"`
	Testimonials    []Testimonial   `json:"testimonials,omitempty"`
}

// MemberLinks holds a member's social profiles.
type MemberLinks struct {
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// MemberRecord is the localized portion of a Member.
type MemberRecord struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
}

// MemberProject is a project a member is currently involved in.
type MemberProject struct {
	PT MemberProjectRecord `json:"pt"`
	EN MemberProjectRecord `json:"en"`
}

// Localized returns the project record for the given language.
func (m MemberProject) Localized(lang string) MemberProjectRecord {
	if IsEnglish(lang) && m.EN.Title != "" {
		return m.EN
	}
	return m.PT
}

// MemberProjectRecord is a localized current-project entry.
type MemberProjectRecord struct {
	Title  string `json:"title"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// Testimonial is a quote about a member.
type Testimonial struct {
	Author string     `json:"author"`
	PT     ReviewText `json:"pt"`
	EN     ReviewText `json:"en"`
}

// LocalizedText returns the testimonial body for the given language.
func (t Testimonial) LocalizedText(lang string) string {
	if IsEnglish(lang) && t.EN.Text != "" {
		return t.EN.Text
	}
	return t.PT.Text
}

// IsEnglish reports whether lang selects the English record. Anything that is
// not recognizably English resolves to Portuguese, the fallback language.
func IsEnglish(lang string) bool {
	lang = strings.ToLower(strings.TrimSpace(lang))
	return lang == LangEN || strings.HasPrefix(lang, LangEN+"-")
}

// Record returns the project record for lang, filling any blank English
// field from the Portuguese record.
func (p Project) Record(lang string) ProjectRecord {
	if !IsEnglish(lang) {
		return p.PT
	}
	out := p.EN
	fallbackString(&out.Title, p.PT.Title)
	fallbackString(&out.Description, p.PT.Description)
	fallbackString(&out.FullDescription, p.PT.FullDescription)
	fallbackString(&out.Director, p.PT.Director)
	fallbackString(&out.Duration, p.PT.Duration)
	fallbackString(&out.Premiere, p.PT.Premiere)
	fallbackString(&out.Location, p.PT.Location)
	if len(out.Cast) == 0 {
		out.Cast = p.PT.Cast
	}
	return out
}

// Record returns the activity record for lang, filling any blank English
// field from the Portuguese record.
func (a Activity) Record(lang string) ActivityRecord {
	if !IsEnglish(lang) {
		return a.PT
	}
	out := a.EN
	fallbackString(&out.Title, a.PT.Title)
	fallbackString(&out.Description, a.PT.Description)
	fallbackString(&out.FullDescription, a.PT.FullDescription)
	fallbackString(&out.Duration, a.PT.Duration)
	fallbackString(&out.Date, a.PT.Date)
	fallbackString(&out.Time, a.PT.Time)
	fallbackString(&out.Location, a.PT.Location)
	fallbackString(&out.Price, a.PT.Price)
	if out.Instructor.Name == "" {
		out.Instructor = a.PT.Instructor
	}
	return out
}

// Record returns the member record for lang, filling any blank English
// field from the Portuguese record.
func (m Member) Record(lang string) MemberRecord {
	if !IsEnglish(lang) {
		return m.PT
	}
	out := m.EN
	fallbackString(&out.Name, m.PT.Name)
	fallbackString(&out.Role, m.PT.Role)
	fallbackString(&out.Bio, m.PT.Bio)
	if len(out.Specialties) == 0 {
		out.Specialties = m.PT.Specialties
	}
	return out
}

func fallbackString(target *string, fallback string) {
	if strings.TrimSpace(*target) == "" {
		*target = fallback
	}
}
