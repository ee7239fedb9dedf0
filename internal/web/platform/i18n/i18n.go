// Package i18n provides locale resolution and message printing for the web
// service.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ikavisbode/v0-iia/internal/platform/i18n/catalog"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "iia_lang"
)

var (
	defaultTag = language.MustParse(catalog.BaseLocale)

	supportedTags = []language.Tag{
		language.MustParse("pt-BR"),
		language.MustParse("en-US"),
	}

	matcher = language.NewMatcher(supportedTags)
)

func init() {
	if err := catalog.Default().Register(); err != nil {
		panic(err)
	}
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return defaultTag
}

// ParseTag parses a user-supplied language value into a supported tag. Short
// forms ("pt", "en") resolve to their regional variants.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return language.Tag{}, false
	}
	return supportedTags[idx], true
}

// MatchTags returns the best supported tag for an Accept-Language preference
// list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return defaultTag
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return defaultTag
	}
	return supportedTags[idx]
}

// ResolveTag determines the best language tag for the request. Precedence is
// query param, then cookie, then Accept-Language, then the default. The bool
// indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return MatchTags(tags), false
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Localizer prints catalog messages for a resolved language.
type Localizer struct {
	printer *message.Printer
	lang    string
}

// NewLocalizer builds a Localizer for the supplied tag.
func NewLocalizer(tag language.Tag) Localizer {
	return Localizer{printer: message.NewPrinter(tag), lang: tag.String()}
}

// Lang returns the BCP 47 tag string the localizer prints for.
func (l Localizer) Lang() string {
	return l.lang
}

// T renders the message registered under key, with optional arguments. An
// unregistered key renders as itself, which keeps a missing translation
// visible instead of blank.
func (l Localizer) T(key string, args ...any) string {
	if l.printer == nil {
		return key
	}
	return l.printer.Sprintf(key, args...)
}

// ResolveLocalizer resolves the request language, persists an explicit query
// selection as a cookie, and returns the localizer plus the tag string.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (Localizer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return NewLocalizer(tag), tag.String()
}

// LanguageOption represents a supported language option in UI surfaces.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// BuildLanguageOptions returns the language toggle entries for the current
// page, each linking to the same path with the lang param swapped.
func BuildLanguageOptions(activeLang, path, rawQuery string) []LanguageOption {
	active, ok := ParseTag(activeLang)
	if !ok {
		active = defaultTag
	}
	options := make([]LanguageOption, 0, len(supportedTags))
	for _, tag := range supportedTags {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  languageLabel(tag),
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == active,
		})
	}
	return options
}

// LanguageURL returns the given path and query with the language param
// updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

func languageLabel(tag language.Tag) string {
	switch tag.String() {
	case "pt-BR":
		return "PT"
	case "en-US":
		return "EN"
	default:
		return strings.ToUpper(tag.String())
	}
}
