// Package catalog loads the embedded UI message catalogs and registers them
// with x/text so request-scoped printers can localize chrome strings.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the canonical source locale. Portuguese is the site's
// authoring language; every other locale falls back to it.
const BaseLocale = "pt-BR"

// Bundle holds all locale message maps loaded from the embedded catalogs.
type Bundle struct {
	locales map[string]map[string]string
}

//go:embed locales/*/*.yaml
var localeFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// Load reads every catalog file from the provided filesystem. File layout is
// locales/<locale>/<namespace>.yaml; the locale and namespace declared inside
// each file must match its path.
func Load(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]string{}}
	for _, filePath := range paths {
		data, err := fs.ReadFile(catalogFS, filePath)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", filePath, err)
		}
		file, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", filePath, err)
		}
		if err := bundle.merge(filePath, file); err != nil {
			return nil, err
		}
	}

	if _, ok := bundle.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) merge(filePath string, file catalogFile) error {
	if locale := path.Base(path.Dir(filePath)); locale != file.Locale {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", filePath, file.Locale, locale)
	}
	namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	if namespace != file.Namespace {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", filePath, file.Namespace, namespace)
	}

	messages, ok := b.locales[file.Locale]
	if !ok {
		messages = map[string]string{}
		b.locales[file.Locale] = messages
	}
	for key, value := range file.Messages {
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", filePath, key, file.Locale)
		}
		messages[key] = value
	}
	return nil
}

// Register publishes every catalog message to the x/text message store so
// message.NewPrinter resolves them. Messages are registered under both the
// full locale tag and its base language so "pt" and "pt-BR" resolve alike.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No && base.String() != tag.String() {
			if baseTag, err := language.Parse(base.String()); err == nil {
				tags = append(tags, baseTag)
			}
		}
		messages := b.locales[locale]
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, registerTag := range tags {
				if err := message.SetString(registerTag, key, messages[key]); err != nil {
					return fmt.Errorf("register %q for %s: %w", key, registerTag, err)
				}
			}
		}
	}
	return nil
}

// Locales returns the sorted locale identifiers present in the bundle.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Keys returns the sorted message keys defined for a locale.
func (b *Bundle) Keys(locale string) []string {
	if b == nil {
		return nil
	}
	messages := b.locales[strings.TrimSpace(locale)]
	out := make([]string, 0, len(messages))
	for key := range messages {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Message returns one message value, falling back to the base locale when the
// requested locale does not define the key.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	locale = strings.TrimSpace(locale)
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if value, ok := b.locales[locale][key]; ok {
		return value, true
	}
	if locale != BaseLocale {
		value, ok := b.locales[BaseLocale][key]
		return value, ok
	}
	return "", false
}

func mustLoadEmbedded() *Bundle {
	bundle, err := Load(localeFS)
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

type catalogFile struct {
	Locale    string
	Namespace string
	Messages  map[string]string
}

// parseCatalogFile reads the restricted YAML subset used by catalog files:
// a quoted locale, a quoted namespace, and a flat map of quoted key/value
// message pairs.
func parseCatalogFile(data []byte) (catalogFile, error) {
	out := catalogFile{Messages: map[string]string{}}
	inMessages := false

	for _, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "locale:"):
			value, err := unquote(strings.TrimPrefix(line, "locale:"))
			if err != nil {
				return catalogFile{}, fmt.Errorf("parse locale: %w", err)
			}
			out.Locale = value
		case strings.HasPrefix(line, "namespace:"):
			value, err := unquote(strings.TrimPrefix(line, "namespace:"))
			if err != nil {
				return catalogFile{}, fmt.Errorf("parse namespace: %w", err)
			}
			out.Namespace = value
		case line == "messages:":
			inMessages = true
		default:
			if !inMessages {
				return catalogFile{}, fmt.Errorf("unexpected line %q", line)
			}
			key, value, err := parseMessageLine(line)
			if err != nil {
				return catalogFile{}, fmt.Errorf("parse message entry %q: %w", line, err)
			}
			out.Messages[key] = value
		}
	}

	switch {
	case out.Locale == "":
		return catalogFile{}, fmt.Errorf("missing locale")
	case out.Namespace == "":
		return catalogFile{}, fmt.Errorf("missing namespace")
	case len(out.Messages) == 0:
		return catalogFile{}, fmt.Errorf("missing messages")
	}
	return out, nil
}

func parseMessageLine(line string) (string, string, error) {
	keyToken, rest, err := splitQuotedToken(line)
	if err != nil {
		return "", "", err
	}
	key, err := strconv.Unquote(keyToken)
	if err != nil {
		return "", "", fmt.Errorf("unquote key: %w", err)
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, ":") {
		return "", "", fmt.Errorf("missing ':' separator")
	}
	value, err := unquote(strings.TrimPrefix(rest, ":"))
	if err != nil {
		return "", "", fmt.Errorf("unquote value: %w", err)
	}
	return key, value, nil
}

func unquote(token string) (string, error) {
	return strconv.Unquote(strings.TrimSpace(token))
}

func splitQuotedToken(line string) (string, string, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "\"") {
		return "", "", fmt.Errorf("expected quoted token")
	}
	escaped := false
	for i := 1; i < len(trimmed); i++ {
		switch {
		case escaped:
			escaped = false
		case trimmed[i] == '\\':
			escaped = true
		case trimmed[i] == '"':
			return trimmed[:i+1], trimmed[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("unterminated quoted token")
}
