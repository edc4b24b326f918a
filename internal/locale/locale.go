// Package locale provides translated strings for the presentation layer.
//
// Translations are embedded JSON files mapping string keys to templates
// with {name} placeholders. Lookup falls back to the key itself so a
// missing translation never breaks output. The core packages are not
// localized; only user-facing presentation strings live here.
package locale

import (
	"embed"
	"encoding/json"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is the fallback language code.
const DefaultLanguage = "en"

// langNameKey is the reserved key holding a language's native display name.
const langNameKey = "_lang_name_"

// Manager loads and serves translated strings for one language.
type Manager struct {
	lang         string
	translations map[string]string
	available    map[string]string // code -> native display name
}

// New creates a Manager for the preferred language code. An empty code
// triggers system detection from the LC_ALL/LANG environment. Unknown or
// unavailable languages fall back to English.
func New(preferred string) *Manager {
	m := &Manager{available: availableLanguages()}

	lang := preferred
	if lang == "" {
		lang = m.detectSystemLanguage()
	}
	m.setLanguage(lang)
	return m
}

// Language returns the language code currently in use.
func (m *Manager) Language() string {
	return m.lang
}

// Available returns the available language codes, sorted.
func (m *Manager) Available() []string {
	codes := make([]string, 0, len(m.available))
	for code := range m.available {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// DisplayName returns the native display name of a language code, or the
// code itself when unknown.
func (m *Manager) DisplayName(code string) string {
	if name, ok := m.available[code]; ok {
		return name
	}
	return code
}

// T returns the translated template for key with {name} placeholders
// substituted from args. A missing key returns the key itself; a
// placeholder absent from args is left in place.
func (m *Manager) T(key string, args ...Arg) string {
	tmpl, ok := m.translations[key]
	if !ok {
		tmpl = key
	}
	if len(args) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(args)*2)
	for _, arg := range args {
		pairs = append(pairs, "{"+arg.Name+"}", arg.Value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Arg is a named substitution for a {name} placeholder.
type Arg struct {
	Name  string
	Value string
}

// String builds a string Arg.
func String(name, value string) Arg {
	return Arg{Name: name, Value: value}
}

// setLanguage loads translations for code, falling back to the default
// language and finally to an empty table.
func (m *Manager) setLanguage(code string) {
	code = normalizeCode(code)
	if _, ok := m.available[code]; !ok {
		code = DefaultLanguage
	}
	m.lang = code

	translations, err := loadTranslations(code)
	if err != nil && code != DefaultLanguage {
		m.lang = DefaultLanguage
		translations, err = loadTranslations(DefaultLanguage)
	}
	if err != nil {
		translations = map[string]string{}
	}
	m.translations = translations
}

// detectSystemLanguage matches the LC_ALL/LANG environment against the
// available languages.
func (m *Manager) detectSystemLanguage() string {
	var tags []language.Tag
	codes := m.Available()
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return DefaultLanguage
	}
	matcher := language.NewMatcher(tags)

	for _, env := range []string{os.Getenv("LC_ALL"), os.Getenv("LANG")} {
		if env == "" {
			continue
		}
		// "en_US.UTF-8" -> "en-US"
		if idx := strings.IndexByte(env, '.'); idx >= 0 {
			env = env[:idx]
		}
		env = strings.ReplaceAll(env, "_", "-")
		desired, err := language.Parse(env)
		if err != nil {
			continue
		}
		_, idx, conf := matcher.Match(desired)
		if conf > language.No {
			return codes[idx]
		}
	}
	return DefaultLanguage
}

// normalizeCode lowercases a language code and strips any region suffix.
func normalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, sep := range []string{"_", "-"} {
		if idx := strings.Index(code, sep); idx >= 0 {
			code = code[:idx]
		}
	}
	return code
}

// availableLanguages scans the embedded locale files for language codes
// and their native display names.
func availableLanguages() map[string]string {
	langs := make(map[string]string)
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		langs[DefaultLanguage] = "English"
		return langs
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		code := strings.TrimSuffix(name, ".json")
		translations, err := loadTranslations(code)
		if err != nil {
			continue
		}
		display := translations[langNameKey]
		if display == "" {
			display = code
		}
		langs[code] = display
	}
	if len(langs) == 0 {
		langs[DefaultLanguage] = "English"
	}
	return langs
}

// loadTranslations parses one embedded locale file.
func loadTranslations(code string) (map[string]string, error) {
	data, err := localeFS.ReadFile("locales/" + code + ".json")
	if err != nil {
		return nil, err
	}
	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return nil, err
	}
	return translations, nil
}
