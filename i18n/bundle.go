package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var locales embed.FS

var (
	ErrInvalidTranslations = errors.New("invalid translations")
	ErrLanguageNotFound    = errors.New("language not found")
)

// Bundle holds the message templates of every supported language. Templates
// are fmt-style and addressed by key; English is the reference language every
// other language must match key for key.
type Bundle struct {
	mu        sync.RWMutex
	lang      language.Tag
	templates map[language.Tag]map[string]string
	catalog   *catalog.Builder
	printers  map[language.Tag]*message.Printer
	matcher   language.Matcher
}

var defaultBundle = mustLoad(locales, "locales")

// Default returns the process-wide bundle loaded from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

func newBundle() *Bundle {
	return &Bundle{
		lang:      language.English,
		templates: make(map[language.Tag]map[string]string),
		catalog:   catalog.NewBuilder(),
		printers:  make(map[language.Tag]*message.Printer),
	}
}

func mustLoad(fsys fs.FS, dir string) *Bundle {
	b, err := load(fsys, dir)
	if err != nil {
		panic("i18n: " + err.Error())
	}

	return b
}

// load reads one <tag>.json file per language from dir, English first
func load(fsys fs.FS, dir string) (*Bundle, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	files := make(map[language.Tag]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("locale file %s: %w", entry.Name(), err)
		}
		files[tag] = path.Join(dir, entry.Name())
	}

	b := newBundle()
	english, ok := files[language.English]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLanguageNotFound, language.English)
	}
	if err := b.addFile(fsys, language.English, english); err != nil {
		return nil, err
	}
	for tag, file := range files {
		if tag == language.English {
			continue
		}
		if err := b.addFile(fsys, tag, file); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (b *Bundle) addFile(fsys fs.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return err
	}
	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	return b.AddLanguage(lang, templates)
}

// T renders key in the current language
func (b *Bundle) T(key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, ok := b.printers[b.lang]; ok {
		return p.Sprintf(key, args...)
	}

	return key
}

// AddLanguage registers the templates of lang, merging into what is already
// there. A language seen for the first time must carry exactly the English keys.
func (b *Bundle) AddLanguage(lang language.Tag, templates map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing, known := b.templates[lang]
	if !known && lang != language.English {
		if err := b.sameKeys(templates); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, err)
		}
	}

	merged := make(map[string]string, len(existing)+len(templates))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range templates {
		if err := b.catalog.SetString(lang, k, v); err != nil {
			return fmt.Errorf("%w: %s: %q: %v", ErrInvalidTranslations, lang, k, err)
		}
		merged[k] = v
	}

	b.templates[lang] = merged
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.matcher = language.NewMatcher(b.tags())

	return nil
}

// Match returns the supported language closest to the requested ones, English
// when none is close enough
func (b *Bundle) Match(requested ...language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.matcher == nil {
		return language.English
	}
	_, i, confidence := b.matcher.Match(requested...)
	if confidence == language.No {
		return language.English
	}

	return b.tags()[i]
}

// SetDefaultLanguage switches the language T renders in. Unsupported languages
// are rejected.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.templates[lang]; !ok {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.lang = lang

	return nil
}

// tags lists the supported languages, English first and the others by tag
func (b *Bundle) tags() []language.Tag {
	var others []language.Tag
	for lang := range b.templates {
		if lang != language.English {
			others = append(others, lang)
		}
	}
	sort.Slice(others, func(i, j int) bool {
		return others[i].String() < others[j].String()
	})

	return append([]language.Tag{language.English}, others...)
}

func (b *Bundle) sameKeys(templates map[string]string) error {
	english := b.templates[language.English]

	var problems []error
	for key := range english {
		if _, ok := templates[key]; !ok {
			problems = append(problems, fmt.Errorf("missing key %q", key))
		}
	}
	for key := range templates {
		if _, ok := english[key]; !ok {
			problems = append(problems, fmt.Errorf("extra key %q", key))
		}
	}

	return errors.Join(problems...)
}
