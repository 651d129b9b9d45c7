package i18n

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var rePlaceholder = regexp.MustCompile(`\{(\d+)\}`)

// Catalog resolves message ids to localized text. Immutable after
// construction, safe for concurrent use.
type Catalog struct {
	defaultLocale string
	locales       []string
	sets          map[string]map[string]string
	matcher       language.Matcher
}

// New builds a Catalog from per-locale template sets. sets maps a locale tag
// to a flat message id -> template map. The default locale must have a set;
// it is the fallback for every resolution.
func New(defaultLocale string, sets map[string]map[string]string) (*Catalog, error) {
	if _, ok := sets[defaultLocale]; !ok {
		return nil, fmt.Errorf("i18n: no template set for default locale %q", defaultLocale)
	}

	// The default locale goes first so the matcher falls back to it when
	// nothing in Accept-Language is supported.
	locales := []string{defaultLocale}
	for loc := range sets {
		if loc != defaultLocale {
			locales = append(locales, loc)
		}
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, loc := range locales {
		tag, err := language.Parse(loc)
		if err != nil {
			return nil, fmt.Errorf("i18n: invalid locale tag %q: %w", loc, err)
		}
		tags = append(tags, tag)
	}

	return &Catalog{
		defaultLocale: defaultLocale,
		locales:       locales,
		sets:          sets,
		matcher:       language.NewMatcher(tags),
	}, nil
}

// Load reads one <locale>.yaml template file per supported locale from dir
// and builds a Catalog.
func Load(dir, defaultLocale string, locales []string) (*Catalog, error) {
	sets := make(map[string]map[string]string, len(locales))

	for _, loc := range locales {
		loc = strings.TrimSpace(loc)
		if loc == "" {
			continue
		}

		file := path.Join(dir, loc+".yaml")
		data, err := os.ReadFile(file) // #nosec G304 -- path is from trusted config file.
		if err != nil {
			return nil, fmt.Errorf("i18n: read template set %s: %w", file, err)
		}

		set := make(map[string]string)
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("i18n: parse template set %s: %w", file, err)
		}

		sets[loc] = set
	}

	return New(defaultLocale, sets)
}

// DefaultLocale returns the configured fallback locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// MatchLocale resolves an Accept-Language header value to a supported locale
// tag. Absent or unparseable values fall back to the default locale without
// an error.
func (c *Catalog) MatchLocale(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return c.defaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultLocale
	}

	_, idx, _ := c.matcher.Match(tags...)
	return c.locales[idx]
}

// Resolve looks up id in the given locale's template set, falling back to the
// default locale, and substitutes positional args. When no template exists in
// any locale it reports the miss and returns the raw id with ok=false so the
// caller can apply its own fallback text.
func (c *Catalog) Resolve(locale, id string, args ...string) (string, bool) {
	tpl, found := c.lookup(locale, id)
	if !found {
		slog.Warn("message catalog miss", "message_id", id, "locale", locale)
		return id, false
	}

	return c.substitute(id, tpl, args), true
}

// Log resolves id from the operator-facing log namespace against the default
// locale only. On a miss the raw id is returned; log text is best-effort.
func (c *Catalog) Log(id string, args ...string) string {
	tpl, found := c.sets[c.defaultLocale][id]
	if !found {
		slog.Warn("message catalog miss", "message_id", id, "locale", c.defaultLocale)
		return id
	}

	return c.substitute(id, tpl, args)
}

func (c *Catalog) lookup(locale, id string) (string, bool) {
	if set, ok := c.sets[locale]; ok {
		if tpl, ok := set[id]; ok {
			return tpl, true
		}
	}

	tpl, ok := c.sets[c.defaultLocale][id]
	return tpl, ok
}

// substitute replaces {n} placeholders with the corresponding args entry. A
// placeholder without a matching arg is a configuration defect: it stays
// literal in the output and is reported, never silently blanked.
func (c *Catalog) substitute(id, tpl string, args []string) string {
	if !strings.Contains(tpl, "{") {
		return tpl
	}

	return rePlaceholder.ReplaceAllStringFunc(tpl, func(ph string) string {
		n, err := strconv.Atoi(ph[1 : len(ph)-1])
		if err != nil || n >= len(args) {
			slog.Warn("message argument missing", "message_id", id, "placeholder", ph, "args", len(args))
			return ph
		}
		return args[n]
	})
}
