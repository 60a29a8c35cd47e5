package i18n

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"clubhouse/internal/ports/output"
)

//go:embed active.*.toml
var catalogs embed.FS

var _ output.T = (*Translator)(nil)

// Translator serves messages from the embedded catalogs. Localizers are cached per
// locale string, so repeated Accept-Language headers reuse one matcher.
type Translator struct {
	bundle   *i18n.Bundle
	fallback string
	cache    sync.Map // locale -> *i18n.Localizer
	log      *zerolog.Logger
}

// NewTranslator loads every active.*.toml catalog. defaultLocale (e.g. "en") is the
// last resort for keys missing in the requested language.
func NewTranslator(defaultLocale string, logger *zerolog.Logger) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		logger.Warn().Str("locale", defaultLocale).Msg("i18n: unknown default locale, using en")
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(catalogs, "active.*.toml")
	for _, name := range files {
		if _, err := bundle.LoadMessageFileFS(catalogs, name); err != nil {
			logger.Error().Err(err).Str("file", name).Msg("i18n: load catalog failed")
		}
	}
	logger.Debug().Int("catalogs", len(files)).Str("default", tag.String()).Msg("i18n ready")

	return &Translator{bundle: bundle, fallback: tag.String(), log: logger}
}

// Languages lists the tags that have a catalog.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// T renders key for locale, which may be a bare tag ("fr") or a whole
// Accept-Language header ("fr-FR,fr;q=0.9,en;q=0.8"). Unknown keys render as the key.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Debug().Err(err).Str("key", key).Str("locale", locale).Msg("i18n: missing message")
		return key
	}
	return msg
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	if l, ok := t.cache.Load(locale); ok {
		return l.(*i18n.Localizer)
	}
	l := i18n.NewLocalizer(t.bundle, locale, t.fallback)
	actual, _ := t.cache.LoadOrStore(locale, l)
	return actual.(*i18n.Localizer)
}
