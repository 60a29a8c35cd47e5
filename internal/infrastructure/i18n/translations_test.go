package i18n

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTranslator(t *testing.T) {
	logger := zerolog.Nop()
	tr := NewTranslator("en", &logger)

	assert.Equal(t, "Event not found", tr.T("", "error.event_not_found", nil))
	assert.Equal(t, "Événement introuvable", tr.T("fr", "error.event_not_found", nil))
	assert.Equal(t, "Événement introuvable", tr.T("fr-FR,fr;q=0.9,en;q=0.8", "error.event_not_found", nil))
	assert.Equal(t, "Sorry, this event is full", tr.T("de", "error.event_full", nil))
	assert.Equal(t, "You are registered for Retro Night", tr.T("en", "registration.admitted", map[string]any{"Event": "Retro Night"}))
	assert.Equal(t, "no.such.key", tr.T("en", "no.such.key", nil))
	assert.Empty(t, tr.T("en", "", nil))
}

func TestCatalogsCoverTheSameKeys(t *testing.T) {
	logger := zerolog.Nop()
	tr := NewTranslator("en", &logger)

	for _, key := range []string{"error.phone_taken", "error.registration_closed", "happy_hour.live", "discord.registration.full"} {
		en := tr.T("en", key, nil)
		fr := tr.T("fr", key, nil)
		assert.NotEqual(t, key, en)
		assert.NotEqual(t, key, fr)
		assert.NotEqual(t, en, fr, key)
	}
}

func TestLanguages(t *testing.T) {
	logger := zerolog.Nop()
	tags := NewTranslator("en", &logger).Languages()

	var names []string
	for _, tag := range tags {
		names = append(names, tag.String())
	}
	assert.ElementsMatch(t, []string{"en", "fr"}, names)
}
