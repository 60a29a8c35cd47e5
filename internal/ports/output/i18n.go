package output

// T looks up user-facing messages by key for a locale.
type T interface {
	// T renders key for locale, filling placeholders from data (may be nil).
	// Unknown keys fall back to the default locale, then to the key itself.
	T(locale, key string, data map[string]any) string
}
