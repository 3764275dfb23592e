package i18n

import "fmt"

// Locale selects a label catalog and date layout. It is always passed
// explicitly; nothing reads the host environment.
type Locale string

const (
	LocaleEN   Locale = "en"
	LocalePTBR Locale = "pt-BR"
)

// DateLayout returns the short date layout for the locale.
func (l Locale) DateLayout() string {
	if l == LocalePTBR {
		return "02/01/2006"
	}
	return "2006-01-02"
}

// DateTimeLayout returns the date+time layout for the locale.
func (l Locale) DateTimeLayout() string {
	if l == LocalePTBR {
		return "02/01/2006 15:04"
	}
	return "2006-01-02 15:04"
}

// Translator resolves label keys for one locale. Unknown keys fall back to
// the English catalog and finally to the key itself, so a missing entry
// degrades to a visible marker instead of an empty label.
type Translator struct {
	locale Locale
}

// New returns a Translator for the given locale. Unknown locales use English.
func New(locale Locale) *Translator {
	if _, ok := catalogs[locale]; !ok {
		locale = LocaleEN
	}
	return &Translator{locale: locale}
}

// Locale returns the translator's locale.
func (t *Translator) Locale() Locale { return t.locale }

// T resolves a label key, applying Sprintf args when provided.
func (t *Translator) T(key string, args ...interface{}) string {
	msg, ok := catalogs[t.locale][key]
	if !ok {
		msg, ok = catalogs[LocaleEN][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
