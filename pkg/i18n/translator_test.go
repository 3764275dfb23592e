package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_T(t *testing.T) {
	tests := []struct {
		name     string
		locale   Locale
		key      string
		args     []interface{}
		expected string
	}{
		{name: "English", locale: LocaleEN, key: "inspections.title", expected: "Inspections"},
		{name: "Portuguese", locale: LocalePTBR, key: "inspections.title", expected: "Inspeções"},
		{name: "WithArgs", locale: LocaleEN, key: "chart.max", args: []interface{}{"9"}, expected: "Max: 9"},
		{name: "UnknownKeyFallsBackToKey", locale: LocaleEN, key: "missing.key", expected: "missing.key"},
		{name: "UnknownKeyInPTBR", locale: LocalePTBR, key: "missing.key", expected: "missing.key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, New(tc.locale).T(tc.key, tc.args...))
		})
	}
}

func TestNew_UnknownLocaleDefaultsToEnglish(t *testing.T) {
	translator := New("fr")
	assert.Equal(t, LocaleEN, translator.Locale())
	assert.Equal(t, "Inspections", translator.T("inspections.title"))
}

func TestLocale_DateLayouts(t *testing.T) {
	assert.Equal(t, "2006-01-02", LocaleEN.DateLayout())
	assert.Equal(t, "02/01/2006", LocalePTBR.DateLayout())
	assert.Equal(t, "2006-01-02 15:04", LocaleEN.DateTimeLayout())
	assert.Equal(t, "02/01/2006 15:04", LocalePTBR.DateTimeLayout())
}

func TestCatalogs_SameKeys(t *testing.T) {
	en := catalogs[LocaleEN]
	ptbr := catalogs[LocalePTBR]

	for key := range en {
		_, ok := ptbr[key]
		assert.True(t, ok, "key %q missing from pt-BR catalog", key)
	}
	for key := range ptbr {
		_, ok := en[key]
		assert.True(t, ok, "key %q missing from en catalog", key)
	}
}
