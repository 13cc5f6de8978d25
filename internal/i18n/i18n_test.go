package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"en-US,en;q=0.9,fr;q=0.8", "en"},
		{"fr-FR,fr;q=0.9", "fr"},
		{"de-DE,de;q=0.9", "fr"},
		{"de,en;q=0.5", "en"},
		{"", "fr"},
		{"EN", "en"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLanguage(tt.header), "header %q", tt.header)
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "INVOICE", T("en", "pdf_invoice"))
	assert.Equal(t, "FACTURE", T("fr", "pdf_invoice"))

	// unknown language falls back to the default
	assert.Equal(t, "FACTURE", T("es", "pdf_invoice"))

	// unknown code falls back to the code itself
	assert.Equal(t, "no_such_code", T("en", "no_such_code"))
}

func TestT_EveryEnglishCodeHasFrench(t *testing.T) {
	for code := range translations["en"] {
		_, ok := translations["fr"][code]
		assert.True(t, ok, "missing fr translation for %s", code)
	}
}
