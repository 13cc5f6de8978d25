package i18n

import "strings"

// DefaultLang is the fallback language for unknown or missing preferences.
const DefaultLang = "fr"

var supported = map[string]bool{"en": true, "fr": true}

// DetectLanguage picks a supported language from an Accept-Language header
// value, falling back to the default.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if i := strings.IndexAny(tag, "-;"); i >= 0 {
			tag = tag[:i]
		}
		if supported[tag] {
			return tag
		}
	}
	return DefaultLang
}

// T translates a message code. Unknown languages fall back to the default
// language; unknown codes fall back to the code itself.
func T(lang, code string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[DefaultLang]
	}
	if msg, ok := table[code]; ok {
		return msg
	}
	if msg, ok := translations[DefaultLang][code]; ok {
		return msg
	}
	return code
}

var translations = map[string]map[string]string{
	"en": {
		"required":         "Required",
		"invalid_email":    "Invalid email address",
		"must_be_positive": "Must be greater than zero",
		"below_minimum":    "Below the minimum",
		"invalid_date":     "Invalid date",
		"duplicate_email":  "A record with this email already exists",
		"not_found":        "Not found",
		"trip_assigned":    "A trip has been assigned to you",
		"trip_updated":     "One of your trips has changed",
		"trip_cancelled":   "One of your trips was cancelled",
		"pdf_invoice":      "INVOICE",
		"pdf_quote":        "QUOTE",
		"pdf_proforma":     "PROFORMA",
		"pdf_credit_note":  "CREDIT NOTE",
		"pdf_description":  "Description",
		"pdf_quantity":     "Qty",
		"pdf_unit_price":   "Unit price",
		"pdf_vat":          "VAT",
		"pdf_total_excl":   "Total excl. tax",
		"pdf_total_incl":   "Total incl. tax",
		"pdf_schedule":     "DAY SCHEDULE",
		"pdf_no_trips":     "No trips scheduled",
	},
	"fr": {
		"required":         "Requis",
		"invalid_email":    "Adresse e-mail invalide",
		"must_be_positive": "Doit être supérieur à zéro",
		"below_minimum":    "Inférieur au minimum",
		"invalid_date":     "Date invalide",
		"duplicate_email":  "Un enregistrement avec cet e-mail existe déjà",
		"not_found":        "Introuvable",
		"trip_assigned":    "Une course vous a été attribuée",
		"trip_updated":     "Une de vos courses a été modifiée",
		"trip_cancelled":   "Une de vos courses a été annulée",
		"pdf_invoice":      "FACTURE",
		"pdf_quote":        "DEVIS",
		"pdf_proforma":     "PROFORMA",
		"pdf_credit_note":  "AVOIR",
		"pdf_description":  "Désignation",
		"pdf_quantity":     "Qté",
		"pdf_unit_price":   "Prix unitaire",
		"pdf_vat":          "TVA",
		"pdf_total_excl":   "Total HT",
		"pdf_total_incl":   "Total TTC",
		"pdf_schedule":     "PLANNING DU JOUR",
		"pdf_no_trips":     "Aucune course planifiée",
	},
}
