package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/httpx"
	"github.com/limovia/fleetcrm/internal/i18n"
)

// decodeBody decodes a JSON request body into dst, answering 400 on
// failure. Returns false when the response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid JSON", nil)
		return false
	}
	return true
}

// writeStoreError maps data-layer failures onto HTTP statuses. Anything
// that is not a missing document surfaces the store error text verbatim.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, db.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not found", nil)
		return
	}
	httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
}

// requestLang resolves the response language from the Accept-Language
// header.
func requestLang(r *http.Request) string {
	return i18n.DetectLanguage(r.Header.Get("Accept-Language"))
}

// queryInt reads an integer query parameter with a default.
func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// translate maps violation codes to localized messages for the response
// details block.
func translate(lang string, violations map[string]string) map[string]string {
	out := make(map[string]string, len(violations))
	for field, code := range violations {
		out[field] = i18n.T(lang, code)
	}
	return out
}
