package middleware

import (
	"net/http"

	"github.com/proyectozoo/zoo-api/internal/i18n"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

// Locale resolves the response language and stores it in the request context.
func Locale(tr *i18n.Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := tr.Resolve(r.URL.Query().Get(LangParam), r.Header.Get("Accept-Language"))
			w.Header().Set("Content-Language", tag.String())
			next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), tag)))
		})
	}
}
