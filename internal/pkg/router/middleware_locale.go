package router

import (
	"net/http"

	"github.com/shandysiswandi/userdir/internal/pkg/i18n"
)

// HeaderAcceptLanguage selects the locale for localized response text.
const HeaderAcceptLanguage = "Accept-Language"

func middlewareLocale(catalog *i18n.Catalog) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := catalog.MatchLocale(r.Header.Get(HeaderAcceptLanguage))
			next.ServeHTTP(w, r.WithContext(i18n.SetLocale(r.Context(), locale)))
		})
	}
}
