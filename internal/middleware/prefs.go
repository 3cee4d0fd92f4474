package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/healthtotech/healthbuddy/i18n"
)

type ctxKey string

const ctxLang ctxKey = "pref_lang"

// Prefs extracts the language preference (cookie > query > header) and
// stores it in context. Query-provided languages persist in a cookie for
// ~30 days.
func Prefs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := "en"
		if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
			lang = c.Value
		}
		if ql := r.URL.Query().Get("lang"); ql != "" {
			lang = ql
			http.SetCookie(w, &http.Cookie{Name: "lang", Value: lang, Path: "/", MaxAge: 86400 * 30})
		}
		if !i18n.Supported(lang) {
			lang = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		}
		ctx := context.WithValue(r.Context(), ctxLang, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LangFrom returns the language preference from context or the default.
func LangFrom(r *http.Request) string {
	if v, ok := r.Context().Value(ctxLang).(string); ok && v != "" {
		return v
	}
	return "en"
}

// Flash sets a one-shot flash cookie: "category|message" with the message
// translated for the request language. category is "error" or "success".
func Flash(w http.ResponseWriter, r *http.Request, category, code string) {
	msg := i18n.T(LangFrom(r), code)
	http.SetCookie(w, &http.Cookie{Name: "flash", Value: url.QueryEscape(category + "|" + msg), Path: "/"})
}

// PopFlash reads and clears the flash cookie, returning category and message.
func PopFlash(w http.ResponseWriter, r *http.Request) (category, message string, ok bool) {
	c, err := r.Cookie("flash")
	if err != nil || c.Value == "" {
		return "", "", false
	}
	http.SetCookie(w, &http.Cookie{Name: "flash", Value: "", Path: "/", MaxAge: -1})
	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return "", "", false
	}
	category, message = "success", raw
	if i := strings.IndexByte(raw, '|'); i >= 0 {
		category, message = raw[:i], raw[i+1:]
	}
	return category, message, true
}
