// Package auth implements signed-cookie sessions for dashboard operators.
// A session cookie carries the operator id and an HMAC-SHA256 signature;
// nothing is stored server side.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type ctxKey string

const (
	sessionCookieName = "session"
	operatorIDCtxKey  = ctxKey("operatorID")
)

// OperatorVerifier is an optional callback to check that a session still
// refers to an existing operator. Set it during bootstrap via
// SetOperatorVerifier; when nil, no extra verification is performed.
type OperatorVerifier func(ctx context.Context, id uint) bool

var verifier OperatorVerifier

// SetOperatorVerifier configures the global verifier used by RequireOperator.
func SetOperatorVerifier(v OperatorVerifier) { verifier = v }

// DenyNotifier runs before an unauthenticated HTML request is redirected
// to the login page, typically to set a flash message. Set it during
// bootstrap via SetDenyNotifier; when nil, the redirect is silent.
type DenyNotifier func(w http.ResponseWriter, r *http.Request)

var denyNotifier DenyNotifier

// SetDenyNotifier configures the hook called on denied HTML requests.
func SetDenyNotifier(fn DenyNotifier) { denyNotifier = fn }

// Secret returns SESSION_SECRET or a default dev value.
func Secret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	return "healthbuddy-dev-secret"
}

func sign(payload string) string {
	mac := hmac.New(sha256.New, []byte(Secret()))
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession sets a signed cookie with the operator id.
func CreateSession(w http.ResponseWriter, operatorID uint) {
	idStr := strconv.FormatUint(uint64(operatorID), 10)
	value := idStr + "." + sign(idStr)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
}

// ClearSession deletes the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// ParseSession validates the session cookie and returns the operator id.
func ParseSession(r *http.Request) (uint, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return 0, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return 0, false
	}
	idStr, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sig), []byte(sign(idStr))) {
		return 0, false
	}
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id64), true
}

// WithOperatorID stores the operator id in context.
func WithOperatorID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, operatorIDCtxKey, id)
}

// OperatorIDFromContext extracts the operator id.
func OperatorIDFromContext(ctx context.Context) (uint, bool) {
	v := ctx.Value(operatorIDCtxKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Middleware attaches the operator id to the request context if a valid
// session cookie is present.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := ParseSession(r); ok {
			r = r.WithContext(WithOperatorID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

func deny(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html") {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"unauthorized"}`)
		return
	}
	if denyNotifier != nil {
		denyNotifier(w, r)
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// RequireOperator redirects to the login page (HTML) or returns 401 JSON
// when the request carries no valid operator session.
func RequireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := OperatorIDFromContext(r.Context())
		if !ok {
			deny(w, r)
			return
		}
		if verifier != nil && !verifier(r.Context(), id) {
			// Session refers to a removed operator: clear and deny.
			ClearSession(w)
			deny(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
