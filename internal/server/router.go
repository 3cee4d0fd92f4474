// Package server assembles the HTTP handler tree.
package server

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/healthtotech/healthbuddy/auth"
	"github.com/healthtotech/healthbuddy/httpx"
	"github.com/healthtotech/healthbuddy/internal/db"
	"github.com/healthtotech/healthbuddy/internal/handlers"
	"github.com/healthtotech/healthbuddy/internal/middleware"
	"github.com/healthtotech/healthbuddy/internal/services"
)

// New constructs the root handler with all routes and middleware applied.
// email may be nil when no sender is configured.
func New(gdb *gorm.DB, email *services.EmailReport) http.Handler {
	mux := http.NewServeMux()

	// Sessions stay valid only while their operator row exists.
	auth.SetOperatorVerifier(func(_ context.Context, id uint) bool {
		return db.OperatorExists(gdb, id)
	})
	// Denied HTML requests land on the login page with a localized notice.
	auth.SetDenyNotifier(func(w http.ResponseWriter, r *http.Request) {
		middleware.Flash(w, r, "error", "login_required")
	})

	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := gdb.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	//revive:enable:unused-parameter

	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	assessments := services.NewAssessmentService(gdb)
	reports := services.NewReportService(gdb)

	handlers.NewAssessmentHandler(assessments, email).Register(mux)

	admin := handlers.NewAdminHandler(gdb, reports)
	admin.Register(mux)
	admin.RegisterProtected(mux)

	return middleware.Prefs(withRecover(mux))
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
