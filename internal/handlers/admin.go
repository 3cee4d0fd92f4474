package handlers

import (
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/healthtotech/healthbuddy/auth"
	"github.com/healthtotech/healthbuddy/httpx"
	"github.com/healthtotech/healthbuddy/internal/db"
	"github.com/healthtotech/healthbuddy/internal/metrics"
	"github.com/healthtotech/healthbuddy/internal/middleware"
	"github.com/healthtotech/healthbuddy/internal/services"
)

type AdminHandler struct {
	DB      *gorm.DB
	Reports *services.ReportService
}

func NewAdminHandler(gdb *gorm.DB, reports *services.ReportService) *AdminHandler {
	return &AdminHandler{DB: gdb, Reports: reports}
}

// Register wires the public login routes; the protected ones are mounted
// by the router behind the session middleware.
func (h *AdminHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/admin/login", h.login)
	mux.HandleFunc("/admin/logout", h.logout)
}

// RegisterProtected wires the routes that require an operator session.
func (h *AdminHandler) RegisterProtected(mux *http.ServeMux) {
	mux.Handle("/admin/dashboard", auth.Middleware(auth.RequireOperator(http.HandlerFunc(h.dashboard))))
	mux.Handle("/admin/export.csv", auth.Middleware(auth.RequireOperator(http.HandlerFunc(h.exportCSV))))
	mux.Handle("/admin/export.xlsx", auth.Middleware(auth.RequireOperator(http.HandlerFunc(h.exportXLSX))))
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		renderTemplate(w, r, "login", flashData(w, r, nil))
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_form")
			return
		}
		username := strings.TrimSpace(r.FormValue("username"))
		password := r.FormValue("password")
		op, ok := db.VerifyCredential(h.DB, username, password)
		if !ok {
			if httpx.WantsJSON(r) {
				httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials")
				return
			}
			middleware.Flash(w, r, "error", "invalid_credentials")
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		auth.CreateSession(w, op.ID)
		if httpx.WantsJSON(r) {
			httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		middleware.Flash(w, r, "success", "login_success")
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	}
}

func (h *AdminHandler) logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	middleware.Flash(w, r, "success", "logout_success")
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// filterFrom reads the dashboard filters. The filter form posts them; the
// export links pass them through the query string.
func filterFrom(r *http.Request) services.Filter {
	get := r.URL.Query().Get
	if r.Method == http.MethodPost {
		get = r.PostFormValue
	}
	return services.Filter{
		Date:     strings.TrimSpace(get("date_filter")),
		Gender:   strings.TrimSpace(get("gender_filter")),
		Activity: strings.TrimSpace(get("activity_filter")),
	}
}

func (h *AdminHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed")
		return
	}
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_form")
			return
		}
	}
	metrics.Default().DashboardRequests.Inc()

	f := filterFrom(r)
	recs, err := h.Reports.Records(f)
	if err != nil {
		log.Printf("dashboard records: %v", err)
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusInternalServerError, "error_generic")
			return
		}
		middleware.Flash(w, r, "error", "error_generic")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	stats := h.Reports.Stats(recs)

	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"records": recs, "stats": stats})
		return
	}
	renderTemplate(w, r, "dashboard", flashData(w, r, map[string]any{
		"Records": recs,
		"Stats":   stats,
		"Filter":  f,
	}))
}

func (h *AdminHandler) exportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="healthbuddy_records.csv"`)
	if err := h.Reports.WriteCSV(w, filterFrom(r)); err != nil {
		log.Printf("export csv: %v", err)
		return
	}
	metrics.Default().ExportsTotal.WithLabelValues("csv").Inc()
}

func (h *AdminHandler) exportXLSX(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="healthbuddy_records.xlsx"`)
	if err := h.Reports.WriteXLSX(w, filterFrom(r)); err != nil {
		log.Printf("export xlsx: %v", err)
		return
	}
	metrics.Default().ExportsTotal.WithLabelValues("xlsx").Inc()
}
