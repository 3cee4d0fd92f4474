// Package handlers wires HTTP requests to the services. Every handler
// serves HTML by default and JSON when the client asks for it.
package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/healthtotech/healthbuddy/httpx"
	"github.com/healthtotech/healthbuddy/i18n"
	"github.com/healthtotech/healthbuddy/internal/health"
	"github.com/healthtotech/healthbuddy/internal/metrics"
	"github.com/healthtotech/healthbuddy/internal/middleware"
	"github.com/healthtotech/healthbuddy/internal/services"
	"github.com/healthtotech/healthbuddy/view"
)

// renderTemplate uses view.Render and degrades to a plain 500 on template
// failure.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if err := view.Render(w, r, name+".html", data); err != nil {
		log.Printf("render %s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("template error"))
	}
}

// flashData folds a pending flash message into the template data.
func flashData(w http.ResponseWriter, r *http.Request, data map[string]any) map[string]any {
	if data == nil {
		data = map[string]any{}
	}
	if cat, msg, ok := middleware.PopFlash(w, r); ok {
		data["FlashCategory"] = cat
		data["FlashMessage"] = msg
	}
	return data
}

type AssessmentHandler struct {
	Assessments *services.AssessmentService
	Email       *services.EmailReport
}

func NewAssessmentHandler(a *services.AssessmentService, e *services.EmailReport) *AssessmentHandler {
	return &AssessmentHandler{Assessments: a, Email: e}
}

func (h *AssessmentHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", h.index)
}

func (h *AssessmentHandler) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		renderTemplate(w, r, "index", flashData(w, r, nil))
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET,POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	}
}

// fieldErrorMessage localizes a validation failure. The generic code needs
// the field label spliced in; labels carry a trailing colon on the form.
func fieldErrorMessage(lang, field, code string) string {
	if code != "error_invalid_input" {
		return i18n.T(lang, code)
	}
	label := strings.TrimSuffix(i18n.T(lang, field+"_label"), ":")
	return i18n.Tf(lang, code, map[string]string{"field": label})
}

func (h *AssessmentHandler) submit(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFrom(r)
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form")
		return
	}
	p, ferr := health.ParseProfile(r.PostForm)
	if ferr != nil {
		metrics.Default().ValidationErrors.WithLabelValues(ferr.Field).Inc()
		msg := fieldErrorMessage(lang, ferr.Field, ferr.Code)
		if httpx.WantsJSON(r) {
			httpx.JSON(w, http.StatusBadRequest, map[string]string{"error": msg, "field": ferr.Field})
			return
		}
		renderTemplate(w, r, "index", map[string]any{"Error": msg, "Form": r.PostForm})
		return
	}

	res, err := h.Assessments.Submit(p, lang)
	if err != nil {
		log.Printf("assessment submit: %v", err)
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusInternalServerError, i18n.T(lang, "error_save"))
			return
		}
		renderTemplate(w, r, "index", map[string]any{"Error": i18n.T(lang, "error_save"), "Form": r.PostForm})
		return
	}
	metrics.Default().AssessmentsTotal.Inc()

	emailed := false
	if res.Record.Email != "" && h.Email != nil {
		// Delivery failures must not fail the submission.
		if err := h.Email.Send(context.WithoutCancel(r.Context()), res, lang); err != nil {
			log.Printf("email report: %v", err)
		} else {
			emailed = true
			metrics.Default().ReportsEmailed.Inc()
		}
	}

	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{
			"bmi":          res.BMI,
			"water_intake": res.WaterIntake,
			"health_tips":  res.Tips,
			"emailed":      emailed,
		})
		return
	}
	data := map[string]any{"Result": res, "Emailed": emailed}
	renderTemplate(w, r, "index", flashData(w, r, data))
}
