package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"wagecalc/config"
	"wagecalc/logging"
	"wagecalc/middleware"
	"wagecalc/models"
)

type WageHandler struct {
	config    *config.Config
	templates map[string]*template.Template
	sessions  *middleware.SessionManager
	logger    *slog.Logger
}

func NewWageHandler(cfg *config.Config, templates map[string]*template.Template, sessions *middleware.SessionManager, logger *slog.Logger) *WageHandler {
	return &WageHandler{
		config:    cfg,
		templates: templates,
		sessions:  sessions,
		logger:    logging.WithComponent(logger, logging.ComponentWage),
	}
}

type CalculatorPage struct {
	Input         models.WageInput
	Derivation    models.WageDerivation
	TotalWage     string
	Rates         []float64
	Report        *models.Report
	Details       models.ProjectDetails
	HoursChart    models.ChartData
	OvertimeChart models.ChartData
	PieGradient   template.CSS
	MaxNameLength int
	MaxHours      float64
	Error         string
}

type WageResponse struct {
	Input             models.WageInput      `json:"input"`
	Derivation        models.WageDerivation `json:"derivation"`
	TotalWage         string                `json:"total_wage"`
	HoursComparison   models.ChartData      `json:"hours_comparison"`
	OvertimeBreakdown models.ChartData      `json:"overtime_breakdown"`
	Report            *models.Report        `json:"report"`
	ProjectDetails    models.ProjectDetails `json:"project_details"`
}

type RatesResponse struct {
	Rates   []float64 `json:"rates"`
	Default float64   `json:"default"`
}

func (h *WageHandler) CalculatorPage(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "Session unavailable", http.StatusInternalServerError)
		return
	}

	in := session.Calculator.Input()
	d := session.Calculator.Derivation()
	overtime := models.OvertimeBreakdown(in, d)

	data := CalculatorPage{
		Input:         in,
		Derivation:    d,
		TotalWage:     models.FormatMoney(d.TotalWage),
		Rates:         models.AllowedRates,
		Details:       models.BuildProjectDetails(in),
		HoursChart:    models.HoursComparison(in),
		OvertimeChart: overtime,
		PieGradient:   pieGradient(overtime),
		MaxNameLength: models.MaxNameLength,
		MaxHours:      models.MaxHours,
		Error:         r.URL.Query().Get("error"),
	}
	if report, ok := models.BuildReport(in, d); ok {
		data.Report = &report
	}

	if err := h.templates["calculator"].ExecuteTemplate(w, "base", data); err != nil {
		h.logger.ErrorContext(r.Context(), "render calculator page",
			logging.FieldRequestID, middleware.GetRequestID(r.Context()),
			logging.FieldError, err)
	}
}

// UpdateWage applies the submitted form to the session in field order and
// redirects back to the page. Hours are coerced and clamped silently; an
// out-of-set rate or approval value is dropped and reported.
func (h *WageHandler) UpdateWage(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, "Session unavailable", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	calc := session.Calculator
	calc.Subscribe(func(in models.WageInput, d models.WageDerivation) {
		h.logger.DebugContext(r.Context(), "wage recomputed",
			logging.FieldSessionID, session.ID,
			"overtime_hours", d.OvertimeHours,
			"total_wage", d.TotalWage)
	})
	var problems []string

	if _, ok := r.Form["name"]; ok {
		calc.SetEmployeeName(strings.TrimSpace(r.FormValue("name")))
	}
	if _, ok := r.Form["project_name"]; ok {
		calc.SetProjectName(strings.TrimSpace(r.FormValue("project_name")))
	}
	if _, ok := r.Form["hours_logged"]; ok {
		calc.SetHoursLoggedText(r.FormValue("hours_logged"))
	}
	if _, ok := r.Form["hours_worked"]; ok {
		calc.SetHoursWorkedText(r.FormValue("hours_worked"))
	}
	if rate := r.FormValue("rate"); rate != "" {
		if err := calc.SetHourlyRateText(rate); err != nil {
			problems = append(problems, fmt.Sprintf("rate %q rejected", rate))
			h.logger.WarnContext(r.Context(), "rejected hourly rate", "rate", rate, logging.FieldError, err)
		}
	}
	if approved := r.FormValue("approved"); approved != "" {
		if err := calc.SetApprovalText(approved); err != nil {
			problems = append(problems, fmt.Sprintf("approval %q rejected", approved))
			h.logger.WarnContext(r.Context(), "rejected approval", "approved", approved, logging.FieldError, err)
		}
	}

	if err := h.sessions.Save(w, session); err != nil {
		h.logger.ErrorContext(r.Context(), "save session", logging.FieldSessionID, session.ID, logging.FieldError, err)
		http.Redirect(w, r, "/?error=Failed+to+save+session", http.StatusSeeOther)
		return
	}

	if len(problems) > 0 {
		http.Redirect(w, r, "/?error="+url.QueryEscape(strings.Join(problems, "; ")), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *WageHandler) ResetWage(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *WageHandler) WageJSON(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.GetSessionFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	in := session.Calculator.Input()
	d := session.Calculator.Derivation()
	resp := WageResponse{
		Input:             in,
		Derivation:        d,
		TotalWage:         models.FormatMoney(d.TotalWage),
		HoursComparison:   models.HoursComparison(in),
		OvertimeBreakdown: models.OvertimeBreakdown(in, d),
		ProjectDetails:    models.BuildProjectDetails(in),
	}
	if report, ok := models.BuildReport(in, d); ok {
		resp.Report = &report
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *WageHandler) Rates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RatesResponse{Rates: models.AllowedRates, Default: models.DefaultRate})
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// pieGradient draws the breakdown as a CSS conic gradient.
func pieGradient(c models.ChartData) template.CSS {
	if c.Total() <= 0 {
		return template.CSS("#e0e0e0")
	}
	var stops []string
	var start float64
	for _, p := range c.Points {
		end := start + p.Percent
		stops = append(stops, fmt.Sprintf("%s %.2f%% %.2f%%", p.Color, start, end))
		start = end
	}
	return template.CSS("conic-gradient(" + strings.Join(stops, ", ") + ")")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("encode json response", logging.FieldError, err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
