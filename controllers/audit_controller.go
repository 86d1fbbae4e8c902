package controllers

import (
	"net/http"

	"github.com/NascpHisCommunity/Nascap-website/services"
)

// AuditController serves the audit dashboard and the admin log view. Both
// are pure reads over the append-only trail.
type AuditController struct {
	services *services.Services
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services) *AuditController {
	return &AuditController{services: services}
}

// Dashboard handles GET /audit/dashboard. It returns page views grouped by
// path (most viewed first) and the distinct visitor count.
func (c *AuditController) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := c.services.Audit.Summarize(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build summary: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Logs handles GET /audit/logs, returning the newest entries first
func (c *AuditController) Logs(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Audit.RecentEntries(r.Context(), queryLimit(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load audit log: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
