package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/repositories"
	"github.com/NascpHisCommunity/Nascap-website/services"
)

// APIController serves the public read-only JSON API consumed by the
// separate front-end. Everything here is GET-only over published data.
type APIController struct {
	services *services.Services
}

// NewAPIController creates a new API controller
func NewAPIController(services *services.Services) *APIController {
	return &APIController{services: services}
}

// LatestNewsEvents handles GET /api/latest-news-events: published news and
// event items from the last 30 days for the front-page carousel
func (c *APIController) LatestNewsEvents(w http.ResponseWriter, r *http.Request) {
	contents, err := c.services.Content.LatestNewsEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load news and events: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, contents)
}

// departmentItem is the slim payload for the department navigation
type departmentItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// DepartmentContents handles GET /api/department-contents
func (c *APIController) DepartmentContents(w http.ResponseWriter, r *http.Request) {
	contents, err := c.services.Content.DepartmentContents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load departments: "+err.Error())
		return
	}

	items := make([]departmentItem, 0, len(contents))
	for _, content := range contents {
		items = append(items, departmentItem{ID: content.ID, Title: content.Title, Slug: content.Slug})
	}

	writeJSON(w, http.StatusOK, items)
}

// ContentsByType handles GET /api/contents/{type}?limit=
func (c *APIController) ContentsByType(w http.ResponseWriter, r *http.Request) {
	contentType := models.ContentType(chi.URLParam(r, "type"))

	contents, err := c.services.Content.PublishedByType(r.Context(), contentType, queryLimit(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, contents)
}

// ContentsByCategory handles GET /api/contents/category/{slug}?limit=
func (c *APIController) ContentsByCategory(w http.ResponseWriter, r *http.Request) {
	contents, err := c.services.Content.PublishedByCategory(r.Context(), chi.URLParam(r, "slug"), queryLimit(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load contents: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, contents)
}

// Files handles GET /api/files?category=&file_type=&limit=, returning file
// metadata slices such as reports, publications or videos
func (c *APIController) Files(w http.ResponseWriter, r *http.Request) {
	filter := repositories.FileFilter{
		Category: r.URL.Query().Get("category"),
		FileType: models.FileType(r.URL.Query().Get("file_type")),
		Limit:    queryLimit(r),
	}

	files, err := c.services.File.ListFiles(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load files: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, files)
}
