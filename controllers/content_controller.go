package controllers

import (
	"net/http"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/services"
)

// ContentController handles admin content management requests
type ContentController struct {
	services *services.Services
}

// NewContentController creates a new content controller
func NewContentController(services *services.Services) *ContentController {
	return &ContentController{services: services}
}

// Index handles GET /admin/contents
func (c *ContentController) Index(w http.ResponseWriter, r *http.Request) {
	contents, err := c.services.Content.GetAllContents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load contents: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, contents)
}

// Show handles GET /admin/contents/{id}
func (c *ContentController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content ID")
		return
	}

	content, err := c.services.Content.GetContentByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, content)
}

// Create handles POST /admin/contents
func (c *ContentController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ContentForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	content, err := c.services.Content.CreateContent(r.Context(), &form)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, content)
}

// Update handles PUT /admin/contents/{id}
func (c *ContentController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content ID")
		return
	}

	var form models.ContentForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	content, err := c.services.Content.UpdateContent(r.Context(), id, &form)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, content)
}

// Delete handles DELETE /admin/contents/{id}
func (c *ContentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content ID")
		return
	}

	if err := c.services.Content.DeleteContent(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
