package controllers

import (
	"net/http"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/services"
)

// CategoryController handles admin category management requests
type CategoryController struct {
	services *services.Services
}

// NewCategoryController creates a new category controller
func NewCategoryController(services *services.Services) *CategoryController {
	return &CategoryController{services: services}
}

// Index handles GET /admin/categories
func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	categories, err := c.services.Category.GetAllCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load categories: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// Create handles POST /admin/categories
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.CategoryForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	category, err := c.services.Category.CreateCategory(r.Context(), &form)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// Update handles PUT /admin/categories/{id}
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	var form models.CategoryForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	category, err := c.services.Category.UpdateCategory(r.Context(), id, &form)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// Delete handles DELETE /admin/categories/{id}
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	if err := c.services.Category.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
