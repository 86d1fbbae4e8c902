package controllers

import (
	"net/http"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/services"
)

// UserController handles admin user management requests
type UserController struct {
	services *services.Services
}

// NewUserController creates a new user controller
func NewUserController(services *services.Services) *UserController {
	return &UserController{services: services}
}

// Index handles GET /admin/users
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.services.User.GetAllUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load users: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Show handles GET /admin/users/{id}
func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := c.services.User.GetUserByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Create handles POST /admin/users
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.UserForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := c.services.User.CreateUser(r.Context(), &form)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Update handles PUT /admin/users/{id}
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var form models.UserForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := c.services.User.UpdateUser(r.Context(), id, &form)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /admin/users/{id}. The account's audit trail rows
// survive the deletion with their actor cleared.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := c.services.User.DeleteUser(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
