package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/NascpHisCommunity/Nascap-website/authenticator"
	"github.com/NascpHisCommunity/Nascap-website/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Auth     *AuthController
	Audit    *AuditController
	Category *CategoryController
	Content  *ContentController
	File     *FileController
	User     *UserController
	API      *APIController
}

// NewControllers creates and initializes all controller instances. provider
// may be nil when SSO is not configured.
func NewControllers(services *services.Services, provider authenticator.Provider, logger zerolog.Logger) *Controllers {
	return &Controllers{
		Auth:     NewAuthController(services, provider, logger),
		Audit:    NewAuditController(services),
		Category: NewCategoryController(services),
		Content:  NewContentController(services),
		File:     NewFileController(services),
		User:     NewUserController(services),
		API:      NewAPIController(services),
	}
}

// writeJSON writes data as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error payload
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// urlID parses the {id} route parameter
func urlID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// queryLimit parses the optional limit query parameter; 0 means unlimited
func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
