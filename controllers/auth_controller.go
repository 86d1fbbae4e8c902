package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/rs/zerolog"

	"github.com/NascpHisCommunity/Nascap-website/authenticator"
	"github.com/NascpHisCommunity/Nascap-website/middleware"
	"github.com/NascpHisCommunity/Nascap-website/services"
	"github.com/NascpHisCommunity/Nascap-website/userctx"
)

// AuthController handles login, logout and the optional SSO flow. It is the
// collaborator that reports identity lifecycle events to the audit sink.
type AuthController struct {
	services *services.Services
	provider authenticator.Provider
	logger   zerolog.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services, provider authenticator.Provider, logger zerolog.Logger) *AuthController {
	return &AuthController{
		services: services,
		provider: provider,
		logger:   logger,
	}
}

// Login handles POST /login with form credentials
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse form: "+err.Error())
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := c.services.Auth.Authenticate(r.Context(), username, password)
	if err != nil {
		// Identity was not established, so the actor stays nil. The sink
		// redacts password fields before the attempt is stored.
		c.reportAuthEvent(r, services.AuthEvent{
			Kind:        services.LoginFailed,
			Credentials: formValues(r),
			IPAddress:   middleware.ClientIP(r),
			Path:        r.URL.Path,
			UserAgent:   r.UserAgent(),
		})
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	sess := session.GetSession(r)
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("role", user.Role)

	c.reportAuthEvent(r, services.AuthEvent{
		Kind:      services.LoginSucceeded,
		UserID:    &user.ID,
		IPAddress: middleware.ClientIP(r),
		Path:      r.URL.Path,
		UserAgent: r.UserAgent(),
	})

	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.reportAuthEvent(r, services.AuthEvent{
		Kind:      services.LoggedOut,
		UserID:    userctx.UserID(r.Context()),
		IPAddress: middleware.ClientIP(r),
		Path:      r.URL.Path,
		UserAgent: r.UserAgent(),
	})

	sess := session.GetSession(r)
	if err := sess.Flush(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to end session: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// SSO handles GET /auth/sso, starting the OIDC code flow
func (c *AuthController) SSO(w http.ResponseWriter, r *http.Request) {
	if c.provider == nil {
		writeError(w, http.StatusNotFound, "SSO is not configured")
		return
	}

	state, err := generateRandomState()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sess := session.GetSession(r)
	sess.Set("sso_state", state)

	http.Redirect(w, r, c.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// SSOCallback handles GET /auth/callback from the identity provider
func (c *AuthController) SSOCallback(w http.ResponseWriter, r *http.Request) {
	if c.provider == nil {
		writeError(w, http.StatusNotFound, "SSO is not configured")
		return
	}

	sess := session.GetSession(r)

	storedState, _ := sess.Get("sso_state").(string)
	if storedState == "" || r.URL.Query().Get("state") != storedState {
		writeError(w, http.StatusBadRequest, "invalid state parameter")
		return
	}
	sess.Delete("sso_state")

	token, err := c.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "failed to exchange authorization code: "+err.Error())
		return
	}

	claims, err := c.provider.GetClaims(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to verify ID token: "+err.Error())
		return
	}

	username := claimString(claims, "nickname", "name", "email", "sub")
	email := claimString(claims, "email")

	user, err := c.services.Auth.FindOrCreateSSOUser(r.Context(), username, email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to resolve account: "+err.Error())
		return
	}

	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("role", user.Role)

	c.reportAuthEvent(r, services.AuthEvent{
		Kind:      services.LoginSucceeded,
		UserID:    &user.ID,
		IPAddress: middleware.ClientIP(r),
		Path:      r.URL.Path,
		UserAgent: r.UserAgent(),
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// reportAuthEvent delivers a lifecycle event to the audit sink. A storage
// failure is logged; authentication itself proceeds either way.
func (c *AuthController) reportAuthEvent(r *http.Request, event services.AuthEvent) {
	if _, err := c.services.Audit.RecordAuthEvent(r.Context(), event); err != nil {
		c.logger.Error().Err(err).
			Int("kind", int(event.Kind)).
			Msg("failed to record auth event")
	}
}

// formValues flattens the parsed form into a map for the audit trail
func formValues(r *http.Request) map[string]any {
	values := make(map[string]any, len(r.Form))
	for key, vals := range r.Form {
		if len(vals) == 1 {
			values[key] = vals[0]
		} else {
			values[key] = vals
		}
	}
	return values
}

// claimString returns the first non-empty string claim among keys
func claimString(claims authenticator.Claims, keys ...string) string {
	for _, key := range keys {
		if value, ok := claims[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
