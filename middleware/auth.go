package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/userctx"
)

// LoadUser copies the session identity, when present, into the request
// context. It runs on every route so the page-view recorder can attribute
// views to the signed-in account.
func LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		if sess != nil {
			if userID, ok := sess.Get("user_id").(int64); ok {
				username, _ := sess.Get("username").(string)
				role, _ := sess.Get("role").(string)
				ctx := userctx.SetCurrentUser(r.Context(), userctx.CurrentUser{
					ID:       userID,
					Username: username,
					Role:     role,
				})
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth ensures the request carries an authenticated session
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userctx.GetCurrentUser(r.Context()); !ok {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// roleLevel orders roles by privilege
var roleLevel = map[string]int{
	models.RoleViewer: 1,
	models.RoleEditor: 2,
	models.RoleAdmin:  3,
}

// RequireRole ensures the authenticated account holds at least the given
// role. Admins pass editor checks, editors pass viewer checks.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := userctx.GetCurrentUser(r.Context())
			if !ok {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			if roleLevel[user.Role] < roleLevel[role] {
				http.Error(w, "insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
