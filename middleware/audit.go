package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/services"
	"github.com/NascpHisCommunity/Nascap-website/userctx"
)

// StaticPrefix is the reserved asset prefix excluded from page-view auditing
// so asset fetches don't flood the trail.
const StaticPrefix = "/static/"

// PageViews records one page_view per eligible request: GET method, path
// outside the static prefix. Recording happens after the handler has
// produced the response and is independent of the status code. A recording
// failure is logged and swallowed; it never alters the response.
func PageViews(recorder services.AuditService, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, StaticPrefix) {
				return
			}

			_, err := recorder.Record(
				r.Context(),
				models.ActionPageView,
				userctx.UserID(r.Context()),
				ClientIP(r),
				r.URL.Path,
				r.UserAgent(),
				nil,
			)
			if err != nil {
				logger.Error().Err(err).
					Str("path", r.URL.Path).
					Msg("failed to record page view")
			}
		})
	}
}

// ClientIP extracts the client IP address from a request, checking
// X-Forwarded-For first
func ClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
