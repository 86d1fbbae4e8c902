package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/NascpHisCommunity/Nascap-website/authenticator"
	"github.com/NascpHisCommunity/Nascap-website/controllers"
	"github.com/NascpHisCommunity/Nascap-website/database"
	"github.com/NascpHisCommunity/Nascap-website/middleware"
	"github.com/NascpHisCommunity/Nascap-website/models"
	"github.com/NascpHisCommunity/Nascap-website/repositories"
	"github.com/NascpHisCommunity/Nascap-website/services"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()

	// A .env file is optional; real environment variables win either way
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("failed to load .env file")
	}

	// Initialize database
	dbPath := envDefault("DB_PATH", "nascp_web.db")
	if err := database.InitializeDatabase(dbPath); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer database.CloseDB()

	// Initialize repositories, services and controllers
	repos := repositories.NewRepositories(database.GetDB())
	uploadDir := envDefault("UPLOAD_DIR", "media")
	srvs := services.NewServices(repos, uploadDir)

	// Bootstrap the admin account on first start
	if err := srvs.Auth.EnsureAdmin(context.Background(), os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		logger.Fatal().Err(err).Msg("failed to bootstrap admin account")
	}

	ctrl := controllers.NewControllers(srvs, ssoProvider(logger), logger)

	// Set up router
	r, err := setupRouter(ctrl, srvs, uploadDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to setup router")
	}

	port := envDefault("PORT", "8080")
	logger.Info().Str("port", port).Str("database", dbPath).Msg("server starting")

	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, srvs *services.Services, uploadDir string, logger zerolog.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(chimiddleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "nascp_session",
		Secure:      os.Getenv("USE_HTTPS") == "true",
		Gclifetime:  3600,
		Maxlifetime: 3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// Resolve the session identity before the page-view recorder runs so
	// views are attributed to the signed-in account.
	r.Use(middleware.LoadUser)
	r.Use(middleware.PageViews(srvs.Audit, logger))

	// Static assets (excluded from page-view auditing) and uploaded media
	r.Handle(middleware.StaticPrefix+"*", http.StripPrefix(middleware.StaticPrefix, http.FileServer(http.Dir("static/"))))
	r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(uploadDir))))

	// PUBLIC ROUTES (no authentication required)
	r.Post("/login", ctrl.Auth.Login)
	r.Post("/logout", ctrl.Auth.Logout)
	r.Get("/auth/sso", ctrl.Auth.SSO)
	r.Get("/auth/callback", ctrl.Auth.SSOCallback)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "nascp-website"}`)
	})

	// Read-only JSON API consumed by the public front-end
	r.Route("/api", func(r chi.Router) {
		r.Get("/latest-news-events", ctrl.API.LatestNewsEvents)
		r.Get("/department-contents", ctrl.API.DepartmentContents)
		r.Get("/contents/category/{slug}", ctrl.API.ContentsByCategory)
		r.Get("/contents/{type}", ctrl.API.ContentsByType)
		r.Get("/files", ctrl.API.Files)
	})

	// ADMIN ROUTES (authentication required)
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Route("/contents", func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleEditor))
			r.Get("/", ctrl.Content.Index)
			r.Post("/", ctrl.Content.Create)
			r.Get("/{id}", ctrl.Content.Show)
			r.Put("/{id}", ctrl.Content.Update)
			r.Delete("/{id}", ctrl.Content.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleEditor))
			r.Get("/", ctrl.Category.Index)
			r.Post("/", ctrl.Category.Create)
			r.Put("/{id}", ctrl.Category.Update)
			r.Delete("/{id}", ctrl.Category.Delete)
		})

		r.Route("/files", func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleEditor))
			r.Get("/", ctrl.File.Index)
			r.Post("/", ctrl.File.Upload)
			r.Put("/{id}", ctrl.File.Update)
			r.Delete("/{id}", ctrl.File.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Get("/", ctrl.User.Index)
			r.Post("/", ctrl.User.Create)
			r.Get("/{id}", ctrl.User.Show)
			r.Put("/{id}", ctrl.User.Update)
			r.Delete("/{id}", ctrl.User.Delete)
		})
	})

	// Audit read surface (admin only)
	r.Route("/audit", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(models.RoleAdmin))
		r.Get("/dashboard", ctrl.Audit.Dashboard)
		r.Get("/logs", ctrl.Audit.Logs)
	})

	return r, nil
}

// ssoProvider builds the OIDC provider when configured, else returns nil
func ssoProvider(logger zerolog.Logger) authenticator.Provider {
	issuer := os.Getenv("OIDC_ISSUER_URL")
	if issuer == "" {
		return nil
	}

	provider, err := authenticator.NewOpenIDProvider(authenticator.OpenIDConfig{
		IssuerURL:    issuer,
		ClientID:     os.Getenv("OIDC_CLIENT_ID"),
		ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		CallbackURL:  os.Getenv("OIDC_CALLBACK_URL"),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize SSO provider")
	}

	return provider
}

// envDefault returns the environment value for key, or fallback when unset
func envDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
