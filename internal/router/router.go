// Package router assembles the HTTP surface: API routes with their auth
// wrappers, the media file server, the metrics endpoint, and the static
// site fallback.
package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"church-backend/internal/handlers"
	"church-backend/internal/middleware"
)

// Deps carries the handlers and middleware the route tree needs. Icons is
// nil when the JSON-file backend is active; its routes are not mounted.
type Deps struct {
	Auth     *middleware.AuthMiddleware
	Login    *handlers.AuthHandler
	Messages *handlers.MessageHandler
	Videos   *handlers.VideoHandler
	Photos   *handlers.PhotoHandler
	Icons    *handlers.GalleryIconHandler
	Stats    *handlers.StatsHandler
	System   *handlers.SystemHandler
	Health   *handlers.HealthHandler
	Static   *handlers.StaticHandler
	MediaDir string
}

func New(d Deps) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Metrics)

	admin := d.Auth.RequireAdmin
	authed := d.Auth.RequireAuth

	// Brute-force protection on the login endpoints only.
	loginLimiter := middleware.NewRateLimiter(5, time.Minute)
	api.Handle("/admin/login", loginLimiter.Middleware(http.HandlerFunc(d.Login.AdminLogin))).Methods(http.MethodPost)
	api.Handle("/user/login", loginLimiter.Middleware(http.HandlerFunc(d.Login.UserLogin))).Methods(http.MethodPost)
	api.HandleFunc("/admin/auth", d.Login.AdminStatus).Methods(http.MethodGet)
	api.HandleFunc("/logout", d.Login.Logout).Methods(http.MethodPost)

	api.HandleFunc("/health", d.Health.Get).Methods(http.MethodGet)
	api.HandleFunc("/contact", d.Messages.Submit).Methods(http.MethodPost)

	// Contact inbox, admin only.
	api.Handle("/messages", admin(http.HandlerFunc(d.Messages.List))).Methods(http.MethodGet)
	api.Handle("/messages/{id}", admin(http.HandlerFunc(d.Messages.MarkRead))).Methods(http.MethodPatch)
	api.Handle("/messages/{id}", admin(http.HandlerFunc(d.Messages.Delete))).Methods(http.MethodDelete)

	// Videos. Link submissions and file uploads take any authenticated
	// session; moderation is admin only.
	api.HandleFunc("/videos", d.Videos.ListApproved).Methods(http.MethodGet)
	api.Handle("/videos", authed(http.HandlerFunc(d.Videos.Submit))).Methods(http.MethodPost)
	api.Handle("/videos/upload", authed(http.HandlerFunc(d.Videos.Upload))).Methods(http.MethodPost)
	api.Handle("/admin/videos", admin(http.HandlerFunc(d.Videos.ListAll))).Methods(http.MethodGet)
	api.Handle("/videos/{id}/approve", admin(http.HandlerFunc(d.Videos.Approve))).Methods(http.MethodPatch)
	api.Handle("/videos/{id}", admin(http.HandlerFunc(d.Videos.Delete))).Methods(http.MethodDelete)

	// Photos. The JSON submit path is admin only, uploads take any session.
	api.HandleFunc("/photos", d.Photos.ListApproved).Methods(http.MethodGet)
	api.Handle("/photos", admin(http.HandlerFunc(d.Photos.Submit))).Methods(http.MethodPost)
	api.Handle("/photos/upload", authed(http.HandlerFunc(d.Photos.Upload))).Methods(http.MethodPost)
	api.Handle("/admin/photos", admin(http.HandlerFunc(d.Photos.ListAll))).Methods(http.MethodGet)
	api.Handle("/photos/{id}/approve", admin(http.HandlerFunc(d.Photos.Approve))).Methods(http.MethodPatch)
	api.Handle("/photos/{id}", admin(http.HandlerFunc(d.Photos.Delete))).Methods(http.MethodDelete)

	if d.Icons != nil {
		// Fixed segments must register before the {id} catch-all.
		api.HandleFunc("/gallery-icons", d.Icons.ListApproved).Methods(http.MethodGet)
		api.HandleFunc("/gallery-icons/featured", d.Icons.Featured).Methods(http.MethodGet)
		api.HandleFunc("/gallery-icons/category/{category}", d.Icons.ByCategory).Methods(http.MethodGet)
		api.HandleFunc("/gallery-icons/{id}", d.Icons.Get).Methods(http.MethodGet)
		api.Handle("/gallery-icons", admin(http.HandlerFunc(d.Icons.Submit))).Methods(http.MethodPost)
		api.Handle("/gallery-icons/upload", admin(http.HandlerFunc(d.Icons.Upload))).Methods(http.MethodPost)
		api.Handle("/admin/gallery-icons", admin(http.HandlerFunc(d.Icons.ListAll))).Methods(http.MethodGet)
		api.Handle("/gallery-icons/{id}/approve", admin(http.HandlerFunc(d.Icons.Approve))).Methods(http.MethodPatch)
		api.Handle("/gallery-icons/{id}/featured", admin(http.HandlerFunc(d.Icons.SetFeatured))).Methods(http.MethodPatch)
		api.Handle("/gallery-icons/{id}", admin(http.HandlerFunc(d.Icons.Delete))).Methods(http.MethodDelete)
	}

	// Dashboard panels.
	api.Handle("/stats", admin(http.HandlerFunc(d.Stats.Get))).Methods(http.MethodGet)
	api.Handle("/admin/system", admin(http.HandlerFunc(d.System.Get))).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(d.MediaDir))))

	r.PathPrefix("/").Handler(d.Static)

	return middleware.SecurityHeaders(middleware.GzipCompression(r))
}
