package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"church-backend/internal/auth"
	"church-backend/internal/config"
	"church-backend/internal/database"
	"church-backend/internal/handlers"
	"church-backend/internal/health"
	"church-backend/internal/mailer"
	"church-backend/internal/middleware"
	"church-backend/internal/router"
	"church-backend/internal/services"
	"church-backend/internal/store"
	"church-backend/internal/store/filestore"
	"church-backend/internal/store/pgstore"
	"church-backend/migrations"
)

func main() {
	storeFlag := flag.String("store", "", "persistence backend: file or postgres (overrides STORE)")
	portFlag := flag.Int("port", 0, "listen port (overrides PORT)")
	flag.Parse()

	cfg := config.Load()
	if *storeFlag != "" {
		cfg.Storage.Backend = *storeFlag
	}
	if *portFlag != 0 {
		cfg.Server.Port = *portFlag
	}

	var (
		messages store.MessageRepository
		videos   store.VideoRepository
		photos   store.PhotoRepository
		icons    store.GalleryIconRepository
		stats    store.StatsProvider
		checker  *health.HealthChecker
	)

	switch cfg.Storage.Backend {
	case "postgres":
		pool := database.Connect(cfg)
		defer pool.Close()

		migrator := database.NewMigrator(pool, migrations.FS)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrator.RunMigrations(ctx); err != nil {
			cancel()
			log.Fatalf("Migrations failed: %v", err)
		}
		cancel()

		messages = pgstore.NewMessageRepository(pool)
		videos = pgstore.NewVideoRepository(pool)
		photos = pgstore.NewPhotoRepository(pool)
		icons = pgstore.NewGalleryIconRepository(pool)
		stats = pgstore.NewStatsRepository(pool)
		checker = health.NewHealthChecker(pool)
		log.Println("Using PostgreSQL backend")

	case "file":
		fileStore := filestore.New(cfg.Storage.DataFile)
		messages = filestore.NewMessageRepository(fileStore)
		videos = filestore.NewVideoRepository(fileStore)
		photos = filestore.NewPhotoRepository(fileStore)
		stats = fileStore
		checker = health.NewHealthChecker(nil)
		log.Printf("Using JSON file backend: %s", cfg.Storage.DataFile)

	default:
		log.Fatalf("Unknown store backend %q (want file or postgres)", cfg.Storage.Backend)
	}

	media, err := services.NewMediaService(cfg.Storage.MediaDir)
	if err != nil {
		log.Fatalf("Media directories unavailable: %v", err)
	}

	var m mailer.Mailer
	if cfg.Email.Enabled() {
		m = mailer.NewSMTPMailer(cfg.Email.Host, cfg.Email.Port, cfg.Email.User, cfg.Email.Password, cfg.Email.To)
		log.Printf("Email notifications enabled via %s", cfg.Email.Host)
	} else {
		m = mailer.NewMockMailer()
		log.Println("Email not configured, notifications will be logged only")
	}

	sessions := auth.NewSessionStore()
	contact := services.NewContactService(messages, m)

	deps := router.Deps{
		Auth:     middleware.NewAuthMiddleware(sessions),
		Login:    handlers.NewAuthHandler(cfg, sessions),
		Messages: handlers.NewMessageHandler(contact, messages),
		Videos:   handlers.NewVideoHandler(videos, media),
		Photos:   handlers.NewPhotoHandler(photos, media),
		Stats:    handlers.NewStatsHandler(stats),
		System:   handlers.NewSystemHandler(),
		Health:   handlers.NewHealthHandler(checker),
		Static:   handlers.NewStaticHandler(cfg.Storage.StaticDir),
		MediaDir: cfg.Storage.MediaDir,
	}
	if icons != nil {
		deps.Icons = handlers.NewGalleryIconHandler(icons, media)
	}

	handler := cors.AllowAll().Handler(router.New(deps))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Church backend listening on %s", addr)
	log.Printf("Admin dashboard: http://localhost:%d/admin", cfg.Server.Port)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
