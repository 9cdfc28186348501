package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Admin    AdminConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Port int
}

// AdminConfig holds the single shared admin credential. The password is
// compared in plain text; this is documented behavior, not an oversight.
type AdminConfig struct {
	User     string
	Password string
}

type StorageConfig struct {
	// Backend selects the persistence adapter: "file" or "postgres".
	Backend string
	// DataFile is the JSON document path used by the file backend.
	DataFile string
	// MediaDir is the root for uploaded files (videos/, photos/, icons/).
	MediaDir string
	// StaticDir optionally overrides the embedded front-end shell.
	StaticDir string
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DSN returns the connection string, preferring an explicit DATABASE_URL.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", d.User, d.Password, d.Host, d.Port, d.Name)
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	// To is the church inbox that receives contact notifications.
	To string
}

// Enabled reports whether SMTP delivery is configured. Without
// credentials the server falls back to the logging mailer.
func (e EmailConfig) Enabled() bool {
	return e.User != "" && e.Password != ""
}

// Load reads configuration from the environment, with .env support for
// local development. Defaults match the historical deployment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 3001)
	v.SetDefault("ADMIN_USER", "admin")
	v.SetDefault("ADMIN_PASS", "letmein")
	v.SetDefault("STORE", "file")
	v.SetDefault("DATA_FILE", "moc-data.json")
	v.SetDefault("MEDIA_DIR", "media")
	v.SetDefault("STATIC_DIR", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "moc_church")
	v.SetDefault("EMAIL_HOST", "smtp.gmail.com")
	v.SetDefault("EMAIL_PORT", 587)
	v.SetDefault("EMAIL_USER", "")
	v.SetDefault("EMAIL_PASSWORD", "")
	v.SetDefault("EMAIL_TO", "")

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("PORT"),
		},
		Admin: AdminConfig{
			User:     v.GetString("ADMIN_USER"),
			Password: v.GetString("ADMIN_PASS"),
		},
		Storage: StorageConfig{
			Backend:   v.GetString("STORE"),
			DataFile:  v.GetString("DATA_FILE"),
			MediaDir:  v.GetString("MEDIA_DIR"),
			StaticDir: v.GetString("STATIC_DIR"),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Email: EmailConfig{
			Host:     v.GetString("EMAIL_HOST"),
			Port:     v.GetInt("EMAIL_PORT"),
			User:     v.GetString("EMAIL_USER"),
			Password: v.GetString("EMAIL_PASSWORD"),
			To:       v.GetString("EMAIL_TO"),
		},
	}

	// A missing EMAIL_TO falls back to the sending account, matching the
	// original single-inbox setup.
	if cfg.Email.To == "" {
		cfg.Email.To = cfg.Email.User
	}

	return cfg
}
