package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Env holds process-level settings read from the environment.
// A .env file in the working directory is loaded first when present.
type Env struct {
	DBPath      string
	HTTPAddr    string
	SSHAddr     string
	HostKeyPath string
	AdminUser   string
	AdminPass   string
	SessionTTL  time.Duration
}

// LoadEnv reads the environment, loading the given dotenv files first.
// Missing dotenv files are not an error.
func LoadEnv(files ...string) Env {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		//nolint:errcheck // A missing .env is the normal case
		godotenv.Load(f)
	}

	ttl, err := time.ParseDuration(getenv("TERMFOLIO_SESSION_TTL", "12h"))
	if err != nil {
		ttl = 12 * time.Hour
	}

	return Env{
		DBPath:      getenv("TERMFOLIO_DB", "~/.termfolio/termfolio.db"),
		HTTPAddr:    getenv("TERMFOLIO_HTTP_ADDR", ":8080"),
		SSHAddr:     getenv("TERMFOLIO_SSH_ADDR", ":23234"),
		HostKeyPath: os.Getenv("TERMFOLIO_HOST_KEY"),
		AdminUser:   getenv("TERMFOLIO_ADMIN_USER", "admin"),
		AdminPass:   getenv("TERMFOLIO_ADMIN_PASS", "admin"),
		SessionTTL:  ttl,
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
