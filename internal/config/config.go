package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port           string
	Env            string
	MongoURL       string
	MongoDB        string
	PrivateKeyPath string
	PublicKeyPath  string
	TokenExpiry    time.Duration
	UploadDir      string
	// LegacyAuthz disables ownership and admin-role checks, reproducing the
	// behavior of the original training deployment. Never enable in production.
	LegacyAuthz bool
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8090"),
		Env:            getEnv("ENV", "development"),
		MongoURL:       getEnv("MONGO_URL", "mongodb://127.0.0.1:27017"),
		MongoDB:        getEnv("MONGO_DB", "pixidb"),
		PrivateKeyPath: getEnv("PRIVATE_KEY_PATH", "keys/private.pem"),
		PublicKeyPath:  getEnv("PUBLIC_KEY_PATH", "keys/public.pem"),
		TokenExpiry:    getDuration("TOKEN_EXPIRY", 30*time.Minute),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		LegacyAuthz:    os.Getenv("LEGACY_AUTHZ") == "true",
	}

	if cfg.Env == "production" && cfg.LegacyAuthz {
		slog.Error("LEGACY_AUTHZ must not be enabled in production")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v)
		return fallback
	}
	return d
}
