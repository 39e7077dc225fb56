package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Credentials are the two named portal secrets, treated as opaque
// strings.
type Credentials struct {
	Username string
	Password string
}

// LoadCredentials reads the portal login from the environment, loading
// a .env file first if one exists. OPENREVIEW_* names take precedence
// over the bare USERNAME/PASSWORD pair.
func LoadCredentials() (Credentials, error) {
	// Missing .env is fine, the variables may already be exported.
	_ = godotenv.Load()

	creds := Credentials{
		Username: firstEnv("OPENREVIEW_USERNAME", "USERNAME"),
		Password: firstEnv("OPENREVIEW_PASSWORD", "PASSWORD"),
	}

	if creds.Username == "" {
		return Credentials{}, fmt.Errorf("OPENREVIEW_USERNAME is not set")
	}
	if creds.Password == "" {
		return Credentials{}, fmt.Errorf("OPENREVIEW_PASSWORD is not set")
	}

	return creds, nil
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
