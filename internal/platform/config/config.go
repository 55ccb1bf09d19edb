package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	// TokenSecret is the 32-byte symmetric key for session tokens,
	// decoded from TOKEN_SECRET_HEX.
	TokenSecret []byte

	// BadWordsAPIKey selects the external classifier when non-empty;
	// otherwise the built-in wordlist classifier is used.
	BadWordsAPIKey string
	BadWordsAPIURL string

	BcryptCost int
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "minerva"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := Config{
		ServiceName:    service,
		HTTPPort:       port,
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		BadWordsAPIKey: strings.TrimSpace(os.Getenv("BADWORDS_API_KEY")),
		BadWordsAPIURL: os.Getenv("BADWORDS_API_URL"),
		BcryptCost:     envInt("BCRYPT_COST", 12),
	}

	if cfg.BadWordsAPIURL == "" {
		cfg.BadWordsAPIURL = "https://api.apilayer.com/bad_words"
	}

	secretHex := strings.TrimSpace(os.Getenv("TOKEN_SECRET_HEX"))
	if secretHex != "" {
		secret, err := hex.DecodeString(secretHex)
		if err != nil {
			return Config{}, fmt.Errorf("decode TOKEN_SECRET_HEX: %w", err)
		}
		if len(secret) != 32 {
			return Config{}, fmt.Errorf("TOKEN_SECRET_HEX must decode to 32 bytes, got %d", len(secret))
		}
		cfg.TokenSecret = secret
	}

	return cfg, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
