package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/javed1310/Darwix-AI-Hackathon/internal/ai/models"
)

// ErrMissingCredential is returned by Validate when no usable Groq API key is configured.
var ErrMissingCredential = errors.New("GROQ_API_KEY is missing or still holds a placeholder")

const (
	DefaultModel         = models.TaskAnalysisModel
	DefaultCerebrasModel = models.TaskAnalysisFallbackModel
	DefaultGroqBaseURL   = models.GroqBaseURL
)

// Config holds all application configuration.
// It is loaded once at start-up and never re-read.
type Config struct {
	GroqAPIKey      string
	GroqBaseURL     string
	Model           string
	CerebrasAPIKey  string
	CerebrasModel   string
	MaxContentChars int
	DatabaseURL     string
	Debug           bool
}

// Load loads configuration from environment variables
func Load() Config {
	return Config{
		GroqAPIKey:      strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GroqBaseURL:     getEnv("GROQ_BASE_URL", DefaultGroqBaseURL),
		Model:           getEnv("SKEPTIC_MODEL", DefaultModel),
		CerebrasAPIKey:  strings.TrimSpace(os.Getenv("CEREBRAS_API_KEY")),
		CerebrasModel:   getEnv("CEREBRAS_MODEL", DefaultCerebrasModel),
		MaxContentChars: getEnvInt("SKEPTIC_MAX_CONTENT_CHARS", 0),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Debug:           getEnvBool("SKEPTIC_DEBUG", false),
	}
}

// Validate checks the pre-flight requirements. It performs no I/O.
func (c Config) Validate() error {
	if isPlaceholder(c.GroqAPIKey) {
		return ErrMissingCredential
	}
	return nil
}

// placeholders are fragments left behind when a key was copied from a template
var placeholders = []string{"paste_your", "your_api_key", "your-api-key", "<", ">"}

func isPlaceholder(key string) bool {
	if key == "" {
		return true
	}
	lower := strings.ToLower(key)
	for _, p := range placeholders {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
