package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration. It is loaded once in the CLI
// and injected into constructors; nothing in the core reads the environment.
type Config struct {
	OCR OCRConfig
	LLM LLMConfig
}

// OCRConfig holds text-extraction configuration.
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int
	MaxPages      int
}

// LLMConfig holds generative-structuring configuration. An empty APIKey means
// the collaborator is unavailable and extraction falls through to patterns.
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.OCR.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_DPI must be positive", ErrInvalidInput)
	}
	if c.LLM.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "OPENAI_TIMEOUT must be positive", ErrInvalidInput)
	}
	return nil
}
