// Package config resolves runtime configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings for the generation pipeline.
type Config struct {
	OpenRouterAPIKey string
	ElevenLabsAPIKey string
	RedisAddr        string // empty means in-memory storage
	Model            string
	VoiceModel       string
	OutputDir        string
}

// Default returns the built-in configuration without touching the
// environment.
func Default() Config {
	return Config{
		Model:      "meta-llama/llama-3-8b-instruct",
		VoiceModel: "eleven_multilingual_v2",
		OutputDir:  ".",
	}
}

// Load reads configuration from a .env file (if present) and environment
// variables, on top of the defaults.
func Load() Config {
	// missing .env is fine, system environment still applies
	_ = godotenv.Load()

	cfg := Default()
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.OpenRouterAPIKey = v
	}
	if v := os.Getenv("ELEVENLABS_API_KEY"); v != "" {
		cfg.ElevenLabsAPIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("PODCAST_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PODCAST_VOICE_MODEL"); v != "" {
		cfg.VoiceModel = v
	}
	if v := os.Getenv("PODCAST_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	return cfg
}
