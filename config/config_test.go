package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "meta-llama/llama-3-8b-instruct", cfg.Model)
	assert.Equal(t, "eleven_multilingual_v2", cfg.VoiceModel)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("ELEVENLABS_API_KEY", "el-key")
	t.Setenv("PODCAST_MODEL", "mistralai/mistral-7b-instruct")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()
	assert.Equal(t, "or-key", cfg.OpenRouterAPIKey)
	assert.Equal(t, "el-key", cfg.ElevenLabsAPIKey)
	assert.Equal(t, "mistralai/mistral-7b-instruct", cfg.Model)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "eleven_multilingual_v2", cfg.VoiceModel, "defaults survive partial overrides")
}
