package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Address != ":8084" {
		t.Errorf("server address = %q, want :8084", cfg.Server.Address)
	}
	if cfg.Rubric.Source != "file" {
		t.Errorf("rubric source = %q, want file", cfg.Rubric.Source)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Temperature != 0.7 {
		t.Errorf("openai temperature = %v, want 0.7", cfg.OpenAI.Temperature)
	}
	if cfg.OpenAI.Timeout <= 0 {
		t.Error("openai timeout must be bounded")
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("cors origins = %v, want [*]", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("NOTIFIER_WEBHOOK_URL", "https://hooks.example.com/survey")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai model = %q, want gpt-4o-mini", cfg.OpenAI.Model)
	}
	if cfg.Notifier.WebhookURL != "https://hooks.example.com/survey" {
		t.Errorf("webhook url = %q", cfg.Notifier.WebhookURL)
	}
}

func TestLoadRejectsUnknownRubricSource(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("RUBRIC_SOURCE", "carrier-pigeon")

	if _, err := Load(); err == nil {
		t.Error("expected an error for an unknown rubric source")
	}
}
