package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OBJECT_STORE", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("Env = %q", cfg.Env)
	}
	if cfg.LLMProvider != "openai" {
		t.Fatalf("LLMProvider = %q", cfg.LLMProvider)
	}
	if cfg.LLMModel != "gpt-4o-mini" {
		t.Fatalf("LLMModel = %q", cfg.LLMModel)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("ObjectStoreType = %q", cfg.ObjectStoreType)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "PROD")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DATABASE_URL", "postgres://x")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("Env = %q", cfg.Env)
	}
	if cfg.LLMProvider != "gemini" {
		t.Fatalf("LLMProvider = %q", cfg.LLMProvider)
	}
	if cfg.LLMModel != "gemini-2.0-flash" {
		t.Fatalf("LLMModel = %q", cfg.LLMModel)
	}
	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("ObjectStoreType = %q", cfg.ObjectStoreType)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("CORSAllowOrigin = %v", cfg.CORSAllowOrigin)
	}
	if cfg.DatabaseURL != "postgres://x" {
		t.Fatalf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}
