package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LLM.Model != "gpt-4.1" {
		t.Errorf("model %q", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("timeout %v", cfg.LLM.Timeout)
	}
	if cfg.Generation.MaxRetries != 3 {
		t.Errorf("retries %d", cfg.Generation.MaxRetries)
	}
	if len(cfg.Generation.PersonaPresets) != 3 {
		t.Errorf("presets %v", cfg.Generation.PersonaPresets)
	}
	if len(cfg.Generation.ScenarioTypes) != 5 {
		t.Errorf("scenario types %v", cfg.Generation.ScenarioTypes)
	}
	if cfg.Mining.Seed != 42 || cfg.Mining.SamplesPerLabel != 100 {
		t.Errorf("mining %+v", cfg.Mining)
	}
	if cfg.Output.Format != "jsonl" {
		t.Errorf("format %q", cfg.Output.Format)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("LLM_TEMPERATURE", "0.3")
	t.Setenv("GEN_PERSONA_PRESETS", "business_customer, tech_support_user")
	t.Setenv("MINE_SEED", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("model %q", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.3 {
		t.Errorf("temperature %v", cfg.LLM.Temperature)
	}
	if len(cfg.Generation.PersonaPresets) != 2 || cfg.Generation.PersonaPresets[1] != "tech_support_user" {
		t.Errorf("presets %v", cfg.Generation.PersonaPresets)
	}
	if cfg.Mining.Seed != 7 {
		t.Errorf("seed %d", cfg.Mining.Seed)
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	t.Setenv("OUTPUT_FORMAT", "xml")
	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for OUTPUT_FORMAT=xml")
	}
}

func TestLoad_StrictRejectsUnknownNames(t *testing.T) {
	t.Setenv("GEN_STRICT_LOOKUPS", "true")
	t.Setenv("GEN_PERSONA_PRESETS", "no_such_preset")
	if _, err := Load(); err == nil {
		t.Fatal("expected strict validation error for unknown preset")
	}

	t.Setenv("GEN_PERSONA_PRESETS", "basic_chinese_customer")
	t.Setenv("GEN_SCENARIO_TYPES", "外星咨询")
	if _, err := Load(); err == nil {
		t.Fatal("expected strict validation error for unknown scenario")
	}
}
