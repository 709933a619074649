package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPLBaseURL != "https://fantasy.premierleague.com/api" {
		t.Errorf("FPLBaseURL = %q", cfg.FPLBaseURL)
	}
	if cfg.FPLTimeout != 20*time.Second {
		t.Errorf("FPLTimeout = %v, want 20s", cfg.FPLTimeout)
	}
	if cfg.FixtureHorizon != 3 {
		t.Errorf("FixtureHorizon = %d, want 3", cfg.FixtureHorizon)
	}
	if cfg.ReplacementLimit != 4 {
		t.Errorf("ReplacementLimit = %d, want 4", cfg.ReplacementLimit)
	}
	if cfg.RatingStrategy != StrategyWeighted {
		t.Errorf("RatingStrategy = %q, want weighted", cfg.RatingStrategy)
	}
	if cfg.ReportDir != "reports" {
		t.Errorf("ReportDir = %q, want reports", cfg.ReportDir)
	}
	if cfg.AIEnabled() {
		t.Error("AI enabled without any key")
	}
}

func TestLoad_InvalidRatingStrategy(t *testing.T) {
	t.Setenv("RATING_STRATEGY", "vibes")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid RATING_STRATEGY")
	}
}

func TestLoad_RatingStrategyNormalized(t *testing.T) {
	t.Setenv("RATING_STRATEGY", " Quantile ")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RatingStrategy != StrategyQuantile {
		t.Errorf("RatingStrategy = %q, want quantile", cfg.RatingStrategy)
	}
}

func TestLoad_NegativeTeamID(t *testing.T) {
	t.Setenv("FPL_TEAM_ID", "-5")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative FPL_TEAM_ID")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("FPL_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable FPL_TIMEOUT")
	}
}

func TestLoad_AIEnabledWithAnyKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY_FREE", "gsk_free")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.AIEnabled() {
		t.Error("AI disabled although the free key is set")
	}
}

func TestLoad_ZeroReplacementLimitRejected(t *testing.T) {
	t.Setenv("REPLACEMENT_LIMIT", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for REPLACEMENT_LIMIT=0")
	}
}
