package toolconfig

import "testing"

func TestLoadUsesDefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("/nonexistent/rt5d.yaml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.OutputPath != "rt5d_config.json" {
		t.Errorf("expected default output_path, got %q", cfg.OutputPath)
	}
	if cfg.RetryWindow.Seconds() != 1 {
		t.Errorf("expected default retry_window 1s, got %v", cfg.RetryWindow)
	}
	if cfg.SessionDeadline.Seconds() != 120 {
		t.Errorf("expected default session_deadline 120s, got %v", cfg.SessionDeadline)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log_level info, got %q", cfg.LogLevel)
	}
}

func TestValidateErrors(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		cfg := &Config{LogLevel: "verbose", RetryWindow: 1, SessionDeadline: 1}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for invalid log_level")
		}
	})

	t.Run("non-positive retry window", func(t *testing.T) {
		cfg := &Config{LogLevel: "info", RetryWindow: 0, SessionDeadline: 1}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for non-positive retry_window")
		}
	})

	t.Run("non-positive session deadline", func(t *testing.T) {
		cfg := &Config{LogLevel: "info", RetryWindow: 1, SessionDeadline: 0}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for non-positive session_deadline")
		}
	})
}
