package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PRACTIK_API_URL", "")
	t.Setenv("PRACTIK_USER", "")
	t.Setenv("PRACTIK_GRADE", "")
	t.Setenv("PRACTIK_DB", t.TempDir()+"/practik.db")
	t.Setenv("PRACTIK_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Grade != "junior" {
		t.Errorf("Grade = %q, want junior", cfg.Grade)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v, want 15s", cfg.RequestTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PRACTIK_API_URL", "https://api.example.com")
	t.Setenv("PRACTIK_USER", "u-7")
	t.Setenv("PRACTIK_GRADE", "middle")
	t.Setenv("PRACTIK_DB", t.TempDir()+"/p.db")
	t.Setenv("PRACTIK_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.UserID != "u-7" {
		t.Errorf("UserID = %q", cfg.UserID)
	}
	if cfg.Grade != "middle" {
		t.Errorf("Grade = %q", cfg.Grade)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	t.Setenv("PRACTIK_DB", t.TempDir()+"/p.db")
	t.Setenv("PRACTIK_TIMEOUT", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed timeout")
	}
}
