package config

import (
	"testing"
	"time"
)

func TestLoadWithAliasEnv(t *testing.T) {
	t.Setenv("GAZETA_CONFIG", "config/does-not-exist.yaml")
	t.Setenv("GAZETA_DB_DRIVER", "sqlite")
	t.Setenv("GAZETA_DB_PATH", "test.db")
	t.Setenv("GAZETA_LISTEN_ADDR", "127.0.0.1:8080")
	t.Setenv("PORT", "9090")
	t.Setenv("PEPPER", "pepper")
	t.Setenv("DATA_PATH", "var/uploads")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9090" {
		t.Fatalf("unexpected listen addr: %s", cfg.ListenAddr)
	}
	if cfg.Pepper != "pepper" {
		t.Fatalf("PEPPER alias not applied")
	}
	if cfg.UploadRoot != "var/uploads" {
		t.Fatalf("unexpected upload root: %s", cfg.UploadRoot)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("unexpected default session ttl: %s", cfg.SessionTTL)
	}
}

func TestBaseURLUsesListenPort(t *testing.T) {
	cfg := &AppConfig{Protocol: "http", Host: "jornal.example", ListenAddr: "0.0.0.0:5000"}
	if got := cfg.BaseURL(); got != "http://jornal.example:5000" {
		t.Fatalf("unexpected base url: %s", got)
	}
}
