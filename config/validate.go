package config

import (
	"fmt"
	"strings"
)

func Validate(cfg *AppConfig) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	switch cfg.DBDriver {
	case "", "postgres", "pg", "sqlite":
	default:
		return fmt.Errorf("unsupported db_driver: %s", cfg.DBDriver)
	}
	if (cfg.DBDriver == "postgres" || cfg.DBDriver == "pg") && strings.TrimSpace(cfg.DBURL) == "" {
		return fmt.Errorf("db_url must be set for postgres driver")
	}
	if cfg.DBDriver == "sqlite" && strings.TrimSpace(cfg.DBPath) == "" {
		return fmt.Errorf("db_path must be set for sqlite driver")
	}
	if cfg.Protocol != "http" && cfg.Protocol != "https" {
		return fmt.Errorf("unsupported protocol: %s", cfg.Protocol)
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	if cfg.MaxUpload <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}
	for _, a := range cfg.AdminUsers {
		if strings.TrimSpace(a.Username) == "" || a.Password == "" {
			return fmt.Errorf("admin_users entries need username and password")
		}
	}
	return nil
}
