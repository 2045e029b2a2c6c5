package config

import "time"

type AppConfig struct {
	ListenAddr string        `yaml:"listen_addr" env:"GAZETA_LISTEN_ADDR" env-default:":8080"`
	Protocol   string        `yaml:"protocol" env:"GAZETA_PROTOCOL" env-default:"http"`
	Host       string        `yaml:"host" env:"GAZETA_HOST" env-default:"localhost"`
	DBDriver   string        `yaml:"db_driver" env:"GAZETA_DB_DRIVER"`
	DBURL      string        `yaml:"db_url" env:"GAZETA_DB_URL"`
	DBPath     string        `yaml:"db_path" env:"GAZETA_DB_PATH"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"GAZETA_SESSION_TTL" env-default:"12h"`
	Pepper     string        `yaml:"pepper" env:"GAZETA_PEPPER"`
	UploadRoot string        `yaml:"upload_root" env:"GAZETA_UPLOAD_ROOT" env-default:"uploads"`
	MaxUpload  int64         `yaml:"max_upload_bytes" env:"GAZETA_MAX_UPLOAD_BYTES" env-default:"16777216"`

	// AdminUsers is the static privileged credential list. Entries here always
	// authenticate with the Administrador role and are checked before the user store.
	AdminUsers []AdminUser `yaml:"admin_users"`
}

type AdminUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// BaseURL is the externally reachable origin used when rendering capability links
// (department apply and journal approval URLs).
func (c *AppConfig) BaseURL() string {
	port := ""
	if i := lastColon(c.ListenAddr); i >= 0 {
		port = c.ListenAddr[i:]
	}
	return c.Protocol + "://" + c.Host + port
}

func lastColon(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ':' {
			return i
		}
	}
	return -1
}
