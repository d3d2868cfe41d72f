package config

import (
	"path/filepath"
	"strings"

	"carnival/internal/timer"
)

// Default returns the configuration used when no file is found.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg, "")
	return cfg
}

// Normalize fills defaults and resolves the catalog path against baseDir.
func Normalize(cfg *Config, baseDir string) {
	cfg.Title = strings.TrimSpace(cfg.Title)
	cfg.Catalog = strings.TrimSpace(cfg.Catalog)
	if cfg.Catalog != "" && baseDir != "" && !filepath.IsAbs(cfg.Catalog) {
		cfg.Catalog = filepath.Join(baseDir, cfg.Catalog)
	}
	if cfg.Timer.Seconds == 0 {
		cfg.Timer.Seconds = timer.DefaultSeconds
	}
	cfg.Timer.OnExpire = strings.ToLower(strings.TrimSpace(cfg.Timer.OnExpire))
	if cfg.Timer.OnExpire == "" {
		cfg.Timer.OnExpire = "pass"
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "auto"
	}
	for i := range cfg.Teams {
		cfg.Teams[i].ID = strings.TrimSpace(cfg.Teams[i].ID)
		cfg.Teams[i].Name = strings.TrimSpace(cfg.Teams[i].Name)
		if cfg.Teams[i].Name == "" {
			cfg.Teams[i].Name = cfg.Teams[i].ID
		}
	}
}
