package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"carnival/internal/catalog"
	"carnival/internal/scoreboard"
)

// Scaffold writes a default config file to path. It refuses to overwrite.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	data, err := renderScaffold()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// renderScaffold marshals the default config with sample teams.
func renderScaffold() ([]byte, error) {
	cfg := Default()
	cfg.Title = catalog.DefaultTitle
	for _, team := range scoreboard.SampleTeams() {
		cfg.Teams = append(cfg.Teams, TeamConfig{ID: team.ID, Name: team.Name, Score: team.Score, Color: team.Color})
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	header := []byte("# Valmiki Quiz Carnival settings.\n# timer.on_expire: pass | reveal | stop\n# ui.mode: auto | live | plain\n")
	return append(header, data...), nil
}
