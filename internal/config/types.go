package config

// Config is the parsed .carnival.yml file.
type Config struct {
	Version int          `yaml:"version"`
	Title   string       `yaml:"title,omitempty"`
	Catalog string       `yaml:"catalog,omitempty"`
	Timer   TimerConfig  `yaml:"timer"`
	UI      UIConfig     `yaml:"ui"`
	Teams   []TeamConfig `yaml:"teams,omitempty"`
}

// TimerConfig controls the per-question countdown.
type TimerConfig struct {
	Seconds  int    `yaml:"seconds"`
	OnExpire string `yaml:"on_expire"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// TeamConfig is a display-only team on the scoreboard.
type TeamConfig struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
	Color string `yaml:"color,omitempty"`
}
