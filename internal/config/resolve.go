package config

import (
	"carnival/internal/catalog"
	"carnival/internal/scoreboard"
	"carnival/internal/session"
	"carnival/internal/shell"
)

// LoadCatalog returns the configured catalog, or the builtin one.
func (c Config) LoadCatalog() (catalog.Catalog, error) {
	if c.Catalog == "" {
		return catalog.Builtin(), nil
	}
	return catalog.Load(c.Catalog)
}

// DisplayTitle picks the carnival title from config, then catalog.
func (c Config) DisplayTitle(cat catalog.Catalog) string {
	switch {
	case c.Title != "":
		return c.Title
	case cat.Title != "":
		return cat.Title
	default:
		return catalog.DefaultTitle
	}
}

// ShellSettings converts the timer section into shell settings.
func (c Config) ShellSettings() (shell.Settings, error) {
	policy, err := session.ParseExpiryPolicy(c.Timer.OnExpire)
	if err != nil {
		return shell.Settings{}, err
	}
	return shell.Settings{Seconds: c.Timer.Seconds, Expiry: policy}, nil
}

// ScoreTeams returns configured teams, or the sample teams when none are set.
func (c Config) ScoreTeams() []scoreboard.Team {
	if len(c.Teams) == 0 {
		return scoreboard.SampleTeams()
	}
	teams := make([]scoreboard.Team, 0, len(c.Teams))
	for _, team := range c.Teams {
		teams = append(teams, scoreboard.Team{ID: team.ID, Name: team.Name, Score: team.Score, Color: team.Color})
	}
	return teams
}
