package scoreboard

import (
	"sort"
	"strings"
)

// Team is a display-only team entry.
type Team struct {
	ID    string
	Name  string
	Score int
	Color string
}

// Standing is a ranked team with its score bar.
type Standing struct {
	Team
	Rank    int
	Leading bool
	Bar     float64
}

// SampleTeams are shown when no teams are configured.
func SampleTeams() []Team {
	return []Team{
		{ID: "valmiki", Name: "Team Valmiki", Score: 40, Color: "214"},
		{ID: "vyasa", Name: "Team Vyasa", Score: 30, Color: "39"},
		{ID: "kalidasa", Name: "Team Kalidasa", Score: 25, Color: "170"},
		{ID: "tulsidas", Name: "Team Tulsidas", Score: 15, Color: "71"},
	}
}

// Standings ranks teams by score, highest first.
func Standings(teams []Team) []Standing {
	sorted := make([]Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	maxScore := 1
	for _, team := range sorted {
		if team.Score > maxScore {
			maxScore = team.Score
		}
	}
	standings := make([]Standing, 0, len(sorted))
	for i, team := range sorted {
		bar := float64(team.Score) / float64(maxScore)
		if bar < 0 {
			bar = 0
		}
		standings = append(standings, Standing{
			Team:    team,
			Rank:    i + 1,
			Leading: i == 0 && team.Score > 0,
			Bar:     bar,
		})
	}
	return standings
}
