package scoreboard

import "testing"

// TestStandingsOrder verifies ranking, leader flag, and bar fractions.
func TestStandingsOrder(t *testing.T) {
	standings := Standings([]Team{
		{ID: "b", Name: "Bravo", Score: 10},
		{ID: "a", Name: "Alpha", Score: 20},
		{ID: "c", Name: "charlie", Score: 10},
	})
	if standings[0].ID != "a" || standings[0].Rank != 1 || !standings[0].Leading {
		t.Fatalf("expected Alpha leading, got %+v", standings[0])
	}
	if standings[1].ID != "b" || standings[2].ID != "c" {
		t.Fatalf("expected ties ordered by name, got %s, %s", standings[1].ID, standings[2].ID)
	}
	if standings[1].Bar != 0.5 || standings[1].Leading {
		t.Fatalf("unexpected second standing %+v", standings[1])
	}
}

// TestStandingsAllZero verifies nobody leads without points.
func TestStandingsAllZero(t *testing.T) {
	standings := Standings([]Team{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}})
	for _, standing := range standings {
		if standing.Leading || standing.Bar != 0 {
			t.Fatalf("unexpected standing %+v", standing)
		}
	}
	if len(Standings(nil)) != 0 {
		t.Fatalf("expected empty standings")
	}
}
