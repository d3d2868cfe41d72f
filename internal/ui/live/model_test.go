package live

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"carnival/internal/catalog"
	"carnival/internal/journal"
	"carnival/internal/scoreboard"
	"carnival/internal/session"
	"carnival/internal/shell"
	"carnival/internal/testutil"
)

// TestLandingToQuestion verifies the key path from landing to an open question.
func TestLandingToQuestion(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		m := newTestModel(session.ExpiryPass, nil)
		if !strings.Contains(m.View(), "Press enter to start") {
			t.Fatalf("expected landing call to action")
		}
		m, _ = press(m, keyEnter())
		if m.shell.Screen != shell.ScreenSubjects {
			t.Fatalf("expected subjects screen, got %s", m.shell.Screen)
		}
		m, _ = press(m, keyRunes("l"))
		m, _ = press(m, keyEnter())
		if m.shell.Screen != shell.ScreenQuiz || m.shell.Session.Subject.ID != "geography" {
			t.Fatalf("expected geography board")
		}
		if !strings.Contains(m.View(), "Select a Question") {
			t.Fatalf("expected board view")
		}
		m, cmd := press(m, keyEnter())
		if m.shell.Session.State() != session.StateActive {
			t.Fatalf("expected active question")
		}
		if cmd == nil || m.pending != m.shell.Session.Timer.Generation {
			t.Fatalf("expected a tick to be scheduled")
		}
		if !strings.Contains(m.View(), "GEOGRAPHY Question 1") {
			t.Fatalf("expected question prompt in view")
		}
	})
}

// TestTicksCountDownAndIgnoreStale verifies tick routing by generation.
func TestTicksCountDownAndIgnoreStale(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		m := openFirstQuestion(t, newTestModel(session.ExpiryPass, nil))
		generation := m.shell.Session.Timer.Generation
		m = deliver(m, tickMsg{epoch: m.epoch, generation: generation})
		if m.shell.Session.Timer.Remaining != 2 {
			t.Fatalf("expected remaining 2, got %d", m.shell.Session.Timer.Remaining)
		}
		m, _ = press(m, keyRunes("p"))
		if m.shell.Session.Passes != 1 || m.shell.Session.Timer.Remaining != 3 {
			t.Fatalf("expected pass to restart timer")
		}
		m = deliver(m, tickMsg{epoch: m.epoch, generation: generation})
		if m.shell.Session.Timer.Remaining != 3 {
			t.Fatalf("expected stale tick ignored")
		}
		m = deliver(m, tickMsg{epoch: m.epoch - 1, generation: m.shell.Session.Timer.Generation})
		if m.shell.Session.Timer.Remaining != 3 {
			t.Fatalf("expected tick from previous epoch ignored")
		}
	})
}

// TestExpiryPassesAndLogs verifies the pass policy on expiry and journal output.
func TestExpiryPassesAndLogs(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		var buf bytes.Buffer
		m := openFirstQuestion(t, newTestModel(session.ExpiryPass, &buf))
		for i := 0; i < 3; i++ {
			m = deliver(m, tickMsg{epoch: m.epoch, generation: m.pending})
		}
		sess := m.shell.Session
		if sess.Passes != 1 || sess.Timer.Remaining != 3 || !sess.Timer.Running {
			t.Fatalf("expected auto pass, got passes=%d timer=%+v", sess.Passes, sess.Timer)
		}
		if !strings.Contains(buf.String(), "session.tick") || !strings.Contains(buf.String(), "expired=true") {
			t.Fatalf("expected expiry logged, got %q", buf.String())
		}
		if got := strings.Count(buf.String(), "session.tick"); got != 1 {
			t.Fatalf("expected only the expiring tick logged, got %d lines:\n%s", got, buf.String())
		}
	})
}

// TestRevealAndAdvance verifies reveal, option locking, and advance.
func TestRevealAndAdvance(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		m := newTestModel(session.ExpiryStop, nil)
		m, _ = press(m, keyEnter())
		m, _ = press(m, keyEnter())
		m, _ = press(m, keyEnter())
		m, _ = press(m, keyRunes("a"))
		m, _ = press(m, keyRunes("r"))
		sess := m.shell.Session
		if sess.State() != session.StateRevealed || sess.Timer.Running {
			t.Fatalf("expected revealed with stopped timer")
		}
		view := m.View()
		if !strings.Contains(view, "✓ B. Valmiki") || !strings.Contains(view, "✗ A. Vyasa") {
			t.Fatalf("expected option highlighting, got:\n%s", view)
		}
		m, _ = press(m, keyRunes("b"))
		if *m.shell.Session.Choice != 0 {
			t.Fatalf("expected choice locked after reveal")
		}
		m, _ = press(m, keyRunes("n"))
		if m.shell.Session.State() != session.StateBoard || !m.shell.Session.IsAnswered("history1") {
			t.Fatalf("expected board with history1 answered")
		}
		if m.boardCursor != 1 {
			t.Fatalf("expected cursor on next open tile, got %d", m.boardCursor)
		}
		m.boardCursor = 0
		m, _ = press(m, keyEnter())
		if m.shell.Session.State() != session.StateBoard {
			t.Fatalf("expected answered tile to stay closed")
		}
		if !strings.Contains(m.View(), "already been answered") {
			t.Fatalf("expected rejection notice")
		}
	})
}

// TestRevealShowsAnswerWithoutCorrectOption verifies answers given as text on
// multiple-choice questions are graded and shown on reveal.
func TestRevealShowsAnswerWithoutCorrectOption(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		cat, err := catalog.Normalize(catalog.Catalog{
			Version: 1,
			Subjects: []catalog.Subject{{
				ID:   "geography",
				Name: "Geography",
				Questions: []catalog.Question{
					{Prompt: "Highest peak on Earth?", Options: []string{"K2", "Everest"}, Answer: "Everest"},
					{Prompt: "Longest river in Nepal?", Options: []string{"Karnali", "Koshi"}, Answer: "Karnali River"},
				},
			}},
		})
		if err != nil {
			t.Fatalf("normalize catalog: %v", err)
		}
		m := NewModel(shell.New(cat, shell.Settings{Seconds: 3, Expiry: session.ExpiryStop}), Options{NoColor: true})
		m = openFirstQuestion(t, m)
		m, _ = press(m, keyRunes("b"))
		m, _ = press(m, keyRunes("r"))
		view := m.View()
		if !strings.Contains(view, "✓ B. Everest") || !strings.Contains(view, "Correct!") {
			t.Fatalf("expected derived correct option, got:\n%s", view)
		}

		m, _ = press(m, keyRunes("n"))
		m, _ = press(m, keyEnter())
		m, _ = press(m, keyRunes("a"))
		m, _ = press(m, keyRunes("r"))
		view = m.View()
		if !strings.Contains(view, "Karnali River") {
			t.Fatalf("expected answer text on reveal, got:\n%s", view)
		}
		if strings.Contains(view, "Incorrect") || strings.Contains(view, "✗") {
			t.Fatalf("expected no verdict without a known option, got:\n%s", view)
		}
	})
}

// TestBackAndCompletion verifies back navigation and complete subjects.
func TestBackAndCompletion(t *testing.T) {
	runWithTimeout(t, time.Second, func() {
		m := newTestModel(session.ExpiryPass, nil)
		m, _ = press(m, keyEnter())
		m, _ = press(m, keyRunes("l"))
		m, _ = press(m, keyEnter())
		for i := 0; i < 2; i++ {
			m, _ = press(m, keyEnter())
			m, _ = press(m, keyRunes("r"))
			m, _ = press(m, keyRunes("n"))
		}
		m, _ = press(m, keyEsc())
		if m.shell.Screen != shell.ScreenSubjects || !m.shell.IsComplete("geography") {
			t.Fatalf("expected geography complete on subjects screen")
		}
		if !strings.Contains(m.View(), "✓ complete") {
			t.Fatalf("expected complete marker")
		}
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
		if m.shell.Screen != shell.ScreenLanding || len(m.shell.Completed()) != 0 {
			t.Fatalf("expected reset to landing")
		}
		m, cmd := press(m, keyRunes("q"))
		if cmd == nil || m.View() != "" {
			t.Fatalf("expected quit")
		}
	})
}

// TestMoveCursor verifies grid cursor bounds.
func TestMoveCursor(t *testing.T) {
	cases := []struct {
		cursor int
		dir    direction
		want   int
	}{
		{cursor: 0, dir: dirLeft, want: 0},
		{cursor: 0, dir: dirRight, want: 1},
		{cursor: 0, dir: dirDown, want: 10},
		{cursor: 15, dir: dirDown, want: 15},
		{cursor: 15, dir: dirUp, want: 5},
		{cursor: 19, dir: dirRight, want: 19},
	}
	for _, tc := range cases {
		if got := moveCursor(tc.cursor, 20, boardColumns, tc.dir); got != tc.want {
			t.Fatalf("moveCursor(%d, %d) = %d, want %d", tc.cursor, tc.dir, got, tc.want)
		}
	}
}

// TestProgressBar verifies bar rendering bounds.
func TestProgressBar(t *testing.T) {
	if got := progressBar(0.5, 4); got != "██░░" {
		t.Fatalf("unexpected bar %q", got)
	}
	if got := progressBar(2, 2); got != "██" {
		t.Fatalf("unexpected clamped bar %q", got)
	}
}

func newTestModel(policy session.ExpiryPolicy, buf io.Writer) Model {
	correct := 1
	history := catalog.Generate("history", 3)
	history[0].Options = []string{"Vyasa", "Valmiki"}
	history[0].CorrectOption = &correct
	cat := catalog.Catalog{
		Version: 1,
		Title:   "Test Carnival",
		Subjects: []catalog.Subject{
			{ID: "history", Name: "History", Questions: history},
			{ID: "geography", Name: "Geography", Questions: catalog.Generate("geography", 2)},
		},
	}
	var j *journal.Journal
	if buf != nil {
		j = journal.New(buf, journal.Options{GameID: "test", Clock: testutil.NewFakeClock(time.Unix(0, 0))})
	}
	sh := shell.New(cat, shell.Settings{Seconds: 3, Expiry: policy})
	return NewModel(sh, Options{Teams: scoreboard.SampleTeams(), NoColor: true, Journal: j})
}

func openFirstQuestion(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = press(m, keyEnter())
	m, _ = press(m, keyEnter())
	m, _ = press(m, keyEnter())
	if m.shell.Session == nil || m.shell.Session.State() != session.StateActive {
		t.Fatalf("expected an open question")
	}
	return m
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func deliver(m Model, msg tickMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func keyEsc() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEsc} }

func keyRunes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

// runWithTimeout executes a test body with a timeout.
func runWithTimeout(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := testutil.Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test timed out")
	}
}
