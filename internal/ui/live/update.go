package live

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"carnival/internal/session"
	"carnival/internal/shell"
)

// handleKey routes a key press for the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.journal.Event("ui.quit", "screen", m.shell.Screen)
		m.quitting = true
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.shell.Reset()
		m = m.leaveQuiz()
		m.subjectCursor = 0
		m.journal.Event("shell.reset")
		return m, nil
	}
	switch m.shell.Screen {
	case shell.ScreenLanding:
		return m.handleLandingKey(msg), nil
	case shell.ScreenSubjects:
		return m.handleSubjectsKey(msg), nil
	case shell.ScreenQuiz:
		return m.handleQuizKey(msg), nil
	}
	return m, nil
}

func (m Model) handleLandingKey(msg tea.KeyMsg) Model {
	if key.Matches(msg, m.keys.Enter) {
		m.navigate("start", m.shell.Start())
	}
	return m
}

func (m Model) handleSubjectsKey(msg tea.KeyMsg) Model {
	count := len(m.shell.Catalog.Subjects)
	switch {
	case key.Matches(msg, m.keys.Back):
		m.navigate("home", m.shell.Home())
	case key.Matches(msg, m.keys.Enter):
		if count == 0 {
			return m
		}
		subject := m.shell.Catalog.Subjects[m.subjectCursor]
		if m.navigate("open", m.shell.OpenSubject(subject.ID)) {
			m.epoch++
			m.pending = -1
			m.boardCursor = firstOpenTile(m.shell)
		}
	default:
		m.subjectCursor = moveCursor(m.subjectCursor, count, subjectColumns, m.direction(msg))
	}
	return m
}

func (m Model) handleQuizKey(msg tea.KeyMsg) Model {
	sess := m.shell.Session
	if sess == nil {
		return m
	}
	switch sess.State() {
	case session.StateBoard:
		switch {
		case key.Matches(msg, m.keys.Back):
			if m.navigate("back", m.shell.Back()) {
				m = m.leaveQuiz()
			}
		case key.Matches(msg, m.keys.Enter):
			questions := sess.Subject.Questions
			if len(questions) > 0 {
				m.dispatch(session.Select(questions[m.boardCursor].ID))
			}
		default:
			m.boardCursor = moveCursor(m.boardCursor, sess.Subject.Len(), boardColumns, m.direction(msg))
		}
	case session.StateActive:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.dispatch(session.Cancel())
		case key.Matches(msg, m.keys.Pass):
			m.dispatch(session.Pass())
		case key.Matches(msg, m.keys.Reveal):
			m.dispatch(session.Reveal())
		case key.Matches(msg, m.keys.Choose):
			m.dispatch(session.Choose(optionIndex(msg)))
		}
	case session.StateRevealed:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.dispatch(session.Cancel())
		case key.Matches(msg, m.keys.Next):
			if m.dispatch(session.Advance()) {
				m.boardCursor = firstOpenTile(m.shell)
			}
		}
	}
	return m
}

// handleTick forwards a countdown tick when it belongs to the running timer.
func (m Model) handleTick(msg tickMsg) Model {
	if msg.epoch != m.epoch || msg.generation != m.pending {
		return m
	}
	m.pending = -1
	if m.shell.Session == nil {
		return m
	}
	outcome, err := m.shell.Dispatch(session.Tick(msg.generation))
	if err != nil {
		return m
	}
	// Only the tick that expires the countdown is journaled.
	if outcome.Expired {
		m.logOutcome(session.Tick(msg.generation), outcome)
	}
	return m
}

// dispatch applies a session action, logs it, and reports whether it applied.
func (m *Model) dispatch(action session.Action) bool {
	outcome, err := m.shell.Dispatch(action)
	if err != nil {
		m.journal.Event("session."+action.Kind.String(), "err", err)
		return false
	}
	m.logOutcome(action, outcome)
	if !outcome.Applied {
		m.notice = rejectionNotice(outcome.Err)
	}
	return outcome.Applied
}

func (m *Model) logOutcome(action session.Action, outcome session.Outcome) {
	sess := m.shell.Session
	fields := []any{"subject", sess.Subject.ID, "applied", outcome.Applied, "state", sess.State()}
	if action.QuestionID != "" {
		fields = append(fields, "question", action.QuestionID)
	} else if sess.Current != nil {
		fields = append(fields, "question", sess.Current.ID)
	}
	if outcome.Expired {
		fields = append(fields, "expired", true, "policy", sess.Expiry)
	}
	if outcome.Err != nil {
		fields = append(fields, "err", outcome.Err)
	}
	fields = append(fields, "remaining", sess.Timer.Remaining, "passes", sess.Passes)
	m.journal.Event("session."+action.Kind.String(), fields...)
}

// navigate logs a shell transition and reports success.
func (m *Model) navigate(name string, err error) bool {
	if err != nil {
		m.journal.Event("shell."+name, "err", err)
		return false
	}
	m.journal.Event("shell."+name, "screen", m.shell.Screen)
	return true
}

func (m Model) leaveQuiz() Model {
	m.epoch++
	m.pending = -1
	m.boardCursor = 0
	return m
}

// rejectionNotice turns a guard error into a short footer message.
func rejectionNotice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, session.ErrAnswered):
		return "That question has already been answered."
	case errors.Is(err, session.ErrOptionRange):
		return "No such option."
	case errors.Is(err, session.ErrNoOptions):
		return "This question has no options."
	default:
		return ""
	}
}

// direction maps arrow bindings to a cursor delta.
type direction int

const (
	dirNone direction = iota
	dirUp
	dirDown
	dirLeft
	dirRight
)

func (m Model) direction(msg tea.KeyMsg) direction {
	switch {
	case key.Matches(msg, m.keys.Up):
		return dirUp
	case key.Matches(msg, m.keys.Down):
		return dirDown
	case key.Matches(msg, m.keys.Left):
		return dirLeft
	case key.Matches(msg, m.keys.Right):
		return dirRight
	default:
		return dirNone
	}
}

// moveCursor moves within a grid of count cells laid out in columns.
func moveCursor(cursor, count, columns int, dir direction) int {
	if count == 0 {
		return 0
	}
	next := cursor
	switch dir {
	case dirUp:
		next -= columns
	case dirDown:
		next += columns
	case dirLeft:
		next--
	case dirRight:
		next++
	}
	if next < 0 || next >= count {
		return cursor
	}
	return next
}

// optionIndex maps a-f to 0-5.
func optionIndex(msg tea.KeyMsg) int {
	text := msg.String()
	if len(text) != 1 {
		return -1
	}
	return int(text[0] - 'a')
}

// firstOpenTile returns the first unanswered tile on the board.
func firstOpenTile(sh *shell.Shell) int {
	if sh.Session == nil {
		return 0
	}
	for i, question := range sh.Session.Subject.Questions {
		if !sh.Session.IsAnswered(question.ID) {
			return i
		}
	}
	return 0
}
