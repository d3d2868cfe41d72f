package shell

import (
	"errors"
	"fmt"

	"carnival/internal/catalog"
	"carnival/internal/session"
)

// Screen is the top-level view of the carnival.
type Screen int

const (
	// ScreenLanding is the hero screen.
	ScreenLanding Screen = iota
	// ScreenSubjects is the subject-selection grid.
	ScreenSubjects
	// ScreenQuiz is the board and question view of one subject.
	ScreenQuiz
)

// String returns the screen name used in logs.
func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "landing"
	case ScreenSubjects:
		return "subjects"
	case ScreenQuiz:
		return "quiz"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// ErrWrongScreen is returned when a navigation is not valid from the current screen.
var ErrWrongScreen = errors.New("navigation not allowed from current screen")

// ErrUnknownSubject is returned when opening a subject that is not in the catalog.
var ErrUnknownSubject = errors.New("unknown subject")

// Settings configures the sessions opened by the shell.
type Settings struct {
	Seconds int
	Expiry  session.ExpiryPolicy
}

// Shell holds navigation state and the per-subject answered sets.
type Shell struct {
	Screen   Screen
	Catalog  catalog.Catalog
	Settings Settings
	Session  *session.Session
	answered map[string]map[string]struct{}
}

// New creates a shell on the landing screen.
func New(cat catalog.Catalog, settings Settings) *Shell {
	return &Shell{
		Screen:   ScreenLanding,
		Catalog:  cat,
		Settings: settings,
		answered: map[string]map[string]struct{}{},
	}
}

// Start moves from the landing screen to subject selection.
func (s *Shell) Start() error {
	if s.Screen != ScreenLanding {
		return ErrWrongScreen
	}
	s.Screen = ScreenSubjects
	return nil
}

// Home returns from subject selection to the landing screen.
func (s *Shell) Home() error {
	if s.Screen != ScreenSubjects {
		return ErrWrongScreen
	}
	s.Screen = ScreenLanding
	return nil
}

// OpenSubject enters the quiz screen for subjectID.
func (s *Shell) OpenSubject(subjectID string) error {
	if s.Screen != ScreenSubjects {
		return ErrWrongScreen
	}
	subject, ok := s.Catalog.Subject(subjectID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSubject, subjectID)
	}
	sess := session.New(subject, session.Options{
		Seconds:  s.Settings.Seconds,
		Expiry:   s.Settings.Expiry,
		Answered: s.AnsweredIDs(subjectID),
	})
	s.Session = &sess
	s.Screen = ScreenQuiz
	return nil
}

// Back leaves the quiz screen, closing any open question first.
func (s *Shell) Back() error {
	if s.Screen != ScreenQuiz {
		return ErrWrongScreen
	}
	if s.Session != nil {
		if s.Session.State() != session.StateBoard {
			next, _ := session.Reduce(*s.Session, session.Cancel())
			s.Session = &next
		}
		s.sync()
	}
	s.Session = nil
	s.Screen = ScreenSubjects
	return nil
}

// Dispatch applies a session action on the quiz screen.
func (s *Shell) Dispatch(action session.Action) (session.Outcome, error) {
	if s.Screen != ScreenQuiz || s.Session == nil {
		return session.Outcome{}, ErrWrongScreen
	}
	next, outcome := session.Reduce(*s.Session, action)
	s.Session = &next
	if outcome.Applied {
		s.sync()
	}
	return outcome, nil
}

// Reset clears all progress and returns to the landing screen.
func (s *Shell) Reset() {
	s.answered = map[string]map[string]struct{}{}
	s.Session = nil
	s.Screen = ScreenLanding
}

// AnsweredIDs returns the answered question ids of subjectID in board order.
func (s *Shell) AnsweredIDs(subjectID string) []string {
	subject, ok := s.Catalog.Subject(subjectID)
	if !ok {
		return nil
	}
	set := s.answered[subjectID]
	ids := make([]string, 0, len(set))
	for _, question := range subject.Questions {
		if _, done := set[question.ID]; done {
			ids = append(ids, question.ID)
		}
	}
	return ids
}

// IsComplete reports whether every question of subjectID is answered.
func (s *Shell) IsComplete(subjectID string) bool {
	subject, ok := s.Catalog.Subject(subjectID)
	if !ok || subject.Len() == 0 {
		return false
	}
	return len(s.answered[subjectID]) == subject.Len()
}

// Completed returns the ids of complete subjects in catalog order.
func (s *Shell) Completed() []string {
	var ids []string
	for _, subject := range s.Catalog.Subjects {
		if s.IsComplete(subject.ID) {
			ids = append(ids, subject.ID)
		}
	}
	return ids
}

// sync copies the session's answered set into the shell.
func (s *Shell) sync() {
	if s.Session == nil {
		return
	}
	set := make(map[string]struct{}, len(s.Session.Answered))
	for id := range s.Session.Answered {
		set[id] = struct{}{}
	}
	s.answered[s.Session.Subject.ID] = set
}
