package session

import (
	"fmt"

	"carnival/internal/catalog"
	"carnival/internal/timer"
)

// New creates a session on the board of subject.
func New(subject catalog.Subject, opts Options) Session {
	seconds := opts.Seconds
	if seconds <= 0 {
		seconds = timer.DefaultSeconds
	}
	expiry := opts.Expiry
	if expiry == "" {
		expiry = ExpiryPass
	}
	answered := make(map[string]struct{}, len(opts.Answered))
	for _, id := range opts.Answered {
		if _, ok := subject.Question(id); ok {
			answered[id] = struct{}{}
		}
	}
	return Session{
		Subject:  subject,
		Answered: answered,
		Timer:    timer.New(seconds),
		Expiry:   expiry,
	}
}

// State reports the current lifecycle state.
func (s Session) State() State {
	switch {
	case s.Current == nil:
		return StateBoard
	case s.Revealed:
		return StateRevealed
	default:
		return StateActive
	}
}

// IsAnswered reports whether questionID has been answered.
func (s Session) IsAnswered(questionID string) bool {
	_, ok := s.Answered[questionID]
	return ok
}

// Selectable reports whether questionID can be opened from the board.
func (s Session) Selectable(questionID string) bool {
	if s.State() != StateBoard || s.IsAnswered(questionID) {
		return false
	}
	_, ok := s.Subject.Question(questionID)
	return ok
}

// Progress returns the answered and total question counts.
func (s Session) Progress() (int, int) {
	return len(s.Answered), s.Subject.Len()
}

// Complete reports whether every question on the board is answered.
func (s Session) Complete() bool {
	answered, total := s.Progress()
	return total > 0 && answered == total
}

// AnsweredIDs returns answered question ids in board order.
func (s Session) AnsweredIDs() []string {
	ids := make([]string, 0, len(s.Answered))
	for _, question := range s.Subject.Questions {
		if s.IsAnswered(question.ID) {
			ids = append(ids, question.ID)
		}
	}
	return ids
}

// ChoiceVerdict grades the host's choice once the answer is revealed. A
// question without a known correct option grades as VerdictNone.
func (s Session) ChoiceVerdict() Verdict {
	if !s.Revealed || s.Current == nil || s.Choice == nil || s.Current.CorrectOption == nil {
		return VerdictNone
	}
	if s.Current.IsCorrect(*s.Choice) {
		return VerdictCorrect
	}
	return VerdictIncorrect
}

// questionLabel formats the open question for event messages.
func (s Session) questionLabel() string {
	if s.Current == nil {
		return ""
	}
	return fmt.Sprintf("Q%d", s.Current.Number)
}
