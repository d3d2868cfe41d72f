package session

import (
	"fmt"
	"maps"
)

// Reduce applies an action to the session. Ignored actions leave the
// session untouched and report the guard that rejected them.
func Reduce(s Session, action Action) (Session, Outcome) {
	switch action.Kind {
	case ActionSelect:
		return selectQuestion(s, action.QuestionID)
	case ActionChoose:
		return choose(s, action.Option)
	case ActionPass:
		return pass(s)
	case ActionReveal:
		return reveal(s)
	case ActionAdvance:
		return advance(s)
	case ActionTick:
		return tick(s, action.Generation)
	case ActionCancel:
		return cancel(s)
	default:
		return s, rejected(fmt.Errorf("%w: %s", ErrWrongState, action.Kind))
	}
}

// selectQuestion opens an unanswered question and starts the countdown.
func selectQuestion(s Session, questionID string) (Session, Outcome) {
	if s.State() != StateBoard {
		return s, rejected(ErrWrongState)
	}
	question, ok := s.Subject.Question(questionID)
	if !ok {
		return s, rejected(ErrUnknownQuestion)
	}
	if s.IsAnswered(questionID) {
		return s, rejected(ErrAnswered)
	}
	s.Current = &question
	s.Revealed = false
	s.Passes = 0
	s.Choice = nil
	s.Timer = s.Timer.Restart()
	s.LastEvent = s.questionLabel() + " selected"
	return s, applied()
}

// choose records a tentative option before the reveal.
func choose(s Session, option int) (Session, Outcome) {
	if s.State() != StateActive {
		return s, rejected(ErrWrongState)
	}
	if !s.Current.HasOptions() {
		return s, rejected(ErrNoOptions)
	}
	if option < 0 || option >= len(s.Current.Options) {
		return s, rejected(ErrOptionRange)
	}
	s.Choice = &option
	return s, applied()
}

// pass keeps the question open and restarts the countdown.
func pass(s Session) (Session, Outcome) {
	if s.State() != StateActive {
		return s, rejected(ErrWrongState)
	}
	s.Passes++
	s.Timer = s.Timer.Restart()
	s.LastEvent = fmt.Sprintf("%s passed (%d)", s.questionLabel(), s.Passes)
	return s, applied()
}

// reveal exposes the answer and stops the countdown.
func reveal(s Session) (Session, Outcome) {
	if s.State() != StateActive {
		return s, rejected(ErrWrongState)
	}
	s.Revealed = true
	s.Timer = s.Timer.Stop()
	s.LastEvent = s.questionLabel() + " revealed"
	return s, applied()
}

// advance marks the revealed question answered and returns to the board.
func advance(s Session) (Session, Outcome) {
	switch s.State() {
	case StateBoard:
		return s, rejected(ErrNoSelection)
	case StateActive:
		return s, rejected(ErrWrongState)
	}
	answered := maps.Clone(s.Answered)
	if answered == nil {
		answered = map[string]struct{}{}
	}
	answered[s.Current.ID] = struct{}{}
	s.LastEvent = s.questionLabel() + " answered"
	s.Answered = answered
	s = clearSelection(s)
	return s, applied()
}

// cancel closes the open question and leaves it selectable.
func cancel(s Session) (Session, Outcome) {
	if s.State() == StateBoard {
		return s, rejected(ErrNoSelection)
	}
	s.LastEvent = s.questionLabel() + " closed"
	s = clearSelection(s)
	return s, applied()
}

// tick advances the countdown and applies the expiry policy once.
func tick(s Session, generation int) (Session, Outcome) {
	if !s.Timer.Accepts(generation) {
		return s, rejected(ErrStaleTick)
	}
	if s.State() != StateActive {
		return s, rejected(ErrWrongState)
	}
	var expired bool
	s.Timer, expired = s.Timer.Tick()
	if !expired {
		return s, applied()
	}
	label := s.questionLabel()
	var outcome Outcome
	switch s.Expiry {
	case ExpiryReveal:
		s, outcome = reveal(s)
	case ExpiryStop:
		outcome = applied()
	default:
		s, outcome = pass(s)
	}
	s.LastEvent = fmt.Sprintf("time up on %s (%s)", label, s.Expiry)
	outcome.Expired = true
	return s, outcome
}

func clearSelection(s Session) Session {
	s.Current = nil
	s.Revealed = false
	s.Choice = nil
	s.Passes = 0
	s.Timer = s.Timer.Reset()
	return s
}

func applied() Outcome {
	return Outcome{Applied: true}
}

func rejected(err error) Outcome {
	return Outcome{Err: err}
}
