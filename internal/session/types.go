package session

import (
	"errors"
	"fmt"
	"strings"

	"carnival/internal/catalog"
	"carnival/internal/timer"
)

// State is the position of a session in the question lifecycle.
type State int

const (
	// StateBoard means no question is selected.
	StateBoard State = iota
	// StateActive means a question is open and not yet revealed.
	StateActive
	// StateRevealed means the answer of the open question is shown.
	StateRevealed
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateBoard:
		return "board"
	case StateActive:
		return "active"
	case StateRevealed:
		return "revealed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ExpiryPolicy selects what happens when the countdown reaches zero.
type ExpiryPolicy string

const (
	// ExpiryPass passes the question and restarts the countdown.
	ExpiryPass ExpiryPolicy = "pass"
	// ExpiryReveal reveals the answer.
	ExpiryReveal ExpiryPolicy = "reveal"
	// ExpiryStop leaves the countdown at zero for the host to decide.
	ExpiryStop ExpiryPolicy = "stop"
)

// ParseExpiryPolicy validates a policy name; empty selects ExpiryPass.
func ParseExpiryPolicy(value string) (ExpiryPolicy, error) {
	normalized := ExpiryPolicy(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case "":
		return ExpiryPass, nil
	case ExpiryPass, ExpiryReveal, ExpiryStop:
		return normalized, nil
	default:
		return "", fmt.Errorf("invalid expiry policy %q (expected pass|reveal|stop)", value)
	}
}

// Guard errors returned in Outcome when an action is ignored.
var (
	ErrAnswered        = errors.New("question already answered")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrNoSelection     = errors.New("no question selected")
	ErrWrongState      = errors.New("action not allowed in current state")
	ErrNoOptions       = errors.New("question has no options")
	ErrOptionRange     = errors.New("option out of range")
	ErrStaleTick       = errors.New("stale timer tick")
)

// ActionKind identifies a session action.
type ActionKind int

const (
	// ActionSelect opens a question from the board.
	ActionSelect ActionKind = iota
	// ActionChoose records the host's choice on a multiple-choice question.
	ActionChoose
	// ActionPass defers the open question and restarts the countdown.
	ActionPass
	// ActionReveal exposes the answer of the open question.
	ActionReveal
	// ActionAdvance marks the revealed question answered and returns to the board.
	ActionAdvance
	// ActionTick forwards a one-second countdown tick.
	ActionTick
	// ActionCancel closes the open question without answering it.
	ActionCancel
)

// String returns the action name used in logs.
func (k ActionKind) String() string {
	switch k {
	case ActionSelect:
		return "select"
	case ActionChoose:
		return "choose"
	case ActionPass:
		return "pass"
	case ActionReveal:
		return "reveal"
	case ActionAdvance:
		return "advance"
	case ActionTick:
		return "tick"
	case ActionCancel:
		return "cancel"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is an input to Reduce.
type Action struct {
	Kind       ActionKind
	QuestionID string
	Option     int
	Generation int
}

// Select builds an action opening questionID.
func Select(questionID string) Action {
	return Action{Kind: ActionSelect, QuestionID: questionID}
}

// Choose builds an action recording option as the host's choice.
func Choose(option int) Action {
	return Action{Kind: ActionChoose, Option: option}
}

// Pass builds a pass action.
func Pass() Action { return Action{Kind: ActionPass} }

// Reveal builds a reveal action.
func Reveal() Action { return Action{Kind: ActionReveal} }

// Advance builds an advance action.
func Advance() Action { return Action{Kind: ActionAdvance} }

// Cancel builds a cancel action.
func Cancel() Action { return Action{Kind: ActionCancel} }

// Tick builds a tick action for a countdown generation.
func Tick(generation int) Action {
	return Action{Kind: ActionTick, Generation: generation}
}

// Outcome describes the effect of an action.
type Outcome struct {
	Applied bool
	Expired bool
	Err     error
}

// Verdict is the result of the host's choice once the answer is revealed.
type Verdict int

const (
	// VerdictNone means nothing was chosen or the answer is hidden.
	VerdictNone Verdict = iota
	// VerdictCorrect means the chosen option is correct.
	VerdictCorrect
	// VerdictIncorrect means the chosen option is wrong.
	VerdictIncorrect
)

// Options configures a new session.
type Options struct {
	Seconds  int
	Expiry   ExpiryPolicy
	Answered []string
}

// Session holds the quiz state for one subject board.
type Session struct {
	Subject   catalog.Subject
	Current   *catalog.Question
	Revealed  bool
	Passes    int
	Choice    *int
	Answered  map[string]struct{}
	Timer     timer.Countdown
	Expiry    ExpiryPolicy
	LastEvent string
}
