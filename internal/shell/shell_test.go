package shell

import (
	"errors"
	"testing"

	"carnival/internal/catalog"
	"carnival/internal/session"
)

// TestNavigation verifies landing -> subjects -> quiz -> subjects -> landing.
func TestNavigation(t *testing.T) {
	sh := New(smallCatalog(), Settings{Seconds: 10})
	if sh.Screen != ScreenLanding {
		t.Fatalf("expected landing, got %s", sh.Screen)
	}
	if err := sh.OpenSubject("history"); !errors.Is(err, ErrWrongScreen) {
		t.Fatalf("expected wrong screen, got %v", err)
	}
	mustNoErr(t, sh.Start())
	if err := sh.OpenSubject("nope"); !errors.Is(err, ErrUnknownSubject) {
		t.Fatalf("expected unknown subject, got %v", err)
	}
	mustNoErr(t, sh.OpenSubject("history"))
	if sh.Screen != ScreenQuiz || sh.Session == nil || sh.Session.Timer.Duration != 10 {
		t.Fatalf("expected quiz screen with configured session")
	}
	mustNoErr(t, sh.Back())
	if sh.Screen != ScreenSubjects || sh.Session != nil {
		t.Fatalf("expected subjects with cleared session")
	}
	mustNoErr(t, sh.Home())
	if sh.Screen != ScreenLanding {
		t.Fatalf("expected landing")
	}
}

// TestAnsweredSurvivesNavigation verifies answered sets persist across subject visits.
func TestAnsweredSurvivesNavigation(t *testing.T) {
	sh := New(smallCatalog(), Settings{})
	mustNoErr(t, sh.Start())
	mustNoErr(t, sh.OpenSubject("history"))
	answer(t, sh, "history1")
	mustNoErr(t, sh.Back())

	mustNoErr(t, sh.OpenSubject("history"))
	if sh.Session.Selectable("history1") {
		t.Fatalf("expected history1 to stay answered")
	}
	outcome, err := sh.Dispatch(session.Select("history1"))
	mustNoErr(t, err)
	if !errors.Is(outcome.Err, session.ErrAnswered) {
		t.Fatalf("expected answered guard, got %v", outcome.Err)
	}
}

// TestBackCancelsOpenQuestion verifies leaving mid-question keeps it selectable.
func TestBackCancelsOpenQuestion(t *testing.T) {
	sh := New(smallCatalog(), Settings{})
	mustNoErr(t, sh.Start())
	mustNoErr(t, sh.OpenSubject("history"))
	_, err := sh.Dispatch(session.Select("history2"))
	mustNoErr(t, err)
	mustNoErr(t, sh.Back())
	if got := sh.AnsweredIDs("history"); len(got) != 0 {
		t.Fatalf("expected nothing answered, got %v", got)
	}
	if _, err := sh.Dispatch(session.Reveal()); !errors.Is(err, ErrWrongScreen) {
		t.Fatalf("expected dispatch outside quiz to fail, got %v", err)
	}
}

// TestCompletion verifies a subject completes when every question is answered.
func TestCompletion(t *testing.T) {
	sh := New(smallCatalog(), Settings{})
	mustNoErr(t, sh.Start())
	mustNoErr(t, sh.OpenSubject("geography"))
	answer(t, sh, "geography1")
	if sh.IsComplete("geography") {
		t.Fatalf("expected geography incomplete")
	}
	answer(t, sh, "geography2")
	if !sh.IsComplete("geography") {
		t.Fatalf("expected geography complete")
	}
	mustNoErr(t, sh.Back())
	completed := sh.Completed()
	if len(completed) != 1 || completed[0] != "geography" {
		t.Fatalf("unexpected completed %v", completed)
	}
	sh.Reset()
	if sh.Screen != ScreenLanding || len(sh.Completed()) != 0 {
		t.Fatalf("expected reset progress")
	}
}

func answer(t *testing.T, sh *Shell, questionID string) {
	t.Helper()
	for _, action := range []session.Action{session.Select(questionID), session.Reveal(), session.Advance()} {
		outcome, err := sh.Dispatch(action)
		mustNoErr(t, err)
		if !outcome.Applied {
			t.Fatalf("%s on %s not applied: %v", action.Kind, questionID, outcome.Err)
		}
	}
}

func smallCatalog() catalog.Catalog {
	return catalog.Catalog{
		Version: 1,
		Title:   "Test Carnival",
		Subjects: []catalog.Subject{
			{ID: "history", Name: "History", Questions: catalog.Generate("history", 3)},
			{ID: "geography", Name: "Geography", Questions: catalog.Generate("geography", 2)},
		},
	}
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
