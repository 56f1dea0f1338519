package lesson

import (
	"testing"

	"investingo/internal/content"
)

// heartBank is a minimal stand-in for the profile store's heart budget.
type heartBank struct {
	hearts int
	losses int
}

func (h *heartBank) get() int { return h.hearts }
func (h *heartBank) lose() {
	h.losses++
	if h.hearts > 0 {
		h.hearts--
	}
}

func twoQuestionLesson() content.Lesson {
	return content.Lesson{
		ID:    "l1",
		Title: "Test Lesson",
		Questions: []content.Question{
			{ID: "q1", Kind: content.KindMultipleChoice, Prompt: "first?",
				Options: []string{"right", "wrong"}, Answer: "right"},
			{ID: "q2", Kind: content.KindMultipleChoice, Prompt: "second?",
				Options: []string{"yes", "no"}, Answer: "yes"},
		},
	}
}

func newTestSession(hearts int) (*Session, *heartBank) {
	bank := &heartBank{hearts: hearts}
	return New(twoQuestionLesson(), bank.get, bank.lose), bank
}

func TestCorrectAnswerFlow(t *testing.T) {
	s, bank := newTestSession(5)

	s.SelectOption("right")
	s.Check()

	if s.Reveal() != RevealedCorrect {
		t.Fatalf("reveal = %v, want RevealedCorrect", s.Reveal())
	}
	if s.CorrectCount() != 1 {
		t.Errorf("correct count = %d, want 1", s.CorrectCount())
	}
	if bank.losses != 0 {
		t.Errorf("lost %d hearts on a correct answer", bank.losses)
	}

	if c := s.Continue(); c != nil {
		t.Fatal("expected nil completion before the last question")
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
	if s.Reveal() != Unanswered {
		t.Errorf("reveal not reset after continue")
	}
	if _, picked := s.Selected(); picked {
		t.Error("selection not cleared after continue")
	}
}

func TestWrongAnswerCostsExactlyOneHeart(t *testing.T) {
	s, bank := newTestSession(5)

	s.SelectOption("wrong")
	s.Check()

	if s.Reveal() != RevealedWrong {
		t.Fatalf("reveal = %v, want RevealedWrong", s.Reveal())
	}
	if bank.losses != 1 {
		t.Fatalf("heart losses = %d, want 1", bank.losses)
	}

	// Re-checking in the revealed phase must not charge again.
	s.Check()
	s.Check()
	if bank.losses != 1 {
		t.Errorf("heart losses after repeat checks = %d, want 1", bank.losses)
	}
}

func TestCheckWithoutSelectionIsNoop(t *testing.T) {
	s, bank := newTestSession(5)

	s.Check()

	if s.Reveal() != Unanswered {
		t.Error("check without a selection revealed something")
	}
	if bank.losses != 0 {
		t.Error("check without a selection cost a heart")
	}
}

func TestContinueBeforeRevealIsNoop(t *testing.T) {
	s, _ := newTestSession(5)

	if c := s.Continue(); c != nil {
		t.Fatal("continue before reveal returned a completion")
	}
	if s.Index() != 0 {
		t.Error("continue before reveal advanced the question")
	}
}

func TestCompletionScore(t *testing.T) {
	s, _ := newTestSession(5)

	s.SelectOption("right")
	s.Check()
	s.Continue()

	s.SelectOption("no")
	s.Check()
	c := s.Continue()

	if c == nil {
		t.Fatal("expected completion after the last question")
	}
	if !s.Done() {
		t.Error("session not done after completion")
	}
	if c.Score != 0.5 {
		t.Errorf("score = %v, want 0.5", c.Score)
	}
	if c.CorrectCount != 1 || c.Total != 2 {
		t.Errorf("counts = %d/%d, want 1/2", c.CorrectCount, c.Total)
	}

	// A finished session stays inert.
	s.SelectOption("yes")
	s.Check()
	if c := s.Continue(); c != nil {
		t.Error("finished session produced a second completion")
	}
}

func TestBlockedAtZeroHearts(t *testing.T) {
	s, _ := newTestSession(1)

	s.SelectOption("wrong")
	s.Check()

	// Last heart gone: the reveal shows, but nothing progresses.
	if !s.Blocked() {
		t.Fatal("expected blocked after losing the last heart")
	}
	if c := s.Continue(); c != nil {
		t.Error("blocked session still completed")
	}

	s.SelectOption("right")
	if sel, _ := s.Selected(); sel != "wrong" {
		t.Errorf("blocked session accepted a new selection: %q", sel)
	}
}

func TestSessionOpenedWithZeroHeartsIsBlocked(t *testing.T) {
	s, bank := newTestSession(0)

	if !s.Blocked() {
		t.Fatal("expected a zero-heart session to start blocked")
	}

	s.SelectOption("right")
	s.Check()

	if s.Reveal() != Unanswered {
		t.Error("blocked session graded an answer")
	}
	if bank.losses != 0 {
		t.Error("blocked session charged a heart")
	}
}

func TestExternalHeartDepletionBlocksSession(t *testing.T) {
	s, bank := newTestSession(3)

	// Hearts drained outside this session, e.g. by another attempt.
	bank.hearts = 0

	if !s.Blocked() {
		t.Fatal("session did not observe external heart depletion")
	}
	s.SelectOption("right")
	s.Check()
	if s.Reveal() != Unanswered {
		t.Error("blocked session still graded an answer")
	}
}
