// Package lesson drives a single attempt at a lesson: question
// sequencing, answer checking against a shared life budget, and the final
// pass/fail verdict. The controller is pure state + injected callbacks so
// it can be exercised without a UI or a real profile store.
package lesson

import "investingo/internal/content"

// RevealState is the per-question answer-feedback phase.
type RevealState int

const (
	Unanswered RevealState = iota
	RevealedCorrect
	RevealedWrong
)

// Completion carries the final verdict of a finished attempt.
type Completion struct {
	LessonID     string
	Score        float64 // correct / total, in [0,1]
	CorrectCount int
	Total        int
}

// Session is one attempt at a lesson. It never outlives the attempt:
// closing or finishing the lesson discards it, and a retry builds a new
// one with no carry-over.
//
// The heart budget is shared state the session does not own. It reads the
// budget through hearts() and requests decrements through loseHeart(),
// both injected, so a depletion caused elsewhere blocks this session too.
type Session struct {
	lesson    content.Lesson
	hearts    func() int
	loseHeart func()

	index    int
	selected string
	hasPick  bool
	reveal   RevealState
	correct  int
	done     bool
}

// New creates a session over the given lesson definition.
// The content loader guarantees at least one question.
func New(l content.Lesson, hearts func() int, loseHeart func()) *Session {
	return &Session{lesson: l, hearts: hearts, loseHeart: loseHeart}
}

// Question returns the current question.
func (s *Session) Question() content.Question {
	return s.lesson.Questions[s.index]
}

// Index returns the 0-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the lesson.
func (s *Session) Total() int { return len(s.lesson.Questions) }

// CorrectCount returns the running number of correct answers.
func (s *Session) CorrectCount() int { return s.correct }

// Selected returns the currently selected option and whether one is set.
func (s *Session) Selected() (string, bool) { return s.selected, s.hasPick }

// Reveal returns the current reveal state.
func (s *Session) Reveal() RevealState { return s.reveal }

// Done reports whether the attempt has terminated.
func (s *Session) Done() bool { return s.done }

// Blocked reports whether the shared heart budget is exhausted. Checked
// on every interaction and render, not just after a wrong answer: a
// session opened with zero hearts is blocked before its first question.
func (s *Session) Blocked() bool {
	return s.hearts() <= 0
}

// SelectOption records the learner's pick. Ignored while feedback is
// showing, after termination, or while blocked: a no-op, not an error.
func (s *Session) SelectOption(option string) {
	if s.done || s.Blocked() || s.reveal != Unanswered {
		return
	}
	s.selected = option
	s.hasPick = true
}

// Check grades the current selection. It does nothing without a selection
// or outside the unanswered phase. A wrong answer costs exactly one heart,
// here and nowhere else.
func (s *Session) Check() {
	if s.done || s.Blocked() || s.reveal != Unanswered || !s.hasPick {
		return
	}
	if s.selected == s.lesson.Questions[s.index].Answer {
		s.reveal = RevealedCorrect
		s.correct++
	} else {
		s.reveal = RevealedWrong
		s.loseHeart()
	}
}

// Continue dismisses the reveal. On the last question it finalizes the
// attempt and returns the completion; otherwise it advances and returns
// nil. Calling it before a reveal is a no-op.
func (s *Session) Continue() *Completion {
	if s.done || s.Blocked() || s.reveal == Unanswered {
		return nil
	}

	if s.index == len(s.lesson.Questions)-1 {
		s.done = true
		return &Completion{
			LessonID:     s.lesson.ID,
			Score:        float64(s.correct) / float64(len(s.lesson.Questions)),
			CorrectCount: s.correct,
			Total:        len(s.lesson.Questions),
		}
	}

	s.index++
	s.selected = ""
	s.hasPick = false
	s.reveal = Unanswered
	return nil
}
