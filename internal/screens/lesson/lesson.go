// Package lesson renders one lesson attempt: question by question,
// check/continue feedback, and the blocked state when hearts run out.
package lesson

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"investingo/internal/content"
	sess "investingo/internal/lesson"
	"investingo/internal/profile"
	"investingo/internal/router"
	"investingo/internal/screen"
	"investingo/internal/screens/summary"
	"investingo/internal/store"
	"investingo/internal/ui/components"
	"investingo/internal/ui/layout"
)

// LessonScreen implements screen.Screen for an active lesson attempt.
type LessonScreen struct {
	lesson    content.Lesson
	attemptID string
	session   *sess.Session
	profiles  *profile.Store
	options   components.OptionList
	selected  int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen over one lesson definition. Each attempt
// gets a fresh session and attempt ID; nothing carries over from a
// previous try.
func New(l content.Lesson, profiles *profile.Store) *LessonScreen {
	s := sess.New(l, profiles.Hearts, func() { profiles.LoseHeart() })
	ls := &LessonScreen{
		lesson:    l,
		attemptID: uuid.New().String(),
		session:   s,
		profiles:  profiles,
	}
	ls.options = components.NewOptionList(s.Question().Options)
	return ls
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.session.Blocked() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.session.Reveal() == sess.Unanswered {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Quit lesson"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.session.Blocked() {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.moveSelection(-1)
	case "down", "j":
		s.moveSelection(1)
	case "enter":
		return s.handleEnter()
	}

	return s, nil
}

// moveSelection shifts the highlighted option and records the pick.
func (s *LessonScreen) moveSelection(delta int) {
	if s.session.Reveal() != sess.Unanswered {
		return
	}
	q := s.session.Question()
	next := s.selected + delta
	if next < 0 || next >= len(q.Options) {
		return
	}
	s.selected = next
	s.session.SelectOption(q.Options[next])
}

// handleEnter checks the current pick or dismisses the feedback.
func (s *LessonScreen) handleEnter() (screen.Screen, tea.Cmd) {
	if s.session.Reveal() == sess.Unanswered {
		// First enter on a fresh question also locks in the highlighted
		// option, so enter-enter works without an explicit arrow press.
		q := s.session.Question()
		if _, picked := s.session.Selected(); !picked && s.selected < len(q.Options) {
			s.session.SelectOption(q.Options[s.selected])
		}

		before := s.session.Reveal()
		s.session.Check()
		if s.session.Reveal() == before {
			return s, nil
		}

		picked, _ := s.session.Selected()
		s.profiles.RecordAnswer(context.Background(), store.AnswerEventData{
			AttemptID:  s.attemptID,
			LessonID:   s.lesson.ID,
			QuestionID: q.ID,
			Selected:   picked,
			Correct:    s.session.Reveal() == sess.RevealedCorrect,
			HeartsLeft: s.profiles.Hearts(),
		})
		return s, nil
	}

	completion := s.session.Continue()
	if completion == nil {
		if !s.session.Done() {
			s.selected = 0
			s.options = components.NewOptionList(s.session.Question().Options)
		}
		return s, nil
	}

	outcome := s.profiles.ApplyLessonResult(
		context.Background(), s.attemptID, completion.LessonID, completion.Score)

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(s.lesson.Title, *completion, outcome),
		}
	}
}
