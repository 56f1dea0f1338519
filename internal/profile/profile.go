// Package profile owns all shared mutable user state: experience, hearts,
// currency, holdings, and lesson completion. Every other component reads
// value copies and requests mutations through the Store, which replaces
// the whole state under one mutex; there is no partial in-place mutation
// anywhere, so a torn read is structurally impossible.
package profile

import (
	"context"
	"fmt"
	"os"
	"sync"

	"investingo/internal/content"
	"investingo/internal/store"
)

// MaxHearts is the life budget ceiling.
const MaxHearts = 5

// BucksPerXP converts a lesson's XP reward into currency on a pass.
const BucksPerXP = 10

// Profile is a value snapshot of the user's state. Level is never stored;
// call Level() so it can't drift from XP.
type Profile struct {
	Name             string
	XP               int
	Streak           int
	Hearts           int
	Bucks            float64
	Portfolio        map[string]int
	CompletedLessons []string
}

// Level derives the user's level from XP. One level per 100 XP, 1-based.
func (p Profile) Level() int {
	return p.XP/100 + 1
}

// Holding returns the held quantity for a symbol, zero when absent.
func (p Profile) Holding(symbol string) int {
	return p.Portfolio[symbol]
}

// Completed reports whether the lesson has ever been passed.
func (p Profile) Completed(lessonID string) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

func (p Profile) clone() Profile {
	c := p
	c.Portfolio = make(map[string]int, len(p.Portfolio))
	for k, v := range p.Portfolio {
		c.Portfolio[k] = v
	}
	c.CompletedLessons = append([]string(nil), p.CompletedLessons...)
	return c
}

// Initial returns the fixed starting profile.
func Initial() Profile {
	return Profile{
		Name:      "Smart Investor",
		XP:        150,
		Streak:    7,
		Hearts:    MaxHearts,
		Bucks:     10000,
		Portfolio: map[string]int{},
	}
}

// LessonOutcome reports what a completed lesson attempt did to the profile.
type LessonOutcome struct {
	Score        float64
	Passed       bool
	XPAwarded    int
	BucksAwarded float64
	Unlocked     string // title of the newly available module, empty if none
}

// TradeResult reports the settlement of one trade order.
type TradeResult struct {
	Accepted bool
	Cost     float64 // negative for proceeds of a sell
	Holding  int     // holding after settlement (or unchanged on reject)
}

// Store is the single writer for the profile and the module unlock state
// of its catalog. Events are appended to the repo when one is configured;
// append failures are logged and never surfaced to the user.
type Store struct {
	mu      sync.Mutex
	current Profile
	catalog *content.Catalog
	events  store.EventRepo
}

// NewStore creates a profile store over the given catalog.
// events may be nil, in which case nothing is recorded.
func NewStore(initial Profile, catalog *content.Catalog, events store.EventRepo) *Store {
	if initial.Portfolio == nil {
		initial.Portfolio = map[string]int{}
	}
	return &Store{current: initial.clone(), catalog: catalog, events: events}
}

// Current returns a value copy of the profile.
func (s *Store) Current() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.clone()
}

// Hearts returns the live heart count. Lesson sessions poll this through
// an injected accessor so a depleted budget blocks even a freshly opened
// session.
func (s *Store) Hearts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Hearts
}

// LoseHeart decrements the heart budget, floored at zero, and returns the
// remaining count. This is the only way hearts go down.
func (s *Store) LoseHeart() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.clone()
	if next.Hearts > 0 {
		next.Hearts--
	}
	s.current = next
	return next.Hearts
}

// ApplyLessonResult settles one finished lesson attempt. On a pass
// (score >= the owning module's required score, boundary inclusive) it
// awards XP and currency, records completion, and unlocks the next module
// on the path. On a fail it mutates nothing. Either way the attempt is
// over; retrying starts from scratch.
func (s *Store) ApplyLessonResult(ctx context.Context, attemptID, lessonID string, score float64) LessonOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	mod, idx := s.catalog.ModuleFor(lessonID)
	if mod == nil {
		return LessonOutcome{Score: score}
	}

	outcome := LessonOutcome{
		Score:  score,
		Passed: score >= mod.RequiredScore,
	}

	var lesson *content.Lesson
	for i := range mod.Lessons {
		if mod.Lessons[i].ID == lessonID {
			lesson = &mod.Lessons[i]
			break
		}
	}
	if lesson == nil {
		return outcome
	}

	if outcome.Passed {
		next := s.current.clone()
		next.XP += lesson.XPReward
		next.Bucks += float64(lesson.XPReward * BucksPerXP)
		if !next.Completed(lessonID) {
			next.CompletedLessons = append(next.CompletedLessons, lessonID)
		}
		s.current = next

		outcome.XPAwarded = lesson.XPReward
		outcome.BucksAwarded = float64(lesson.XPReward * BucksPerXP)
		if s.catalog.UnlockNext(idx) {
			outcome.Unlocked = s.catalog.Modules[idx+1].Title
		}
	}

	s.appendLessonEvent(ctx, store.LessonEventData{
		AttemptID: attemptID,
		LessonID:  lessonID,
		ModuleID:  mod.ID,
		Score:     score,
		Passed:    outcome.Passed,
		XPAwarded: outcome.XPAwarded,
	})

	return outcome
}

// Trade settles a buy (qty > 0) or sell (qty < 0) of qty units at the
// given price. Unaffordable buys and oversells are rejected without
// mutation. The UI disables those affordances, so rejection here is a
// silent no-op backstop, not an error.
func (s *Store) Trade(ctx context.Context, symbol string, qty int, price float64) TradeResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := s.current.Portfolio[symbol]
	cost := float64(qty) * price

	accepted := qty != 0 &&
		(qty < 0 || s.current.Bucks >= cost) &&
		held+qty >= 0

	if accepted {
		next := s.current.clone()
		next.Bucks -= cost
		next.Portfolio[symbol] = held + qty
		s.current = next
		held += qty
	}

	s.appendTradeEvent(ctx, store.TradeEventData{
		Symbol:   symbol,
		Quantity: qty,
		Price:    price,
		Accepted: accepted,
	})

	return TradeResult{Accepted: accepted, Cost: cost, Holding: held}
}

// RecordAnswer appends an answer event for one checked question.
func (s *Store) RecordAnswer(ctx context.Context, data store.AnswerEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendAnswerEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log answer event: %v\n", err)
	}
}

// Data converts the profile to its persisted shape.
func (s *Store) Data() store.ProfileData {
	p := s.Current()
	return store.ProfileData{
		Name:             p.Name,
		XP:               p.XP,
		Streak:           p.Streak,
		Hearts:           p.Hearts,
		Bucks:            p.Bucks,
		Portfolio:        p.Portfolio,
		CompletedLessons: p.CompletedLessons,
	}
}

// FromData rebuilds a Profile from its persisted shape, clamping values
// a hand-edited database could have pushed out of range.
func FromData(d store.ProfileData) Profile {
	p := Profile{
		Name:             d.Name,
		XP:               d.XP,
		Streak:           d.Streak,
		Hearts:           d.Hearts,
		Bucks:            d.Bucks,
		Portfolio:        d.Portfolio,
		CompletedLessons: d.CompletedLessons,
	}
	if p.Portfolio == nil {
		p.Portfolio = map[string]int{}
	}
	if p.XP < 0 {
		p.XP = 0
	}
	if p.Hearts < 0 {
		p.Hearts = 0
	}
	if p.Hearts > MaxHearts {
		p.Hearts = MaxHearts
	}
	if p.Bucks < 0 {
		p.Bucks = 0
	}
	for sym, q := range p.Portfolio {
		if q < 0 {
			p.Portfolio[sym] = 0
		}
	}
	return p
}

func (s *Store) appendLessonEvent(ctx context.Context, data store.LessonEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendLessonEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log lesson event: %v\n", err)
	}
}

func (s *Store) appendTradeEvent(ctx context.Context, data store.TradeEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendTradeEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log trade event: %v\n", err)
	}
}
