package profile

import (
	"context"
	"testing"

	"investingo/internal/content"
	"investingo/internal/store"
)

// mockEventRepo records appended events for assertions.
type mockEventRepo struct {
	answers []store.AnswerEventData
	lessons []store.LessonEventData
	trades  []store.TradeEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockEventRepo) AppendLessonEvent(_ context.Context, data store.LessonEventData) error {
	m.lessons = append(m.lessons, data)
	return nil
}
func (m *mockEventRepo) AppendTradeEvent(_ context.Context, data store.TradeEventData) error {
	m.trades = append(m.trades, data)
	return nil
}
func (m *mockEventRepo) AppendChatEvent(_ context.Context, _ store.ChatEventData) error {
	return nil
}
func (m *mockEventRepo) LifetimeStats(_ context.Context) (*store.LifetimeStats, error) {
	return &store.LifetimeStats{}, nil
}

func testCatalog() *content.Catalog {
	return &content.Catalog{
		Modules: []content.Module{
			{
				ID: "m1", Title: "Investment Basics", Status: content.StatusAvailable,
				RequiredScore: 0.8,
				Lessons: []content.Lesson{
					{ID: "l1", Title: "Compound Interest", XPReward: 20,
						Questions: []content.Question{{ID: "q1", Answer: "a"}}},
				},
			},
			{
				ID: "m2", Title: "Equity Essentials", Status: content.StatusLocked,
				RequiredScore: 0.8,
				Lessons: []content.Lesson{
					{ID: "l2", Title: "Stocks", XPReward: 25,
						Questions: []content.Question{{ID: "q2", Answer: "b"}}},
				},
			},
		},
	}
}

func newTestStore(events store.EventRepo) (*Store, *content.Catalog) {
	catalog := testCatalog()
	return NewStore(Initial(), catalog, events), catalog
}

func TestLevelDerivation(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{150, 2},
		{250, 3},
	}
	for _, tt := range tests {
		p := Profile{XP: tt.xp}
		if got := p.Level(); got != tt.want {
			t.Errorf("Level() with %d xp = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestPassingLessonAwardsAndUnlocks(t *testing.T) {
	repo := &mockEventRepo{}
	s, catalog := newTestStore(repo)

	outcome := s.ApplyLessonResult(context.Background(), "attempt-1", "l1", 1.0)

	if !outcome.Passed {
		t.Fatal("expected pass at score 1.0")
	}
	if outcome.XPAwarded != 20 {
		t.Errorf("xp awarded = %d, want 20", outcome.XPAwarded)
	}
	if outcome.BucksAwarded != 200 {
		t.Errorf("bucks awarded = %v, want 200", outcome.BucksAwarded)
	}
	if outcome.Unlocked != "Equity Essentials" {
		t.Errorf("unlocked = %q, want Equity Essentials", outcome.Unlocked)
	}

	p := s.Current()
	if p.XP != 170 {
		t.Errorf("xp = %d, want 170", p.XP)
	}
	if p.Level() != 2 {
		t.Errorf("level = %d, want 2", p.Level())
	}
	if p.Bucks != 10200 {
		t.Errorf("bucks = %v, want 10200", p.Bucks)
	}
	if !p.Completed("l1") {
		t.Error("lesson not recorded as completed")
	}
	if catalog.Modules[1].Status != content.StatusAvailable {
		t.Errorf("next module status = %s, want AVAILABLE", catalog.Modules[1].Status)
	}
	if catalog.Modules[0].Status != content.StatusAvailable {
		t.Errorf("passed module status = %s, want AVAILABLE (never COMPLETED)", catalog.Modules[0].Status)
	}

	if len(repo.lessons) != 1 || !repo.lessons[0].Passed {
		t.Fatalf("lesson event not recorded as passed: %+v", repo.lessons)
	}
	if repo.lessons[0].AttemptID != "attempt-1" {
		t.Errorf("attempt id = %q, want attempt-1", repo.lessons[0].AttemptID)
	}
}

func TestBoundaryScorePasses(t *testing.T) {
	s, _ := newTestStore(nil)

	outcome := s.ApplyLessonResult(context.Background(), "a", "l1", 0.8)

	if !outcome.Passed {
		t.Error("score exactly at the required score must pass")
	}
}

func TestFailingLessonMutatesNothing(t *testing.T) {
	repo := &mockEventRepo{}
	s, catalog := newTestStore(repo)

	outcome := s.ApplyLessonResult(context.Background(), "a", "l1", 0.5)

	if outcome.Passed {
		t.Fatal("expected fail at score 0.5")
	}
	p := s.Current()
	if p.XP != 150 || p.Bucks != 10000 {
		t.Errorf("fail mutated the profile: xp=%d bucks=%v", p.XP, p.Bucks)
	}
	if p.Completed("l1") {
		t.Error("failed lesson recorded as completed")
	}
	if catalog.Modules[1].Status != content.StatusLocked {
		t.Error("failed lesson unlocked the next module")
	}

	// The attempt is still logged.
	if len(repo.lessons) != 1 || repo.lessons[0].Passed {
		t.Fatalf("expected one failed lesson event, got %+v", repo.lessons)
	}
}

func TestRepassDoesNotDuplicateCompletion(t *testing.T) {
	s, _ := newTestStore(nil)

	s.ApplyLessonResult(context.Background(), "a1", "l1", 1.0)
	s.ApplyLessonResult(context.Background(), "a2", "l1", 1.0)

	p := s.Current()
	count := 0
	for _, id := range p.CompletedLessons {
		if id == "l1" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("completion recorded %d times, want 1", count)
	}
	// Rewards do stack on a repass.
	if p.XP != 190 {
		t.Errorf("xp = %d, want 190", p.XP)
	}
}

func TestLoseHeartFloorsAtZero(t *testing.T) {
	s, _ := newTestStore(nil)

	for i := 0; i < MaxHearts+3; i++ {
		s.LoseHeart()
	}
	if got := s.Hearts(); got != 0 {
		t.Errorf("hearts = %d, want 0", got)
	}
}

func TestBuySettlement(t *testing.T) {
	repo := &mockEventRepo{}
	s, _ := newTestStore(repo)

	result := s.Trade(context.Background(), "AAPL", 3, 100)

	if !result.Accepted {
		t.Fatal("affordable buy rejected")
	}
	if result.Holding != 3 {
		t.Errorf("holding = %d, want 3", result.Holding)
	}
	p := s.Current()
	if p.Bucks != 9700 {
		t.Errorf("bucks = %v, want 9700", p.Bucks)
	}
	if p.Holding("AAPL") != 3 {
		t.Errorf("portfolio holding = %d, want 3", p.Holding("AAPL"))
	}
	if len(repo.trades) != 1 || !repo.trades[0].Accepted {
		t.Fatalf("trade event missing or rejected: %+v", repo.trades)
	}
}

func TestUnaffordableBuyRejected(t *testing.T) {
	repo := &mockEventRepo{}
	s, _ := newTestStore(repo)

	result := s.Trade(context.Background(), "AAPL", 1000, 100)

	if result.Accepted {
		t.Fatal("unaffordable buy accepted")
	}
	p := s.Current()
	if p.Bucks != 10000 || p.Holding("AAPL") != 0 {
		t.Errorf("rejected buy mutated state: bucks=%v holding=%d", p.Bucks, p.Holding("AAPL"))
	}
	if len(repo.trades) != 1 || repo.trades[0].Accepted {
		t.Fatal("rejected trade not logged as rejected")
	}
}

func TestSellAndOversell(t *testing.T) {
	s, _ := newTestStore(nil)

	s.Trade(context.Background(), "AAPL", 3, 100)

	result := s.Trade(context.Background(), "AAPL", -2, 110)
	if !result.Accepted {
		t.Fatal("valid sell rejected")
	}
	p := s.Current()
	if p.Holding("AAPL") != 1 {
		t.Errorf("holding after sell = %d, want 1", p.Holding("AAPL"))
	}
	if p.Bucks != 9700+220 {
		t.Errorf("bucks after sell = %v, want 9920", p.Bucks)
	}

	// Selling more than held must not settle.
	result = s.Trade(context.Background(), "AAPL", -5, 110)
	if result.Accepted {
		t.Fatal("oversell accepted")
	}
	if got := s.Current().Holding("AAPL"); got != 1 {
		t.Errorf("oversell mutated holding: %d", got)
	}
}

func TestZeroQuantityRejected(t *testing.T) {
	s, _ := newTestStore(nil)

	if s.Trade(context.Background(), "AAPL", 0, 100).Accepted {
		t.Error("zero-quantity order accepted")
	}
}

func TestFromDataClamps(t *testing.T) {
	p := FromData(store.ProfileData{
		XP:        -5,
		Hearts:    12,
		Bucks:     -1,
		Portfolio: map[string]int{"AAPL": -3},
	})

	if p.XP != 0 {
		t.Errorf("xp = %d, want 0", p.XP)
	}
	if p.Hearts != MaxHearts {
		t.Errorf("hearts = %d, want %d", p.Hearts, MaxHearts)
	}
	if p.Bucks != 0 {
		t.Errorf("bucks = %v, want 0", p.Bucks)
	}
	if p.Portfolio["AAPL"] != 0 {
		t.Errorf("negative holding not clamped: %d", p.Portfolio["AAPL"])
	}
}
