package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendEventsAndLifetimeStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{AttemptID: "a1", LessonID: "l1", QuestionID: "q1", Selected: "Growth", Correct: true, HeartsLeft: 5},
		{AttemptID: "a1", LessonID: "l1", QuestionID: "q2", Selected: "Cash", Correct: false, HeartsLeft: 4},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	if err := repo.AppendLessonEvent(ctx, LessonEventData{
		AttemptID: "a1", LessonID: "l1", ModuleID: "m1",
		Score: 0.5, Passed: false,
	}); err != nil {
		t.Fatalf("append lesson: %v", err)
	}
	if err := repo.AppendLessonEvent(ctx, LessonEventData{
		AttemptID: "a2", LessonID: "l1", ModuleID: "m1",
		Score: 1.0, Passed: true, XPAwarded: 20,
	}); err != nil {
		t.Fatalf("append lesson: %v", err)
	}

	if err := repo.AppendTradeEvent(ctx, TradeEventData{
		Symbol: "AAPL", Quantity: 3, Price: 100, Accepted: true,
	}); err != nil {
		t.Fatalf("append trade: %v", err)
	}
	if err := repo.AppendTradeEvent(ctx, TradeEventData{
		Symbol: "AAPL", Quantity: -9, Price: 100, Accepted: false,
	}); err != nil {
		t.Fatalf("append trade: %v", err)
	}

	if err := repo.AppendChatEvent(ctx, ChatEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Success: true,
	}); err != nil {
		t.Fatalf("append chat: %v", err)
	}

	stats, err := repo.LifetimeStats(ctx)
	if err != nil {
		t.Fatalf("lifetime stats: %v", err)
	}

	if stats.LessonsCompleted != 2 {
		t.Errorf("lessons completed = %d, want 2", stats.LessonsCompleted)
	}
	if stats.LessonsPassed != 1 {
		t.Errorf("lessons passed = %d, want 1", stats.LessonsPassed)
	}
	if stats.AnswersChecked != 2 {
		t.Errorf("answers checked = %d, want 2", stats.AnswersChecked)
	}
	if stats.AnswersCorrect != 1 {
		t.Errorf("answers correct = %d, want 1", stats.AnswersCorrect)
	}
	if stats.TradesAccepted != 1 {
		t.Errorf("trades accepted = %d, want 1", stats.TradesAccepted)
	}
	if stats.TradesRejected != 1 {
		t.Errorf("trades rejected = %d, want 1", stats.TradesRejected)
	}
	if stats.CoachQuestions != 1 {
		t.Errorf("coach questions = %d, want 1", stats.CoachQuestions)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Profile: ProfileData{Name: "Smart Investor", XP: 150, Hearts: 5, Bucks: 10000},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Profile.XP != 150 {
		t.Errorf("profile xp = %d, want 150", snap.Data.Profile.XP)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
