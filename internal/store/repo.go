package store

import (
	"context"
	"time"
)

// AnswerEventData records one checked answer inside a lesson attempt.
type AnswerEventData struct {
	AttemptID  string
	LessonID   string
	QuestionID string
	Selected   string
	Correct    bool
	HeartsLeft int
}

// LessonEventData records the verdict of one completed lesson attempt.
type LessonEventData struct {
	AttemptID string
	LessonID  string
	ModuleID  string
	Score     float64
	Passed    bool
	XPAwarded int
}

// TradeEventData records one trade order, accepted or rejected.
type TradeEventData struct {
	Symbol   string
	Quantity int // positive = buy, negative = sell
	Price    float64
	Accepted bool
}

// ChatEventData records one coach request for operator diagnosis.
type ChatEventData struct {
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and aggregate access to the event log.
// Appends are best-effort from the caller's perspective: feature code
// logs the error and continues on failure.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendLessonEvent(ctx context.Context, data LessonEventData) error
	AppendTradeEvent(ctx context.Context, data TradeEventData) error
	AppendChatEvent(ctx context.Context, data ChatEventData) error

	// LifetimeStats aggregates the event log for the stats command.
	LifetimeStats(ctx context.Context) (*LifetimeStats, error)
}

// LifetimeStats summarizes the whole event log.
type LifetimeStats struct {
	LessonsCompleted int
	LessonsPassed    int
	AnswersChecked   int
	AnswersCorrect   int
	TradesAccepted   int
	TradesRejected   int
	CoachQuestions   int
}

// ProfileData is the persisted shape of the user profile.
type ProfileData struct {
	Name             string         `json:"name"`
	XP               int            `json:"xp"`
	Streak           int            `json:"streak"`
	Hearts           int            `json:"hearts"`
	Bucks            float64        `json:"bucks"`
	Portfolio        map[string]int `json:"portfolio"`
	CompletedLessons []string       `json:"completed_lessons"`
}

// SnapshotData captures the restorable app state at a point in time.
type SnapshotData struct {
	Version        int               `json:"version"`
	Profile        ProfileData       `json:"profile"`
	ModuleStatuses map[string]string `json:"module_statuses"`
}

// Snapshot is a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
