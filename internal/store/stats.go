package store

import (
	"context"
	"fmt"

	"investingo/ent/answerevent"
	"investingo/ent/lessonevent"
	"investingo/ent/tradeevent"
)

func (r *eventRepo) LifetimeStats(ctx context.Context) (*LifetimeStats, error) {
	stats := &LifetimeStats{}
	var err error

	stats.LessonsCompleted, err = r.client.LessonEvent.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count lessons: %w", err)
	}

	stats.LessonsPassed, err = r.client.LessonEvent.Query().
		Where(lessonevent.Passed(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count passed lessons: %w", err)
	}

	stats.AnswersChecked, err = r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count answers: %w", err)
	}

	stats.AnswersCorrect, err = r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count correct answers: %w", err)
	}

	stats.TradesAccepted, err = r.client.TradeEvent.Query().
		Where(tradeevent.Accepted(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count accepted trades: %w", err)
	}

	stats.TradesRejected, err = r.client.TradeEvent.Query().
		Where(tradeevent.Accepted(false)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rejected trades: %w", err)
	}

	stats.CoachQuestions, err = r.client.ChatEvent.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count coach questions: %w", err)
	}

	return stats, nil
}
