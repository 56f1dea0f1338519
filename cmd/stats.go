package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"investingo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().LifetimeStats(context.Background())
		if err != nil {
			return fmt.Errorf("aggregate events: %w", err)
		}

		fmt.Printf("Lessons finished:  %d (%d passed)\n", stats.LessonsCompleted, stats.LessonsPassed)
		fmt.Printf("Answers checked:   %d (%d correct)\n", stats.AnswersChecked, stats.AnswersCorrect)
		fmt.Printf("Trades settled:    %d (%d rejected)\n", stats.TradesAccepted, stats.TradesRejected)
		fmt.Printf("Coach questions:   %d\n", stats.CoachQuestions)
		return nil
	},
}
