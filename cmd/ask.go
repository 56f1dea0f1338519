package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"investingo/internal/coach"
	"investingo/internal/llm"
	"investingo/internal/store"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask Barnaby a question without opening the TUI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		question := strings.Join(args, " ")

		// Event logging is best effort here; a missing DB must not block
		// a one-shot question.
		var eventRepo store.EventRepo
		if dbPath, err := resolveDBPath(cmd); err == nil {
			if s, err := store.Open(dbPath); err == nil {
				defer s.Close()
				eventRepo = s.EventRepo()
			}
		}

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		gateway := coach.NewGateway(provider)
		fmt.Println(gateway.Ask(ctx, question))
		return nil
	},
}
