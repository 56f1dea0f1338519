package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"investingo/internal/app"
	"investingo/internal/coach"
	"investingo/internal/content"
	"investingo/internal/llm"
	"investingo/internal/market"
	"investingo/internal/profile"
	"investingo/internal/store"
)

// snapshotsToKeep bounds how many restore points accumulate in the DB.
const snapshotsToKeep = 10

// runApp opens the store, restores state, builds dependencies, and
// launches the TUI. On exit it snapshots the final state.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	catalog, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content catalog: %w", err)
	}

	// A broken database degrades to a session without history rather
	// than refusing to start: events are dropped and nothing persists.
	var st *store.Store
	var eventRepo store.EventRepo
	if dbPath, err := resolveDBPath(cmd); err != nil {
		fmt.Fprintln(os.Stderr, "warning: resolve DB path:", err)
	} else if st, err = store.Open(dbPath); err != nil {
		fmt.Fprintln(os.Stderr, "warning: open store:", err)
		fmt.Fprintln(os.Stderr, "running without history; progress will not be saved")
		st = nil
	}

	initial := profile.Initial()
	if st != nil {
		defer st.Close()
		eventRepo = st.EventRepo()

		// Restore the last session's state, if any.
		if snap, err := st.SnapshotRepo().Latest(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to load snapshot:", err)
		} else if snap != nil {
			initial = profile.FromData(snap.Data.Profile)
			catalog.SetStatuses(snap.Data.ModuleStatuses)
		}
	}

	profiles := profile.NewStore(initial, catalog, eventRepo)
	engine := market.NewEngine(catalog.Assets)

	var gateway *coach.Gateway
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Barnaby will answer with a maintenance notice.")
		gateway = coach.NewGateway(nil)
	} else {
		gateway = coach.NewGateway(provider)
	}

	runErr := app.Run(app.Options{
		Catalog:  catalog,
		Profiles: profiles,
		Events:   eventRepo,
		Engine:   engine,
		Gateway:  gateway,
	})

	if st != nil {
		if err := saveSnapshot(context.Background(), st, profiles, catalog); err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to save snapshot:", err)
		}
	}

	return runErr
}

// saveSnapshot persists the final profile and unlock state.
func saveSnapshot(ctx context.Context, st *store.Store, profiles *profile.Store, catalog *content.Catalog) error {
	seq, err := st.LastSequence(ctx)
	if err != nil {
		return err
	}

	snapRepo := st.SnapshotRepo()
	err = snapRepo.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:        1,
			Profile:        profiles.Data(),
			ModuleStatuses: catalog.Statuses(),
		},
	})
	if err != nil {
		return err
	}

	return snapRepo.Prune(ctx, snapshotsToKeep)
}
