package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gallegodamar/sinonimoak/internal/config"
	"github.com/gallegodamar/sinonimoak/internal/logging"
	"github.com/gallegodamar/sinonimoak/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log, closer, err := logging.New(cfg.LogFile)
		if err != nil {
			return err
		}
		if closer != nil {
			defer closer.Close()
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath, log)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("init event repo: %w", err)
		}
		ctx := context.Background()

		accuracies, err := events.LevelAccuracies(ctx)
		if err != nil {
			return fmt.Errorf("level accuracies: %w", err)
		}
		if len(accuracies) == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		fmt.Println("Accuracy by level:")
		for _, acc := range accuracies {
			pct := 0.0
			if acc.Attempts > 0 {
				pct = float64(acc.Correct) / float64(acc.Attempts) * 100
			}
			fmt.Printf("  level %d: %d/%d correct (%.0f%%)\n", acc.Level, acc.Correct, acc.Attempts, pct)
		}

		missed, err := events.MostMissed(ctx, 10)
		if err != nil {
			return fmt.Errorf("most missed: %w", err)
		}
		if len(missed) > 0 {
			fmt.Println("\nMost missed words:")
			for _, mw := range missed {
				fmt.Printf("  %-20s level %d  %d wrong of %d\n", mw.Headword, mw.Level, mw.Wrong, mw.Attempts)
			}
		}

		return nil
	},
}
