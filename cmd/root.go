package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gallegodamar/sinonimoak/internal/app"
	"github.com/gallegodamar/sinonimoak/internal/config"
	"github.com/gallegodamar/sinonimoak/internal/logging"
	"github.com/gallegodamar/sinonimoak/internal/store"
	"github.com/gallegodamar/sinonimoak/internal/words"
)

var rootCmd = &cobra.Command{
	Use:   "sinonimoak",
	Short: "Basque synonym quiz for the terminal",
	Long:  "Sinonimoak is a turn-based vocabulary game: pick the synonym of a Basque headword before your rivals do.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env next to the binary is a convenience for local setups.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SINONIMOAK_DB env var)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the SINONIMOAK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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
	wordRepo := st.WordRepo()

	return app.Run(app.Options{
		Words:  wordRepo,
		Events: events,
		Cache:  words.NewLevelCache(wordRepo, log),
		Config: cfg,
		Log:    log,
	})
}
