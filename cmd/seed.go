package cmd

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gallegodamar/sinonimoak/internal/config"
	"github.com/gallegodamar/sinonimoak/internal/logging"
	"github.com/gallegodamar/sinonimoak/internal/store"
)

//go:embed dictionary.json
var starterDictionary []byte

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Import dictionary entries",
	Long:  "Import dictionary entries from a JSON file, or load the built-in starter dictionary when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data := starterDictionary
		if len(args) == 1 {
			var err error
			data, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read dictionary file: %w", err)
			}
		}

		var entries []store.SeedWord
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parse dictionary: %w", err)
		}

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

		n, err := st.WordRepo().Seed(context.Background(), entries)
		if err != nil {
			return fmt.Errorf("seed dictionary: %w", err)
		}

		fmt.Printf("Imported %d of %d entries into %s\n", n, len(entries), dbPath)
		return nil
	},
}
