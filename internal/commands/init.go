package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crania-dev/crania/internal/config"
	"github.com/crania-dev/crania/internal/ledger"
	"github.com/crania-dev/crania/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Crania ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "crania.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(name)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Materialize the snapshot database with the default chart of accounts
	// and tax rates.
	store, err := snapshot.OpenSQLite(filepath.Join(dir, cfg.Data.Path))
	if err != nil {
		return err
	}
	defer store.Close()

	led := ledger.New(nil)
	if err := store.Save(led.Snapshot()); err != nil {
		return fmt.Errorf("saving initial snapshot: %w", err)
	}

	fmt.Printf("Initialized Crania ledger for %s at %s (%d accounts, %d tax rates)\n",
		name, dir, len(led.Accounts()), len(led.TaxRates()))
	return nil
}
