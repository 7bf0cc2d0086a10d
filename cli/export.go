// ABOUTME: Export CLI command
// ABOUTME: Writes a SQLite snapshot of the store for ad-hoc SQL analysis
package cli

import (
	"flag"
	"fmt"

	"ptrack/export"
	"ptrack/store"
)

// ExportCommand routes the export subcommands.
func ExportCommand(st *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("export requires a subcommand: sqlite")
	}
	switch args[0] {
	case "sqlite":
		return exportSQLiteCommand(st, args[1:])
	default:
		return fmt.Errorf("unknown export subcommand: %s", args[0])
	}
}

func exportSQLiteCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("export sqlite", flag.ExitOnError)
	out := fs.String("out", "ptrack-export.db", "Output SQLite file path")
	fs.Parse(args)

	runID, err := export.ToSQLite(st, *out)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("✓ Exported to %s (run %s)\n", *out, runID)
	return nil
}
