package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"qbank/internal/question"
	"qbank/internal/snapshot"
)

// runSnapshots builds the handler for the snapshots command.
func runSnapshots(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		var dbPath string
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			dbPath = args[0]
			args = args[1:]
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		driverName := flags.String("driver", "", "Database driver (duckdb|sqlite; default: from file extension)")
		snapshotID := flags.String("id", "", "Print the collection stored under this snapshot id")
		format := flags.String("format", "json", "Output format for --id (json|yaml)")
		maxArgs := 1
		if dbPath != "" {
			maxArgs = 0
		}
		if ok, code := parseFlags(cmd, flags, args, maxArgs, stdout, stderr); !ok {
			return code
		}
		if dbPath == "" {
			dbPath = flags.Arg(0)
		}
		if strings.TrimSpace(dbPath) == "" {
			fmt.Fprintln(stderr, "database path is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		driver, err := snapshotDriver(*driverName, dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		outFormat, err := question.ParseFormat(*format)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if _, err := os.Stat(dbPath); err != nil {
			fmt.Fprintf(stderr, "Snapshots failed:\n%v\n", err)
			return ExitError
		}

		ctx := context.Background()
		store, err := snapshot.OpenExisting(ctx, driver, dbPath)
		if err != nil {
			if errors.Is(err, snapshot.ErrNotSnapshotDatabase) {
				fmt.Fprintf(stderr, "Snapshots failed:\n%s is not a qbank snapshot database\n", dbPath)
				return ExitError
			}
			fmt.Fprintf(stderr, "Snapshots failed:\n%v\n", err)
			return ExitError
		}
		defer store.Close()

		if id := strings.TrimSpace(*snapshotID); id != "" {
			collection, err := store.Read(ctx, id)
			if err != nil {
				if errors.Is(err, snapshot.ErrSnapshotNotFound) {
					fmt.Fprintf(stderr, "Snapshot not found: %s\n", id)
					return ExitError
				}
				fmt.Fprintf(stderr, "Snapshots failed:\n%v\n", err)
				return ExitError
			}
			if err := collection.Encode(stdout, outFormat); err != nil {
				fmt.Fprintf(stderr, "Snapshots failed:\n%v\n", err)
				return ExitError
			}
			return ExitOK
		}

		infos, err := store.List(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Snapshots failed:\n%v\n", err)
			return ExitError
		}
		if err := writeSnapshots(stdout, infos); err != nil {
			fmt.Fprintf(stderr, "Snapshots failed:\n%v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// snapshotDriver resolves an explicit driver name or infers one from the path.
func snapshotDriver(name, path string) (snapshot.Driver, error) {
	if strings.TrimSpace(name) != "" {
		return snapshot.ParseDriver(name)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".duckdb":
		return snapshot.DriverDuckDB, nil
	case ".db", ".sqlite", ".sqlite3":
		return snapshot.DriverSQLite, nil
	default:
		return "", fmt.Errorf("cannot infer driver from %q; pass --driver duckdb|sqlite", path)
	}
}

func writeSnapshots(w io.Writer, infos []snapshot.Info) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(w, "No snapshots.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SNAPSHOT\tRECORDS\tCREATED\tFINGERPRINT")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", info.ID, info.RecordCount, info.CreatedAt.UTC().Format(time.RFC3339), shortFingerprint(info.Fingerprint))
	}
	return tw.Flush()
}

func shortFingerprint(fingerprint string) string {
	if len(fingerprint) <= 12 {
		return fingerprint
	}
	return fingerprint[:12]
}
