package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"qbank/internal/config"
	"qbank/internal/question"
	"qbank/internal/snapshot"
)

// snapshotExtensions maps snapshot drivers to default file extensions.
var snapshotExtensions = map[snapshot.Driver]string{
	snapshot.DriverDuckDB: ".duckdb",
	snapshot.DriverSQLite: ".db",
}

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		filePath := flags.String("file", "", "Path to a .json, .yml or .yaml question file")
		format := flags.String("format", "", "Export format (json|yaml|duckdb|sqlite; default: config export.format)")
		outPath := flags.String("out", "", "Output path (default: stdout for json/yaml, export dir for snapshots)")
		if ok, code := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		src, err := loadSource(*filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
			return ExitError
		}

		selected := strings.ToLower(strings.TrimSpace(*format))
		if selected == "" {
			selected = src.config.Export.Format
		}
		out := strings.TrimSpace(*outPath)

		switch selected {
		case config.ExportJSON, config.ExportYAML:
			if err := exportDocument(src.collection, question.Format(selected), out, stdout); err != nil {
				fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
				return ExitError
			}
			if out != "" {
				fmt.Fprintf(stdout, "Wrote %s\n", out)
			}
		case config.ExportDuckDB, config.ExportSQLite:
			driver := snapshot.Driver(selected)
			if out == "" {
				dir := config.ResolvePath(src.root, src.config.Export.OutputDir)
				out = filepath.Join(dir, "questions"+snapshotExtensions[driver])
			}
			info, err := exportSnapshot(context.Background(), src.collection, driver, out)
			if err != nil {
				fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
				return ExitError
			}
			verb := "Wrote"
			if info.Reused {
				verb = "Reused"
			}
			fmt.Fprintf(stdout, "%s snapshot %s (%d records) in %s\n", verb, info.ID, info.RecordCount, out)
		default:
			fmt.Fprintf(stderr, "invalid --format %q (expected %s)\n", selected, strings.Join(config.ExportFormats, "|"))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		return ExitOK
	}
}

// exportDocument encodes the collection to path, or to stdout when path is empty.
// The file is only written after encoding succeeds.
func exportDocument(c *question.Collection, format question.Format, path string, stdout io.Writer) error {
	if path == "" {
		return c.Encode(stdout, format)
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf, format); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func exportSnapshot(ctx context.Context, c *question.Collection, driver snapshot.Driver, path string) (snapshot.Info, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return snapshot.Info{}, fmt.Errorf("create output dir: %w", err)
	}
	store, err := snapshot.Open(ctx, driver, path)
	if err != nil {
		return snapshot.Info{}, err
	}
	defer store.Close()
	return store.Write(ctx, c)
}
