package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"qbank/internal/config"
	"qbank/internal/dataset"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		dir := flags.String("dir", "", "Directory to initialize (default: current directory)")
		gitignore := flags.Bool("gitignore", false, "Add the export directory to .gitignore")
		if ok, code := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		root := strings.TrimSpace(*dir)
		if root == "" {
			wd, err := workingDir()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			root = wd
		}
		root, err := filepath.Abs(root)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: %q is not a directory\n", root)
			return ExitError
		}

		if err := config.Scaffold(root); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", config.ConfigPath(root))
		fmt.Fprintf(stdout, "Wrote %s\n", filepath.Join(root, dataset.FileName))

		if *gitignore {
			updated, err := addGitignoreEntry(root, config.DefaultExportDir)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: update .gitignore: %v\n", err)
				return ExitError
			}
			if updated {
				fmt.Fprintf(stdout, "Updated %s\n", filepath.Join(root, ".gitignore"))
			}
		}
		return ExitOK
	}
}
