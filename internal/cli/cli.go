package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  qbank <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"qbank <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// parseFlags parses args into flags. It returns false with an exit code when the
// command should stop, either after printing help or after a usage error.
// Positional arguments beyond maxArgs are rejected.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, maxArgs int, stdout, stderr io.Writer) (bool, int) {
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return false, ExitOK
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return false, ExitUsage
	}
	if flags.NArg() > maxArgs {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[maxArgs:], " "))
		printCommandUsage(cmd, stderr)
		return false, ExitUsage
	}
	return true, ExitOK
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .qbank/config.yml and questions.json", []string{
		"qbank init [--dir <path>] [--gitignore]",
	}, runInit),
	command("validate", "Parse and validate a question collection", []string{
		"qbank validate [--file <path>] [--schema]",
	}, runValidate),
	command("list", "List questions", []string{
		"qbank list [--file <path>] [--difficulty easy|medium|hard] [--topic <topic>] [--order stored|difficulty]",
	}, runList),
	command("show", "Show a single question with its ideal answer", []string{
		"qbank show <id> [--file <path>]",
	}, runShow),
	command("export", "Re-serialize or snapshot a collection", []string{
		"qbank export [--format json|yaml|duckdb|sqlite] [--out <path>] [--file <path>]",
	}, runExport),
	command("browse", "Browse questions in the terminal", []string{
		"qbank browse [--file <path>] [--ui auto|live|plain] [--no-color]",
	}, runBrowse),
	command("snapshots", "List or print snapshots stored by export", []string{
		"qbank snapshots <db-path> [--driver duckdb|sqlite]",
		"qbank snapshots <db-path> --id <snapshot-id> [--format json|yaml]",
	}, runSnapshots),
}
