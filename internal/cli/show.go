package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"qbank/internal/question"
)

// runShow builds the handler for the show command.
func runShow(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		// The id may precede flags: "qbank show q1 --file x.json".
		var id string
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			id = args[0]
			args = args[1:]
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		filePath := flags.String("file", "", "Path to a .json, .yml or .yaml question file")
		maxArgs := 1
		if id != "" {
			maxArgs = 0
		}
		if ok, code := parseFlags(cmd, flags, args, maxArgs, stdout, stderr); !ok {
			return code
		}
		if id == "" {
			id = flags.Arg(0)
		}
		if strings.TrimSpace(id) == "" {
			fmt.Fprintln(stderr, "question id is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		src, err := loadSource(*filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Show failed:\n%v\n", err)
			return ExitError
		}
		record, ok := src.collection.Get(id)
		if !ok {
			fmt.Fprintf(stderr, "Question not found: %s\n", id)
			return ExitError
		}
		writeRecord(stdout, record)
		return ExitOK
	}
}

func writeRecord(w io.Writer, record question.Question) {
	fmt.Fprintf(w, "ID: %s\n", record.ID)
	fmt.Fprintf(w, "Difficulty: %s\n", record.Difficulty)
	fmt.Fprintf(w, "Topic: %s\n", record.Topic)
	fmt.Fprintf(w, "\nQuestion:\n%s\n", record.Text)
	fmt.Fprintf(w, "\nIdeal answer:\n%s\n", record.IdealAnswer)
}
