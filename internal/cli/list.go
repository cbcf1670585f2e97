package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"qbank/internal/question"
)

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		filePath := flags.String("file", "", "Path to a .json, .yml or .yaml question file")
		difficulty := flags.String("difficulty", "", "Only list questions of this difficulty (easy|medium|hard)")
		topic := flags.String("topic", "", "Only list questions with this topic")
		order := flags.String("order", "stored", "Ordering (stored|difficulty)")
		if ok, code := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		filter := question.Filter{
			Difficulty: question.Difficulty(strings.ToLower(strings.TrimSpace(*difficulty))),
			Topic:      strings.TrimSpace(*topic),
		}
		if filter.Difficulty != "" && !filter.Difficulty.Valid() {
			fmt.Fprintf(stderr, "invalid --difficulty %q (expected easy|medium|hard)\n", *difficulty)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		normalizedOrder := strings.ToLower(strings.TrimSpace(*order))
		if normalizedOrder != "stored" && normalizedOrder != "difficulty" {
			fmt.Fprintf(stderr, "invalid --order %q (expected stored|difficulty)\n", *order)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		src, err := loadSource(*filePath)
		if err != nil {
			fmt.Fprintf(stderr, "List failed:\n%v\n", err)
			return ExitError
		}

		records := src.collection.Filter(filter)
		if normalizedOrder == "difficulty" {
			records = question.SortByDifficulty(records)
		}
		if err := writeList(stdout, records); err != nil {
			fmt.Fprintf(stderr, "List failed:\n%v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func writeList(w io.Writer, records []question.Question) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No questions.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDIFFICULTY\tTOPIC\tQUESTION")
	for _, record := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", record.ID, record.Difficulty, record.Topic, summarize(record.Text, 60))
	}
	return tw.Flush()
}

// summarize collapses whitespace and shortens text to limit runes.
func summarize(text string, limit int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	runes := []rune(collapsed)
	if len(runes) <= limit {
		return collapsed
	}
	return string(runes[:limit-3]) + "..."
}
