package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"qbank/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		filePath := flags.String("file", "", "Path to a .json, .yml or .yaml question file")
		withSchema := flags.Bool("schema", false, "Also check JSON input against the published JSON Schema")
		if ok, code := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		src, err := loadSource(*filePath)
		if err != nil {
			printValidationFailure(stderr, err)
			return ExitError
		}
		if *withSchema {
			if src.format != question.FormatJSON {
				fmt.Fprintf(stderr, "Validation failed:\n--schema requires JSON input, got %s\n", src.format)
				return ExitError
			}
			if err := question.ValidateSchema(src.data); err != nil {
				printValidationFailure(stderr, err)
				return ExitError
			}
		}

		fmt.Fprintf(stdout, "Questions OK (%d records from %s)\n", src.collection.Len(), src.origin)
		return ExitOK
	}
}

func printValidationFailure(w io.Writer, err error) {
	fmt.Fprintln(w, "Validation failed:")
	var validationErr *question.ValidationError
	if errors.As(err, &validationErr) {
		for _, issue := range validationErr.Issues {
			fmt.Fprintf(w, "  %s\n", issue.String())
		}
		return
	}
	fmt.Fprintln(w, err.Error())
}
