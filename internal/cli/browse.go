package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"qbank/internal/ui/browse"
)

// runBrowser is a test seam for the interactive browser.
var runBrowser = browse.Run

// browseInput is the keyboard source for the interactive browser.
var browseInput io.Reader = os.Stdin

// runBrowse builds the handler for the browse command.
func runBrowse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		filePath := flags.String("file", "", "Path to a .json, .yml or .yaml question file")
		uiMode := flags.String("ui", "auto", "Browser mode (auto|live|plain)")
		noColor := flags.Bool("no-color", false, "Disable colors")
		if ok, code := parseFlags(cmd, flags, args, 0, stdout, stderr); !ok {
			return code
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		src, err := loadSource(*filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Browse failed:\n%v\n", err)
			return ExitError
		}

		if !decision.useLive {
			if err := writeList(stdout, src.collection.Records()); err != nil {
				fmt.Fprintf(stderr, "Browse failed:\n%v\n", err)
				return ExitError
			}
			return ExitOK
		}

		opts := browse.Options{NoColor: *noColor || src.config.UI.NoColor}
		if err := runBrowser(src.collection, opts, browseInput, stdout); err != nil {
			fmt.Fprintf(stderr, "Browse failed:\n%v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
