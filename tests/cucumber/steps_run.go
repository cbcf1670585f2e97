package cucumber

import (
	"fmt"
	"strings"

	"qbank/internal/cli"
)

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "qbank" {
		args = args[1:]
	}
	s.run(args)
	return nil
}

// iReadBackTheLastSnapshot prints the snapshot named in the previous export output.
func (s *featureState) iReadBackTheLastSnapshot(path string) error {
	fields := strings.Fields(s.stdout.String())
	if len(fields) < 3 || fields[1] != "snapshot" {
		return fmt.Errorf("previous output does not name a snapshot: %q", s.stdout.String())
	}
	s.run([]string{"snapshots", path, "--id", fields[2], "--format", "json"})
	return nil
}

func (s *featureState) run(args []string) {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
}
