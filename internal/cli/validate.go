package cli

import (
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		sources := addSourceFlags(fs)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		setup, err := loadSetup(sources)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		if setup.configPath == "" {
			fmt.Fprintln(stdout, "No .carnival.yml found; using defaults")
		} else {
			fmt.Fprintf(stdout, "Config OK: %s\n", setup.configPath)
		}
		fmt.Fprintf(stdout, "Catalog OK: %d subjects, %d questions\n", len(setup.catalog.Subjects), setup.catalog.TotalQuestions())
		return ExitOK
	}
}
