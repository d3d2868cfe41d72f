package cli

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"carnival/internal/catalog"
)

// runSubjects builds the handler for the subjects command.
func runSubjects(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Failed to load: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, setup.config.DisplayTitle(setup.catalog))
		writeSubjectTable(stdout, setup.catalog)
		return ExitOK
	}
}

// writeSubjectTable prints one row per subject.
func writeSubjectTable(w io.Writer, cat catalog.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSUBJECT\tQUESTIONS\tMULTIPLE CHOICE")
	for _, subject := range cat.Subjects {
		choice := 0
		for _, question := range subject.Questions {
			if question.HasOptions() {
				choice++
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", subject.ID, subject.Name, subject.Len(), choice)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d subjects, %d questions\n", len(cat.Subjects), cat.TotalQuestions())
}
