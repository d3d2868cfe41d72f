package cli

import (
	"fmt"
	"io"
	"strings"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// commandGroup orders commands in the root help.
type commandGroup int

const (
	groupHost commandGroup = iota
	groupSetup
)

var groupTitles = map[commandGroup]string{
	groupHost:  "Hosting:",
	groupSetup: "Setup:",
}

// Command is one carnival sub-command.
type Command struct {
	Name     string
	Summary  string
	Usage    []string
	Examples []string
	Run      func(args []string, stdout, stderr io.Writer) int
	group    commandGroup
}

// Run dispatches args to a command and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	name, rest := args[0], args[1:]
	if isHelpArg(name) {
		if len(rest) == 0 {
			printUsage(stdout)
			return ExitOK
		}
		// "carnival help play" behaves like "carnival play --help".
		name, rest = rest[0], []string{"--help"}
	}

	cmd := findCommand(name)
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", name)
		printUsage(stderr)
		return ExitUsage
	}
	return cmd.Run(rest, stdout, stderr)
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
	return arg == "-h" || arg == "--help" || arg == "help"
}

// wantsHelp reports a help flag anywhere in a command's args.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "carnival hosts a subject quiz board with a countdown timer.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  carnival <command> [options]")
	for _, group := range []commandGroup{groupHost, groupSetup} {
		fmt.Fprintln(w)
		fmt.Fprintln(w, groupTitles[group])
		for _, cmd := range commands {
			if cmd.group == group {
				fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
			}
		}
	}
	fmt.Fprintln(w, "\nRun \"carnival help <command>\" for command options.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
	if len(cmd.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n  %s\n", strings.Join(cmd.Examples, "\n  "))
	}
}

type commandRunner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int

func command(group commandGroup, name, summary string, usage, examples []string, runner commandRunner) *Command {
	cmd := &Command{
		Name:     name,
		Summary:  summary,
		Usage:    usage,
		Examples: examples,
		group:    group,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command(groupHost, "play", "Host the quiz in the terminal", []string{
		"carnival play [--config <path>] [--catalog <path>] [--seconds <n>] [--on-expire pass|reveal|stop]",
		"              [--ui auto|live|plain] [--no-color] [--verbose] [--log-file <path>]",
	}, []string{
		"carnival play --seconds 45 --on-expire reveal",
		"carnival play --catalog catalogs/sample.yml --verbose",
	}, runPlay),
	command(groupHost, "subjects", "List subjects and question counts", []string{
		"carnival subjects [--config <path>] [--catalog <path>]",
	}, nil, runSubjects),
	command(groupSetup, "validate", "Check .carnival.yml and the catalog", []string{
		"carnival validate [--config <path>] [--catalog <path>]",
	}, []string{
		"carnival validate --catalog catalogs/sample.yml",
	}, runValidate),
	command(groupSetup, "init", "Write a starter .carnival.yml", []string{
		"carnival init [--config <path>]",
	}, nil, runInit),
}
